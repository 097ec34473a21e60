package store

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/GoldeNerd2/Aicord/internal/models"
	"github.com/GoldeNerd2/Aicord/internal/snowflake"
	"golang.org/x/crypto/bcrypt"
)

// Login matches identifier against email or the username#discriminator tag
// and verifies the secret against the stored bcrypt hash. On success the
// session is activated and persisted.
func (s *Store) Login(identifier string, secret string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userIDsSortedLocked() {
		user := s.users[id]
		if user.Email != identifier && user.Tag() != identifier {
			continue
		}
		if len(user.Password) == 0 {
			// bots and seeded identities carry no credentials
			continue
		}
		if bcrypt.CompareHashAndPassword(user.Password, []byte(secret)) != nil {
			continue
		}

		s.session.CurrentUserID = user.ID
		s.saveCurrentUserLocked()
		s.ensureBotLocked()

		out := *user
		return &out, nil
	}

	return nil, ErrInvalidCredentials
}

// Signup always succeeds, there is no email or username uniqueness check.
// The new user gets a random 4-digit discriminator, an authenticated session,
// and a welcome DM where the AI responder speaks first.
func (s *Store) Signup(email string, username string, secret string) (*models.User, error) {
	passwordBytes, err := bcrypt.GenerateFromPassword([]byte(secret), 12)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, err := snowflake.NextID("user")
	if err != nil {
		return nil, err
	}
	dmID, err := snowflake.NextID("dm")
	if err != nil {
		return nil, err
	}
	msgID, err := snowflake.NextID("msg")
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:            userID,
		Username:      username,
		Discriminator: fmt.Sprintf("%04d", 1000+rand.Intn(9000)),
		Email:         email,
		Password:      passwordBytes,
		Avatar:        fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(username)),
		Status:        models.StatusOnline,
		BannerColor:   "#5865F2",
	}

	s.users[userID] = user
	s.ensureBotLocked()
	s.saveUsersLocked()

	s.session.CurrentUserID = userID
	s.saveCurrentUserLocked()

	s.dms = append(s.dms, &models.DMChannel{
		ID:           dmID,
		RecipientIDs: []string{userID, s.bot.ID},
	})
	s.saveDMsLocked()

	s.messages[dmID] = append(s.messages[dmID], &models.Message{
		ID:        msgID,
		ChannelID: dmID,
		AuthorID:  s.bot.ID,
		Content:   WelcomeGreeting,
		Timestamp: time.Now().UnixMilli(),
	})
	s.saveMessagesLocked()

	out := *user
	return &out, nil
}

// Logout clears the session and resets navigation to home.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.CurrentUserID = ""
	s.session.ActiveServerID = NavHome
	s.saveCurrentUserLocked()
}

// UpdateUser merges the patch into the current session's user record.
func (s *Store) UpdateUser(patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUserLocked()
	if user == nil {
		return nil, ErrUnauthenticated
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.BannerColor != nil {
		user.BannerColor = *patch.BannerColor
	}
	if patch.BannerURL != nil {
		user.BannerURL = *patch.BannerURL
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.CustomStatus != nil {
		user.CustomStatus = *patch.CustomStatus
	}
	if patch.AboutMe != nil {
		user.AboutMe = *patch.AboutMe
	}

	s.saveUsersLocked()

	out := *user
	return &out, nil
}

// FindUserByTag parses name#discriminator and returns the first user whose
// username matches case-insensitively with an exact discriminator. Iteration
// order is stable, so an ambiguous tag always resolves the same way.
func (s *Store) FindUserByTag(tag string) (*models.User, bool) {
	name, disc, ok := strings.Cut(tag, "#")
	if !ok || name == "" || disc == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userIDsSortedLocked() {
		user := s.users[id]
		if strings.EqualFold(user.Username, name) && user.Discriminator == disc {
			out := *user
			return &out, true
		}
	}
	return nil, false
}

// AddBot registers the bot identity if absent, then opens (or reactivates)
// a DM with it.
func (s *Store) AddBot(bot models.User) (*models.DMChannel, error) {
	s.mu.Lock()
	if s.currentUserLocked() == nil {
		s.mu.Unlock()
		return nil, ErrUnauthenticated
	}
	if _, ok := s.users[bot.ID]; !ok {
		s.users[bot.ID] = &bot
		s.saveUsersLocked()
	}
	s.mu.Unlock()

	return s.CreateDm(bot.ID)
}
