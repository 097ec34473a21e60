package store

import (
	"regexp"
	"strings"

	"github.com/GoldeNerd2/Aicord/internal/models"
	"github.com/GoldeNerd2/Aicord/internal/snowflake"
	"github.com/google/uuid"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// normalizeChannelName lowercases and replaces runs of spaces with hyphens.
func normalizeChannelName(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(name), "-")
}

func newInviteCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}

// CreateServer creates a server owned by the session user with a default
// "General" category holding a "general" text channel, then activates both.
func (s *Store) CreateServer(name string, isPublic bool, icon string) (*models.Server, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUserLocked()
	if user == nil {
		return nil, ErrUnauthenticated
	}

	serverID, err := snowflake.NextID("server")
	if err != nil {
		return nil, err
	}
	categoryID, err := snowflake.NextID("cat")
	if err != nil {
		return nil, err
	}
	channelID, err := snowflake.NextID("chan")
	if err != nil {
		return nil, err
	}

	server := &models.Server{
		ID:       serverID,
		Name:     name,
		Icon:     icon,
		OwnerID:  user.ID,
		IsPublic: isPublic,
		Members:  []string{user.ID},
		Categories: []models.ChannelCategory{
			{ID: categoryID, ServerID: serverID, Name: "General"},
		},
		Channels: []models.Channel{
			{ID: channelID, ServerID: serverID, CategoryID: categoryID, Name: "general", Type: models.ChannelTypeText},
		},
		Roles:       []models.Role{},
		MemberRoles: map[string][]string{},
		Emojis:      []models.Emoji{},
		InviteCode:  newInviteCode(),
	}

	s.servers = append(s.servers, server)
	s.saveServersLocked()

	s.session.ActiveServerID = serverID
	s.session.ActiveChannelID = channelID
	s.session.Modals.CreateServer = false

	out := *server
	return &out, nil
}

// UpdateServer merges the patch into the named server. There is no ownership
// check at this layer, authorization is left to callers.
func (s *Store) UpdateServer(serverID string, patch models.ServerPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	server := s.findServerLocked(serverID)
	if server == nil {
		return ErrNotFound
	}

	if patch.Name != nil {
		server.Name = *patch.Name
	}
	if patch.Icon != nil {
		server.Icon = *patch.Icon
	}
	if patch.BannerURL != nil {
		server.BannerURL = *patch.BannerURL
	}
	if patch.IsPublic != nil {
		server.IsPublic = *patch.IsPublic
	}

	s.saveServersLocked()
	return nil
}

// CreateChannel appends a channel to the named server. A non-empty categoryID
// must reference a category of the same server.
func (s *Store) CreateChannel(serverID string, categoryID string, name string, channelType string) (*models.Channel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	server := s.findServerLocked(serverID)
	if server == nil {
		return nil, ErrNotFound
	}

	if categoryID != "" {
		found := false
		for _, category := range server.Categories {
			if category.ID == categoryID {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrNotFound
		}
	}

	if channelType != models.ChannelTypeAnnouncement {
		channelType = models.ChannelTypeText
	}

	channelID, err := snowflake.NextID("chan")
	if err != nil {
		return nil, err
	}

	channel := models.Channel{
		ID:         channelID,
		ServerID:   serverID,
		CategoryID: categoryID,
		Name:       normalizeChannelName(name),
		Type:       channelType,
	}

	server.Channels = append(server.Channels, channel)
	s.saveServersLocked()

	s.session.Modals.CreateChannel = nil

	return &channel, nil
}

func (s *Store) CreateCategory(serverID string, name string) (*models.ChannelCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	server := s.findServerLocked(serverID)
	if server == nil {
		return nil, ErrNotFound
	}

	categoryID, err := snowflake.NextID("cat")
	if err != nil {
		return nil, err
	}

	category := models.ChannelCategory{
		ID:       categoryID,
		ServerID: serverID,
		Name:     name,
	}

	server.Categories = append(server.Categories, category)
	s.saveServersLocked()

	s.session.Modals.CreateCategory = nil

	return &category, nil
}

func (s *Store) AddEmojiToServer(serverID string, name string, url string) (*models.Emoji, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUserLocked()
	if user == nil {
		return nil, ErrUnauthenticated
	}

	server := s.findServerLocked(serverID)
	if server == nil {
		return nil, ErrNotFound
	}

	emojiID, err := snowflake.NextID("emoji")
	if err != nil {
		return nil, err
	}

	emoji := models.Emoji{
		ID:        emojiID,
		Name:      name,
		URL:       url,
		CreatorID: user.ID,
	}

	server.Emojis = append(server.Emojis, emoji)
	s.saveServersLocked()

	return &emoji, nil
}

// AddGame appends to the game catalog. The catalog is append-only.
func (s *Store) AddGame(game models.Game) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if game.ID == "" {
		gameID, err := snowflake.NextID("game")
		if err != nil {
			return nil, err
		}
		game.ID = gameID
	}

	s.games = append(s.games, game)
	s.saveGamesLocked()

	s.session.Modals.AddGame = false

	return &game, nil
}

// JoinServer adds the session user to the member list if absent and activates
// the server. Members are only ever added, never removed.
func (s *Store) JoinServer(serverID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUserLocked()
	if user == nil {
		return ErrUnauthenticated
	}

	server := s.findServerLocked(serverID)
	if server == nil {
		return ErrNotFound
	}

	isMember := false
	for _, memberID := range server.Members {
		if memberID == user.ID {
			isMember = true
			break
		}
	}
	if !isMember {
		server.Members = append(server.Members, user.ID)
		s.saveServersLocked()
	}

	s.session.ActiveServerID = serverID
	return nil
}
