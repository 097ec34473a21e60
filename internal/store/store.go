// Package store owns every collection of the application state: users,
// servers, direct messages, per-container message history, the game catalog
// and the authenticated session. Mutations run synchronously, write through
// the keyvalue substrate, and surface precondition failures as typed errors.
// The only asynchronous boundary is the AI dispatch in SendMessage.
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/GoldeNerd2/Aicord/internal/ai"
	"github.com/GoldeNerd2/Aicord/internal/keyvalue"
	"github.com/GoldeNerd2/Aicord/internal/models"
	"go.uber.org/zap"
)

// Navigation sentinels for Session.ActiveServerID. Anything else is a server ID.
const (
	NavHome      = "home"
	NavDiscovery = "discovery"
)

const (
	keyUsers       = "users"
	keyServers     = "servers"
	keyDMs         = "dms"
	keyMessages    = "messages"
	keyGames       = "games"
	keyCurrentUser = "current-user"
)

var (
	ErrUnauthenticated    = errors.New("no authenticated session")
	ErrNotFound           = errors.New("entity not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Session is the navigation and authentication state of the running client.
// Only CurrentUserID survives a restart.
type Session struct {
	CurrentUserID   string
	ActiveServerID  string
	ActiveChannelID string
	ActiveDMID      string
	Modals          models.Modals
}

type Store struct {
	sugar     *zap.SugaredLogger
	kv        *keyvalue.Store
	responder ai.Responder
	bot       models.User

	mu       sync.RWMutex
	users    map[string]*models.User
	servers  []*models.Server
	dms      []*models.DMChannel
	messages map[string][]*models.Message
	games    []models.Game
	session  Session
}

// New builds a store around the given substrate, loading every collection.
// bot is the designated AI responder identity, responder may be nil to
// disable AI replies entirely.
func New(sugar *zap.SugaredLogger, kv *keyvalue.Store, responder ai.Responder, bot models.User) *Store {
	s := &Store{
		sugar:     sugar,
		kv:        kv,
		responder: responder,
		bot:       bot,
		users:     make(map[string]*models.User),
		messages:  make(map[string][]*models.Message),
		session:   Session{ActiveServerID: NavHome},
	}

	s.kv.Load(keyUsers, &s.users)
	s.kv.Load(keyServers, &s.servers)
	s.kv.Load(keyDMs, &s.dms)
	s.kv.Load(keyMessages, &s.messages)
	s.kv.Load(keyGames, &s.games)

	var currentUserID string
	if s.kv.Load(keyCurrentUser, &currentUserID) {
		s.session.CurrentUserID = currentUserID
	}

	if s.session.CurrentUserID != "" {
		s.ensureBotLocked()
	}

	return s
}

// Bot returns the AI responder identity this store routes to.
func (s *Store) Bot() models.User {
	return s.bot
}

// ensureBotLocked registers the responder identity as a user so it can author
// messages and be found by mention scans.
func (s *Store) ensureBotLocked() {
	if _, ok := s.users[s.bot.ID]; ok {
		return
	}
	bot := s.bot
	s.users[bot.ID] = &bot
	s.saveUsersLocked()
}

func (s *Store) saveUsersLocked()    { s.kv.Save(keyUsers, s.users) }
func (s *Store) saveServersLocked()  { s.kv.Save(keyServers, s.servers) }
func (s *Store) saveDMsLocked()      { s.kv.Save(keyDMs, s.dms) }
func (s *Store) saveMessagesLocked() { s.kv.Save(keyMessages, s.messages) }
func (s *Store) saveGamesLocked()    { s.kv.Save(keyGames, s.games) }

func (s *Store) saveCurrentUserLocked() {
	if s.session.CurrentUserID == "" {
		s.kv.Delete(keyCurrentUser)
		return
	}
	s.kv.Save(keyCurrentUser, s.session.CurrentUserID)
}

func (s *Store) currentUserLocked() *models.User {
	if s.session.CurrentUserID == "" {
		return nil
	}
	return s.users[s.session.CurrentUserID]
}

func (s *Store) findServerLocked(id string) *models.Server {
	for _, server := range s.servers {
		if server.ID == id {
			return server
		}
	}
	return nil
}

// findServerChannelLocked resolves a channel ID to its owning server.
func (s *Store) findServerChannelLocked(channelID string) (*models.Server, *models.Channel) {
	for _, server := range s.servers {
		for i := range server.Channels {
			if server.Channels[i].ID == channelID {
				return server, &server.Channels[i]
			}
		}
	}
	return nil, nil
}

func (s *Store) findDMLocked(id string) *models.DMChannel {
	for _, dm := range s.dms {
		if dm.ID == id {
			return dm
		}
	}
	return nil
}

// userIDsSortedLocked gives a deterministic iteration order over the user map.
func (s *Store) userIDsSortedLocked() []string {
	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Read accessors below hand out copies so presentation collaborators can't
// mutate collections behind the store's back.

func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := s.currentUserLocked()
	if user == nil {
		return nil
	}
	out := *user
	return &out
}

func (s *Store) User(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	return *user, true
}

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, id := range s.userIDsSortedLocked() {
		out = append(out, *s.users[id])
	}
	return out
}

func (s *Store) Server(id string) (models.Server, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	server := s.findServerLocked(id)
	if server == nil {
		return models.Server{}, false
	}
	return *server, true
}

func (s *Store) Servers() []models.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Server, 0, len(s.servers))
	for _, server := range s.servers {
		out = append(out, *server)
	}
	return out
}

func (s *Store) DMs() []models.DMChannel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DMChannel, 0, len(s.dms))
	for _, dm := range s.dms {
		out = append(out, *dm)
	}
	return out
}

// Messages returns the container's message list in insertion order.
func (s *Store) Messages(containerID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.messages[containerID]
	out := make([]models.Message, 0, len(list))
	for _, msg := range list {
		out = append(out, *msg)
	}
	return out
}

func (s *Store) Games() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Game, len(s.games))
	copy(out, s.games)
	return out
}

func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}
