package store_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/GoldeNerd2/Aicord/internal/ai"
	"github.com/GoldeNerd2/Aicord/internal/keyvalue"
	"github.com/GoldeNerd2/Aicord/internal/models"
	"github.com/GoldeNerd2/Aicord/internal/snowflake"
	"github.com/GoldeNerd2/Aicord/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	if err := snowflake.Setup(0); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type respondCall struct {
	text    string
	history []ai.Turn
}

type fakeResponder struct {
	mu    sync.Mutex
	calls []respondCall
	reply string
	err   error
}

func (f *fakeResponder) Respond(_ context.Context, text string, history []ai.Turn) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, respondCall{text: text, history: history})
	return f.reply, f.err
}

func (f *fakeResponder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeResponder) lastCall() respondCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func newTestKv(t *testing.T, dbFile string) *keyvalue.Store {
	t.Helper()

	kv, err := keyvalue.Setup(zap.NewNop().Sugar(), &models.ConfigFile{
		SelfContained: true,
		DbFile:        dbFile,
	})
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	return kv
}

func newTestStore(t *testing.T, responder ai.Responder) *store.Store {
	t.Helper()
	kv := newTestKv(t, filepath.Join(t.TempDir(), "test.db"))
	return store.New(zap.NewNop().Sugar(), kv, responder, store.DefaultBot())
}

func signup(t *testing.T, s *store.Store, username string) *models.User {
	t.Helper()
	user, err := s.Signup(username+"@example.com", username, "Secret1pw")
	require.NoError(t, err)
	return user
}

func TestSignupActivatesSessionAndCreatesWelcomeDm(t *testing.T) {
	s := newTestStore(t, nil)
	alice := signup(t, s, "Alice")

	current := s.CurrentUser()
	require.NotNil(t, current)
	require.Equal(t, alice.ID, current.ID)
	require.Len(t, alice.Discriminator, 4)

	bot := s.Bot()
	var botDms []models.DMChannel
	for _, dm := range s.DMs() {
		if len(dm.RecipientIDs) == 2 {
			botDms = append(botDms, dm)
		}
	}
	require.Len(t, botDms, 1)
	require.ElementsMatch(t, []string{alice.ID, bot.ID}, botDms[0].RecipientIDs)

	msgs := s.Messages(botDms[0].ID)
	require.Len(t, msgs, 1)
	require.Equal(t, bot.ID, msgs[0].AuthorID)
	require.Equal(t, store.WelcomeGreeting, msgs[0].Content)
}

func TestLoginByEmailAndTag(t *testing.T) {
	s := newTestStore(t, nil)
	alice := signup(t, s, "Alice")
	s.Logout()
	require.Nil(t, s.CurrentUser())

	user, err := s.Login("Alice@example.com", "Secret1pw")
	require.NoError(t, err)
	require.Equal(t, alice.ID, user.ID)

	s.Logout()

	user, err = s.Login("Alice#"+alice.Discriminator, "Secret1pw")
	require.NoError(t, err)
	require.Equal(t, alice.ID, user.ID)

	_, err = s.Login("Alice@example.com", "wrong")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestLogoutResetsNavigationHome(t *testing.T) {
	s := newTestStore(t, nil)
	signup(t, s, "Alice")

	server, err := s.CreateServer("My Server", false, "")
	require.NoError(t, err)
	require.Equal(t, server.ID, s.Session().ActiveServerID)

	s.Logout()
	require.Equal(t, store.NavHome, s.Session().ActiveServerID)
	require.Equal(t, "", s.Session().CurrentUserID)
}

func TestFindUserByTag(t *testing.T) {
	s := newTestStore(t, nil)
	alice := signup(t, s, "Alice")

	found, ok := s.FindUserByTag("alice#" + alice.Discriminator)
	require.True(t, ok)
	require.Equal(t, alice.ID, found.ID)

	_, ok = s.FindUserByTag("Alice#0001")
	require.False(t, ok)

	_, ok = s.FindUserByTag("Alice")
	require.False(t, ok)
}

func TestCreateServerDefaultsAndOwnership(t *testing.T) {
	s := newTestStore(t, nil)
	alice := signup(t, s, "Alice")

	server, err := s.CreateServer("Cool Place", true, "icon.png")
	require.NoError(t, err)

	require.Equal(t, alice.ID, server.OwnerID)
	require.Equal(t, []string{alice.ID}, server.Members)
	require.NotEmpty(t, server.InviteCode)

	require.Len(t, server.Categories, 1)
	require.Equal(t, "General", server.Categories[0].Name)
	require.Len(t, server.Channels, 1)
	require.Equal(t, "general", server.Channels[0].Name)
	require.Equal(t, server.Categories[0].ID, server.Channels[0].CategoryID)

	session := s.Session()
	require.Equal(t, server.ID, session.ActiveServerID)
	require.Equal(t, server.Channels[0].ID, session.ActiveChannelID)
}

func TestJoinServerNeverRemovesOwner(t *testing.T) {
	s := newTestStore(t, nil)
	alice := signup(t, s, "Alice")
	server, err := s.CreateServer("Shared", true, "")
	require.NoError(t, err)

	s.Logout()
	bob := signup(t, s, "Bob")

	require.NoError(t, s.JoinServer(server.ID))
	// joining twice must not duplicate the member
	require.NoError(t, s.JoinServer(server.ID))

	got, ok := s.Server(server.ID)
	require.True(t, ok)
	require.Equal(t, []string{alice.ID, bob.ID}, got.Members)
	require.Equal(t, alice.ID, got.OwnerID)
}

func TestUpdateServerUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	s := newTestStore(t, nil)
	signup(t, s, "Alice")
	_, err := s.CreateServer("Alpha", false, "")
	require.NoError(t, err)

	before := s.Servers()

	name := "X"
	err = s.UpdateServer("server-does-not-exist", models.ServerPatch{Name: &name})
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Equal(t, before, s.Servers())
}

func TestCreateChannelNormalizesName(t *testing.T) {
	s := newTestStore(t, nil)
	signup(t, s, "Alice")
	server, err := s.CreateServer("Alpha", false, "")
	require.NoError(t, err)

	channel, err := s.CreateChannel(server.ID, server.Categories[0].ID, "Big  Announcements Here", models.ChannelTypeAnnouncement)
	require.NoError(t, err)
	require.Equal(t, "big-announcements-here", channel.Name)
	require.Equal(t, models.ChannelTypeAnnouncement, channel.Type)

	// a category of a different server must be rejected
	other, err := s.CreateServer("Beta", false, "")
	require.NoError(t, err)
	_, err = s.CreateChannel(server.ID, other.Categories[0].ID, "nope", models.ChannelTypeText)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateDmIsIdempotentPerPair(t *testing.T) {
	s := newTestStore(t, nil)
	bob := signup(t, s, "Bob")
	s.Logout()
	alice := signup(t, s, "Alice")

	first, err := s.CreateDm(bob.ID)
	require.NoError(t, err)
	second, err := s.CreateDm(bob.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	// other direction
	s.Logout()
	_, err = s.Login("Bob@example.com", "Secret1pw")
	require.NoError(t, err)
	third, err := s.CreateDm(alice.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, third.ID)
}

func TestCreateGroupDmDeduplicatesCaller(t *testing.T) {
	s := newTestStore(t, nil)
	bob := signup(t, s, "Bob")
	s.Logout()
	alice := signup(t, s, "Alice")

	dm, err := s.CreateGroupDm([]string{alice.ID, bob.ID, bob.ID})
	require.NoError(t, err)
	require.Equal(t, []string{alice.ID, bob.ID}, dm.RecipientIDs)
	require.Equal(t, alice.ID, dm.OwnerID)
	require.Equal(t, dm.ID, s.Session().ActiveDMID)
}

func TestUpdateUserMergesPatch(t *testing.T) {
	s := newTestStore(t, nil)
	signup(t, s, "Alice")

	status := models.StatusIdle
	about := "hello there"
	user, err := s.UpdateUser(models.UserPatch{Status: &status, AboutMe: &about})
	require.NoError(t, err)
	require.Equal(t, models.StatusIdle, user.Status)
	require.Equal(t, "hello there", user.AboutMe)
	require.Equal(t, "Alice", user.Username)

	s.Logout()
	_, err = s.UpdateUser(models.UserPatch{AboutMe: &about})
	require.ErrorIs(t, err, store.ErrUnauthenticated)
}

func TestMessageOrderSurvivesPersistenceRoundTrip(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "roundtrip.db")

	kv := newTestKv(t, dbFile)
	s := store.New(zap.NewNop().Sugar(), kv, nil, store.DefaultBot())

	signup(t, s, "Alice")
	server, err := s.CreateServer("Alpha", false, "")
	require.NoError(t, err)
	channelID := server.Channels[0].ID

	for _, content := range []string{"one", "two", "three"} {
		_, err := s.SendMessage(channelID, content, nil)
		require.NoError(t, err)
	}
	want := s.Messages(channelID)

	reloaded := store.New(zap.NewNop().Sugar(), newTestKv(t, dbFile), nil, store.DefaultBot())
	require.Equal(t, want, reloaded.Messages(channelID))

	got := reloaded.Messages(channelID)
	require.Equal(t, []string{"one", "two", "three"}, []string{got[0].Content, got[1].Content, got[2].Content})
}

func TestNavigationActivatesFirstChannel(t *testing.T) {
	s := newTestStore(t, nil)
	signup(t, s, "Alice")

	server, err := s.CreateServer("Alpha", false, "")
	require.NoError(t, err)

	s.SetActiveServer(store.NavDiscovery)
	require.Equal(t, store.NavDiscovery, s.Session().ActiveServerID)

	s.SetActiveServer(server.ID)
	session := s.Session()
	require.Equal(t, server.ID, session.ActiveServerID)
	require.Equal(t, server.Channels[0].ID, session.ActiveChannelID)

	s.SetActiveDm("dm-123")
	require.Equal(t, "dm-123", s.Session().ActiveDMID)
}

func TestModalState(t *testing.T) {
	s := newTestStore(t, nil)
	signup(t, s, "Alice")

	s.ToggleSettings(true)
	require.True(t, s.Session().Modals.Settings)
	s.ToggleSettings(false)
	require.False(t, s.Session().Modals.Settings)

	serverID := "server-1"
	s.SetModals(models.Modals{ServerSettings: &serverID})
	modals := s.Session().Modals
	require.NotNil(t, modals.ServerSettings)
	require.Equal(t, serverID, *modals.ServerSettings)
	require.False(t, modals.Settings)
}

func TestAddBotReusesWelcomeDm(t *testing.T) {
	s := newTestStore(t, nil)
	signup(t, s, "Alice")
	require.Len(t, s.DMs(), 1)

	dm, err := s.AddBot(s.Bot())
	require.NoError(t, err)

	// the welcome DM already pairs the user with the bot
	require.Len(t, s.DMs(), 1)
	require.Equal(t, s.DMs()[0].ID, dm.ID)
	require.Equal(t, dm.ID, s.Session().ActiveDMID)
}

func TestAvailableEmojisPerContainer(t *testing.T) {
	s := newTestStore(t, nil)
	signup(t, s, "Alice")

	alpha, err := s.CreateServer("Alpha", false, "")
	require.NoError(t, err)
	beta, err := s.CreateServer("Beta", false, "")
	require.NoError(t, err)

	_, err = s.AddEmojiToServer(alpha.ID, "wave", "wave.png")
	require.NoError(t, err)
	_, err = s.AddEmojiToServer(beta.ID, "party", "party.gif")
	require.NoError(t, err)

	inAlpha := s.AvailableEmojis(alpha.Channels[0].ID)
	require.Len(t, inAlpha, 1)
	require.Equal(t, "wave", inAlpha[0].Name)

	dm, err := s.AddBot(s.Bot())
	require.NoError(t, err)
	inDm := s.AvailableEmojis(dm.ID)
	require.Len(t, inDm, 2)
}

func TestAddGameAssignsID(t *testing.T) {
	s := newTestStore(t, nil)
	signup(t, s, "Alice")

	added, err := s.AddGame(models.Game{Name: "Chess", Icon: "chess.png"})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	games := s.Games()
	require.Len(t, games, 1)
	require.Equal(t, added.ID, games[0].ID)
}

func TestUnauthenticatedOperationsFail(t *testing.T) {
	s := newTestStore(t, nil)

	_, err := s.CreateServer("Alpha", false, "")
	require.ErrorIs(t, err, store.ErrUnauthenticated)

	_, err = s.SendMessage("chan-1", "hi", nil)
	require.ErrorIs(t, err, store.ErrUnauthenticated)

	_, err = s.CreateDm("user-1")
	require.ErrorIs(t, err, store.ErrUnauthenticated)

	_, err = s.CreateGroupDm([]string{"user-1"})
	require.ErrorIs(t, err, store.ErrUnauthenticated)
}
