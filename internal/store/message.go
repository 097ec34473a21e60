package store

import (
	"context"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/GoldeNerd2/Aicord/internal/ai"
	"github.com/GoldeNerd2/Aicord/internal/models"
	"github.com/GoldeNerd2/Aicord/internal/snowflake"
)

// aiChannelName is the server channel name that always routes to the responder.
const aiChannelName = "ai-chat"

var mentionPattern = regexp.MustCompile(`@(\w+)`)

// SendMessage appends a message authored by the session user to the container
// and persists it. When the message is AI-directed (DM with the bot, a channel
// named "ai-chat", or an @-mention of the bot) the responder is dispatched
// asynchronously with the container's prior turn history; its reply lands as a
// new bot-authored message. A failed dispatch is logged and swallowed, the
// user's own message always stays recorded.
func (s *Store) SendMessage(containerID string, content string, attachments []models.Attachment) (*models.Message, error) {
	s.mu.Lock()

	author := s.currentUserLocked()
	if author == nil {
		s.mu.Unlock()
		return nil, ErrUnauthenticated
	}

	messageID, err := snowflake.NextID("msg")
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	msg := &models.Message{
		ID:          messageID,
		ChannelID:   containerID,
		AuthorID:    author.ID,
		Content:     content,
		Timestamp:   time.Now().UnixMilli(),
		Attachments: attachments,
		Mentions:    s.scanMentionsLocked(content),
	}

	aiDirected := s.aiDirectedLocked(containerID, content)
	var history []ai.Turn
	if aiDirected {
		// history covers every message before this one, in stored order
		history = s.turnHistoryLocked(containerID)
	}

	s.messages[containerID] = append(s.messages[containerID], msg)
	s.saveMessagesLocked()

	s.mu.Unlock()

	if aiDirected && s.responder != nil {
		go s.dispatchAI(containerID, content, history)
	}

	out := *msg
	return &out, nil
}

// scanMentionsLocked finds every @word token naming a known user by exact
// username, deduplicated, in order of appearance.
func (s *Store) scanMentionsLocked(content string) []string {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	var mentions []string
	for _, match := range matches {
		for _, id := range s.userIDsSortedLocked() {
			if s.users[id].Username != match[1] {
				continue
			}
			if !slices.Contains(mentions, id) {
				mentions = append(mentions, id)
			}
			break
		}
	}
	return mentions
}

func (s *Store) aiDirectedLocked(containerID string, content string) bool {
	if dm := s.findDMLocked(containerID); dm != nil && slices.Contains(dm.RecipientIDs, s.bot.ID) {
		return true
	}

	if _, channel := s.findServerChannelLocked(containerID); channel != nil && channel.Name == aiChannelName {
		return true
	}

	return strings.Contains(content, "@"+s.bot.Username)
}

// turnHistoryLocked maps the container's stored messages to responder turns.
// Bot-authored messages become the model role, everything else the user role;
// author identity is erased.
func (s *Store) turnHistoryLocked(containerID string) []ai.Turn {
	list := s.messages[containerID]
	history := make([]ai.Turn, 0, len(list))
	for _, msg := range list {
		role := ai.RoleUser
		if msg.AuthorID == s.bot.ID {
			role = ai.RoleModel
		}
		history = append(history, ai.Turn{Role: role, Text: msg.Content})
	}
	return history
}

// dispatchAI runs on its own goroutine, one outstanding request per sent
// message. There is no retry, no router-side timeout and no cancellation.
func (s *Store) dispatchAI(containerID string, content string, history []ai.Turn) {
	reply, err := s.responder.Respond(context.Background(), content, history)
	if err != nil {
		s.sugar.Errorf("AI responder failed for container [%s]: %v", containerID, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messageID, err := snowflake.NextID("msg-ai")
	if err != nil {
		s.sugar.Error(err)
		return
	}

	s.messages[containerID] = append(s.messages[containerID], &models.Message{
		ID:        messageID,
		ChannelID: containerID,
		AuthorID:  s.bot.ID,
		Content:   reply,
		Timestamp: time.Now().UnixMilli(),
	})
	s.saveMessagesLocked()
}
