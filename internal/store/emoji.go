package store

import (
	"slices"
	"sort"
	"strings"

	"github.com/GoldeNerd2/Aicord/internal/models"
)

// ExpandEmojiTokens replaces every :name: token with the emoji's image
// reference. Longest names substitute first so an emoji whose name is a
// prefix of another can't partially match.
func ExpandEmojiTokens(content string, emojis []models.Emoji) string {
	if len(emojis) == 0 || !strings.Contains(content, ":") {
		return content
	}

	sorted := slices.Clone(emojis)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Name) > len(sorted[j].Name)
	})

	for _, emoji := range sorted {
		content = strings.ReplaceAll(content, ":"+emoji.Name+":", emoji.URL)
	}
	return content
}

// AvailableEmojis gathers the emojis usable in a container: the owning
// server's set for a channel, the union of all servers' sets for a DM.
func (s *Store) AvailableEmojis(containerID string) []models.Emoji {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if server, _ := s.findServerChannelLocked(containerID); server != nil {
		return slices.Clone(server.Emojis)
	}

	var out []models.Emoji
	for _, server := range s.servers {
		out = append(out, server.Emojis...)
	}
	return out
}
