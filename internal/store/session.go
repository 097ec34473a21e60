package store

import "github.com/GoldeNerd2/Aicord/internal/models"

// Navigation is pure state, nothing here persists across restarts.

// SetActiveServer switches the active navigation target. Switching to a real
// server that has channels also activates its first channel by list order.
func (s *Store) SetActiveServer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.ActiveServerID = id

	if id == NavHome || id == NavDiscovery {
		return
	}
	if server := s.findServerLocked(id); server != nil && len(server.Channels) > 0 {
		s.session.ActiveChannelID = server.Channels[0].ID
	}
}

func (s *Store) SetActiveChannel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.ActiveChannelID = id
}

func (s *Store) SetActiveDm(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.ActiveDMID = id
}

func (s *Store) ToggleSettings(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Modals.Settings = open
}

// SetModals replaces the open-modal set wholesale; modal payloads identify
// the entity a modal edits.
func (s *Store) SetModals(modals models.Modals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Modals = modals
}
