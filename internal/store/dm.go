package store

import (
	"slices"

	"github.com/GoldeNerd2/Aicord/internal/models"
	"github.com/GoldeNerd2/Aicord/internal/snowflake"
)

// CreateDm finds or creates the unique 2-party DM between the session user
// and the target, activates it and switches navigation home. Calling it again
// for the same pair, in either direction, yields the same DM.
func (s *Store) CreateDm(targetUserID string) (*models.DMChannel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUserLocked()
	if user == nil {
		return nil, ErrUnauthenticated
	}

	for _, dm := range s.dms {
		if len(dm.RecipientIDs) != 2 {
			continue
		}
		if slices.Contains(dm.RecipientIDs, targetUserID) && slices.Contains(dm.RecipientIDs, user.ID) {
			s.session.ActiveDMID = dm.ID
			s.session.ActiveServerID = NavHome

			out := *dm
			return &out, nil
		}
	}

	dmID, err := snowflake.NextID("dm")
	if err != nil {
		return nil, err
	}

	dm := &models.DMChannel{
		ID:           dmID,
		RecipientIDs: []string{user.ID, targetUserID},
	}

	// newest conversation first
	s.dms = append([]*models.DMChannel{dm}, s.dms...)
	s.saveDMsLocked()

	s.session.ActiveDMID = dmID
	s.session.ActiveServerID = NavHome

	out := *dm
	return &out, nil
}

// CreateGroupDm creates a new group with the session user as owner. The
// caller is deduplicated into the member set.
func (s *Store) CreateGroupDm(userIDs []string) (*models.DMChannel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUserLocked()
	if user == nil {
		return nil, ErrUnauthenticated
	}

	members := []string{user.ID}
	for _, id := range userIDs {
		if !slices.Contains(members, id) {
			members = append(members, id)
		}
	}

	dmID, err := snowflake.NextID("dm-group")
	if err != nil {
		return nil, err
	}

	dm := &models.DMChannel{
		ID:           dmID,
		RecipientIDs: members,
		OwnerID:      user.ID,
	}

	s.dms = append([]*models.DMChannel{dm}, s.dms...)
	s.saveDMsLocked()

	s.session.ActiveDMID = dmID
	s.session.ActiveServerID = NavHome
	s.session.Modals.CreateGroupDm = false

	out := *dm
	return &out, nil
}
