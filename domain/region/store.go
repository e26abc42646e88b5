package region

import (
	"errors"
	"fmt"
	"log/slog"
)

// Store holds the ordered regions of one image session. Insertion order is
// display order: the 1-based ordinal shown to the user is position+1 and is
// recomputed after every mutation, never persisted. All mutations happen on
// the UI event loop, so the store carries no locking.
type Store struct {
	logger  *slog.Logger
	regions []Region
}

var (
	// ErrEmptyCommit is returned when save is invoked with zero regions.
	ErrEmptyCommit = errors.New("region store is empty")
	// ErrDuplicateID is returned when an id already exists in the store.
	ErrDuplicateID = errors.New("duplicate region id")
)

// NewStore returns an empty store. logger may be nil.
func NewStore(logger *slog.Logger) *Store {
	return &Store{logger: logger}
}

// Append adds a region to the end of the store. The region must carry a
// non-empty id unique within the store and a crop inside its original bounds.
func (s *Store) Append(r Region) error {
	if s == nil {
		return errors.New("nil store")
	}
	if r.ID == "" {
		return errors.New("region id must not be empty")
	}
	if !r.Crop.Valid() {
		return fmt.Errorf("invalid crop %+v", r.Crop)
	}
	for _, have := range s.regions {
		if have.ID == r.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
	}
	s.regions = append(s.regions, r)
	if s.logger != nil {
		s.logger.Debug("region appended", "id", r.ID, "ordinal", len(s.regions),
			"x", r.Crop.X, "y", r.Crop.Y, "w", r.Crop.Width, "h", r.Crop.Height)
	}
	return nil
}

// Remove deletes the region with the given id. Later regions shift down one
// position, which also shifts their derived ordinals and colors.
func (s *Store) Remove(id string) bool {
	if s == nil {
		return false
	}
	for i, r := range s.regions {
		if r.ID == id {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			if s.logger != nil {
				s.logger.Debug("region removed", "id", id, "remaining", len(s.regions))
			}
			return true
		}
	}
	return false
}

// Clear empties the store. Used when a session ends or the user resets.
func (s *Store) Clear() {
	if s == nil {
		return
	}
	s.regions = s.regions[:0]
}

// Len returns the number of stored regions.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.regions)
}

// Regions returns a copy of the current contents in display order.
func (s *Store) Regions() []Region {
	if s == nil || len(s.regions) == 0 {
		return nil
	}
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// Commit hands the full current contents to cb. An empty store is a warned
// no-op: cb is never invoked and ErrEmptyCommit comes back so the caller can
// surface it.
func (s *Store) Commit(cb CommitFunc) error {
	if s == nil {
		return errors.New("nil store")
	}
	if len(s.regions) == 0 {
		if s.logger != nil {
			s.logger.Warn("commit with empty region store")
		}
		return ErrEmptyCommit
	}
	if cb == nil {
		return errors.New("nil commit callback")
	}
	cb(s.Regions())
	if s.logger != nil {
		s.logger.Info("regions committed", "count", len(s.regions))
	}
	return nil
}
