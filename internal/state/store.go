package state

import (
	"sync"
	"time"

	"github.com/five82/recordify/internal/recordify"
)

// Snapshot represents the latest playback data available to the UI.
type Snapshot struct {
	NowPlaying          *recordify.NowPlaying // nil when nothing is playing or the last poll failed
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	Polls               int
}

// IsOffline returns true when the backend has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// IsPlaying reports whether the backend said playback is active.
func (s Snapshot) IsPlaying() bool {
	return s.NowPlaying != nil && s.NowPlaying.IsPlaying
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. A failed poll clears the playback
// data: the panel treats failure the same as nothing playing.
func (s *Store) Update(np *recordify.NowPlaying, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Polls++
	if err != nil {
		s.snapshot.NowPlaying = nil
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.NowPlaying = np.Clone()
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.NowPlaying = s.snapshot.NowPlaying.Clone()
	return snap
}
