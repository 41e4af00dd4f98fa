package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/recordify/internal/recordify"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	np := &recordify.NowPlaying{IsPlaying: true, Item: &recordify.Track{Name: "Song"}}

	before := time.Now()
	s.Update(np, nil)

	snap := s.Snapshot()
	if !snap.IsPlaying() || snap.NowPlaying.Item.Name != "Song" {
		t.Fatalf("snapshot = %#v, want playing Song", snap.NowPlaying)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if snap.Polls != 1 {
		t.Fatalf("Polls = %d, want 1", snap.Polls)
	}

	// Neither the caller's value nor the returned snapshot may alias the store.
	np.Item.Name = "mutated"
	snap.NowPlaying.Item.Name = "also mutated"
	snap2 := s.Snapshot()
	if snap2.NowPlaying.Item.Name != "Song" {
		t.Fatalf("Store should clone playback data; got name %q want Song", snap2.NowPlaying.Item.Name)
	}
}

func TestStore_UpdateErrorClearsPlayback(t *testing.T) {
	var s Store

	s.Update(&recordify.NowPlaying{IsPlaying: true, Item: &recordify.Track{Name: "Song"}}, nil)

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.NowPlaying != nil {
		t.Fatalf("NowPlaying = %#v, want nil after failed poll", snap.NowPlaying)
	}
	if snap.IsPlaying() {
		t.Fatalf("IsPlaying() = true, want false after failed poll")
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_NilPlaybackIsNotPlaying(t *testing.T) {
	var s Store
	s.Update(nil, nil)
	snap := s.Snapshot()
	if snap.NowPlaying != nil || snap.IsPlaying() {
		t.Fatalf("snapshot = %#v, want empty", snap.NowPlaying)
	}

	s.Update(&recordify.NowPlaying{IsPlaying: false, Item: &recordify.Track{Name: "Paused"}}, nil)
	if s.Snapshot().IsPlaying() {
		t.Fatalf("IsPlaying() = true, want false when is_playing is false")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("fresh store: failures=%d offline=%v, want 0 false", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}

	s.Update(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	s.Update(&recordify.NowPlaying{}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false after success")
	}
	if snap.Polls != 3 {
		t.Fatalf("Polls = %d, want 3", snap.Polls)
	}
}

func TestStore_SnapshotKeepsErrorValue(t *testing.T) {
	var s Store

	statusErr := &recordify.StatusError{Op: "now playing", Path: "/api/now_playing", Code: 502}
	s.Update(nil, statusErr)

	snap := s.Snapshot()
	if snap.LastError != error(statusErr) {
		t.Fatalf("LastError = %#v, want the stored *StatusError itself", snap.LastError)
	}
}
