// Package state holds the latest now-playing snapshot shared between the
// poller and the control panel.
//
// # Architecture
//
//	Producer (Poller):             Consumer (UI):
//	┌──────────────────┐          ┌──────────────────┐
//	│ NowPlaying()     │          │                  │
//	│      ↓           │          │                  │
//	│ store.Update()   │─────────→│ store.Snapshot() │
//	│      ↓           │ (mutex)  │      ↓           │
//	│ notify UI        │          │ render panel     │
//	└──────────────────┘          └──────────────────┘
//
// # Update Semantics
//
//	// Success: replace the playback data wholesale
//	store.Update(np, nil)
//	→ snapshot.NowPlaying = copy of np (nil when the backend sent nothing)
//	→ snapshot.LastError = nil, ConsecutiveFailures = 0
//
//	// Failure: drop the playback data and record the error
//	store.Update(nil, err)
//	→ snapshot.NowPlaying = nil
//	→ snapshot.LastError = err, ConsecutiveFailures++
//
// A failed poll is rendered exactly like "nothing playing". The error and
// failure count only feed the status line.
//
// # Copying
//
// Update and Snapshot both deep-copy the playback data, so the UI can never
// observe a snapshot being modified under it. The zero Store is ready to use.
package state
