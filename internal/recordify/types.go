package recordify

import (
	"fmt"
	"time"
)

// NowPlaying mirrors the payload returned by /api/now_playing.
type NowPlaying struct {
	IsPlaying  bool   `json:"is_playing"`
	ProgressMS *int64 `json:"progress_ms,omitempty"`
	Item       *Track `json:"item"`
}

// Track describes the item currently loaded in the Spotify player.
// Artists arrives pre-joined by the backend.
type Track struct {
	Name       string `json:"name"`
	Artists    string `json:"artists"`
	Album      string `json:"album"`
	ImageURL   string `json:"image_url"`
	SpotifyURL string `json:"spotify_url"`
	URI        string `json:"uri,omitempty"`
}

// saveTagRequest is the body sent to POST /api/tags/{uid}.
type saveTagRequest struct {
	SpotifyURI string `json:"spotify_uri"`
}

// Clone returns a deep copy so snapshots never share pointers.
func (n *NowPlaying) Clone() *NowPlaying {
	if n == nil {
		return nil
	}
	dup := *n
	if n.ProgressMS != nil {
		progress := *n.ProgressMS
		dup.ProgressMS = &progress
	}
	if n.Item != nil {
		item := *n.Item
		dup.Item = &item
	}
	return &dup
}

// Progress returns the playback position when the backend reported one.
func (n *NowPlaying) Progress() (time.Duration, bool) {
	if n == nil || n.ProgressMS == nil || *n.ProgressMS < 0 {
		return 0, false
	}
	return time.Duration(*n.ProgressMS) * time.Millisecond, true
}

// FormatProgress renders a position as m:ss.
func FormatProgress(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
