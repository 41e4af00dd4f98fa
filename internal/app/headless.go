package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/five82/recordify/internal/recordify"
)

// ErrNothingPlaying is returned by NowPlaying when the player has no item.
var ErrNothingPlaying = errors.New("nothing playing")

// NowPlaying polls the backend once and prints the current track to w.
func NowPlaying(ctx context.Context, backend recordify.Backend, w io.Writer, logger *log.Logger) error {
	np, err := backend.NowPlaying(ctx)
	if err != nil {
		logger.Error("now playing poll failed", "err", err)
		return fmt.Errorf("poll now playing: %w", err)
	}
	if np == nil || np.Item == nil {
		fmt.Fprintln(w, "Nothing playing right now.")
		return ErrNothingPlaying
	}
	return printTrack(w, np)
}

func printTrack(w io.Writer, np *recordify.NowPlaying) error {
	badge := "⏸ Paused"
	if np.IsPlaying {
		badge = "▶ Playing"
	}
	item := np.Item

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", badge, item.Name)
	fmt.Fprintf(&b, "  artist: %s\n", item.Artists)
	fmt.Fprintf(&b, "  album:  %s\n", item.Album)
	if progress, ok := np.Progress(); ok {
		fmt.Fprintf(&b, "  at:     %s\n", recordify.FormatProgress(progress))
	}
	if item.SpotifyURL != "" {
		fmt.Fprintf(&b, "  link:   %s\n", item.SpotifyURL)
	}
	if item.ImageURL != "" {
		fmt.Fprintf(&b, "  art:    %s\n", item.ImageURL)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// SaveTag binds uid to trackRef. Validation failures return before any
// request; backend failures are logged with their full detail.
func SaveTag(ctx context.Context, backend recordify.Backend, uid, trackRef string, logger *log.Logger) error {
	if err := recordify.ValidateSave(uid, trackRef); err != nil {
		return err
	}
	if err := backend.SaveTag(ctx, uid, trackRef); err != nil {
		logFailure(logger, "save failed", uid, err)
		return fmt.Errorf("save tag: %w", err)
	}
	logger.Info("tag saved", "uid", uid, "track", trackRef)
	return nil
}

// PlayTag asks the backend to play the track bound to uid.
func PlayTag(ctx context.Context, backend recordify.Backend, uid string, logger *log.Logger) error {
	if err := recordify.ValidatePlay(uid); err != nil {
		return err
	}
	if err := backend.PlayTag(ctx, uid); err != nil {
		logFailure(logger, "play failed", uid, err)
		return fmt.Errorf("play tag: %w", err)
	}
	logger.Info("tag played", "uid", uid)
	return nil
}

func logFailure(logger *log.Logger, msg, uid string, err error) {
	var statusErr *recordify.StatusError
	if errors.As(err, &statusErr) {
		logger.Error(msg, "uid", uid, "status", statusErr.Code, "body", statusErr.Body, "request_id", statusErr.RequestID)
		return
	}
	logger.Error(msg, "uid", uid, "err", err)
}
