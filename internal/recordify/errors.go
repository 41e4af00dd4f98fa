package recordify

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyUID is returned when a tag operation is attempted without a UID.
	ErrEmptyUID = errors.New("uid is required")
	// ErrEmptyTrackRef is returned when saving a tag without a Spotify reference.
	ErrEmptyTrackRef = errors.New("spotify reference is required")
)

// StatusError reports a non-2xx response from the backend. Body holds the
// first few KiB of the response for the log.
type StatusError struct {
	Op        string
	Path      string
	Code      int
	Body      string
	RequestID string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: api %s returned status %d", e.Op, e.Path, e.Code)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

// ValidateSave checks the pre-flight conditions for saving a tag.
func ValidateSave(uid, trackRef string) error {
	if strings.TrimSpace(uid) == "" {
		return ErrEmptyUID
	}
	if strings.TrimSpace(trackRef) == "" {
		return ErrEmptyTrackRef
	}
	return nil
}

// ValidatePlay checks the pre-flight conditions for playing a tag.
func ValidatePlay(uid string) error {
	if strings.TrimSpace(uid) == "" {
		return ErrEmptyUID
	}
	return nil
}
