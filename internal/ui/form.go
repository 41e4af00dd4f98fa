package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/recordify/internal/recordify"
)

const (
	msgEnterUID      = "Please enter a UID."
	msgEnterTrackRef = "Please enter a Spotify URL/URI."
	msgSaveFailed    = "Save failed. Check the log."
	msgPlayFailed    = "Play failed. Check the log."
	msgSaved         = "Saved!"
)

var errNoBackend = errors.New("no backend configured")

type saveResultMsg struct {
	uid string
	err error
}

type playResultMsg struct {
	uid string
	err error
}

// saveTag validates the editor fields and starts a save request.
func (m Model) saveTag() (tea.Model, tea.Cmd) {
	uid, ref := m.uid.Value(), m.trackRef.Value()
	if m.saving {
		m.logger.Warn("save ignored", "uid", uid, "err", ErrBusy)
		return m, nil
	}
	if err := recordify.ValidateSave(uid, ref); err != nil {
		m.pushAlert(newAlert(alertWarning, validationMessage(err)))
		return m, nil
	}

	m.saving = true
	m.logger.Info("saving tag", "uid", uid, "track", ref)
	return m, saveCmd(m.ctx, m.backend, uid, ref)
}

// playTag validates the UID field and starts a play request.
func (m Model) playTag() (tea.Model, tea.Cmd) {
	uid := m.uid.Value()
	if m.playing {
		m.logger.Warn("play ignored", "uid", uid, "err", ErrBusy)
		return m, nil
	}
	if err := recordify.ValidatePlay(uid); err != nil {
		m.pushAlert(newAlert(alertWarning, validationMessage(err)))
		return m, nil
	}

	m.playing = true
	m.logger.Info("playing tag", "uid", uid)
	return m, playCmd(m.ctx, m.backend, uid)
}

func (m Model) handleSaveResult(msg saveResultMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	switch {
	case msg.err == nil:
		m.logger.Info("tag saved", "uid", msg.uid)
		m.pushAlert(newAlert(alertSuccess, msgSaved))
	case errors.Is(msg.err, context.Canceled):
		m.logger.Info("save cancelled", "uid", msg.uid)
	default:
		logRequestError(m, "save failed", msg.uid, msg.err)
		m.pushAlert(newAlert(alertError, msgSaveFailed))
	}
	return m, nil
}

func (m Model) handlePlayResult(msg playResultMsg) (tea.Model, tea.Cmd) {
	m.playing = false
	switch {
	case msg.err == nil:
		m.logger.Info("tag played", "uid", msg.uid)
	case errors.Is(msg.err, context.Canceled):
		m.logger.Info("play cancelled", "uid", msg.uid)
	default:
		logRequestError(m, "play failed", msg.uid, msg.err)
		m.pushAlert(newAlert(alertError, msgPlayFailed))
	}
	return m, nil
}

// logRequestError writes the full failure detail, including the response
// status and body when the backend answered.
func logRequestError(m Model, text, uid string, err error) {
	var statusErr *recordify.StatusError
	if errors.As(err, &statusErr) {
		m.logger.Error(text,
			"uid", uid,
			"status", statusErr.Code,
			"body", statusErr.Body,
			"request_id", statusErr.RequestID,
		)
		return
	}
	m.logger.Error(text, "uid", uid, "err", err)
}

func validationMessage(err error) string {
	if errors.Is(err, recordify.ErrEmptyTrackRef) {
		return msgEnterTrackRef
	}
	return msgEnterUID
}

func saveCmd(ctx context.Context, backend recordify.Backend, uid, ref string) tea.Cmd {
	return func() tea.Msg {
		if backend == nil {
			return saveResultMsg{uid: uid, err: errNoBackend}
		}
		return saveResultMsg{uid: uid, err: backend.SaveTag(ctx, uid, ref)}
	}
}

func playCmd(ctx context.Context, backend recordify.Backend, uid string) tea.Cmd {
	return func() tea.Msg {
		if backend == nil {
			return playResultMsg{uid: uid, err: errNoBackend}
		}
		return playResultMsg{uid: uid, err: backend.PlayTag(ctx, uid)}
	}
}

// resizeInputs fits both text inputs to the editor card for the current
// layout.
func (m *Model) resizeInputs() {
	inner := m.editorWidth() - 4 // card border and padding
	// Input box border and padding, plus one cell for the cursor.
	w := max(inner-5, 8)
	m.uid.Width = w
	m.trackRef.Width = w
}
