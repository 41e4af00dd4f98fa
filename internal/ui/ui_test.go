package ui

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/recordify/internal/prefs"
	"github.com/five82/recordify/internal/recordify"
	"github.com/five82/recordify/internal/state"
)

type stubBackend struct {
	mu      sync.Mutex
	saves   []string
	plays   []string
	saveErr error
	playErr error
}

func (s *stubBackend) SaveTag(_ context.Context, uid, trackRef string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, uid+"="+trackRef)
	return s.saveErr
}

func (s *stubBackend) PlayTag(_ context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plays = append(s.plays, uid)
	return s.playErr
}

func (s *stubBackend) NowPlaying(context.Context) (*recordify.NowPlaying, error) {
	return nil, nil
}

func (s *stubBackend) counts() (saves, plays int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves), len(s.plays)
}

func newTestModel(t *testing.T, backend recordify.Backend) Model {
	t.Helper()
	m := New(Options{
		Backend:   backend,
		Store:     &state.Store{},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		OpenLink:  func(string) error { return nil },
	})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

func ctrl(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func alertMessages(m Model) []string {
	out := make([]string, 0, len(m.alerts))
	for _, a := range m.alerts {
		if al, ok := a.(alert); ok {
			out = append(out, al.message)
		}
	}
	return out
}

func populatedSnapshot() state.Snapshot {
	progress := int64(61000)
	return state.Snapshot{
		Polls: 1,
		NowPlaying: &recordify.NowPlaying{
			IsPlaying:  true,
			ProgressMS: &progress,
			Item: &recordify.Track{
				Name:       "Song",
				Artists:    "Artist",
				Album:      "Album",
				ImageURL:   "http://x/y.jpg",
				SpotifyURL: "https://open.spotify.com/track/1",
			},
		},
	}
}

func TestSaveValidationRaisesAlertWithoutRequest(t *testing.T) {
	cases := []struct {
		name     string
		uid, ref string
		want     string
	}{
		{"empty uid", "", "spotify:track:1", msgEnterUID},
		{"blank uid", "  \t", "spotify:track:1", msgEnterUID},
		{"empty ref", "04A1", "", msgEnterTrackRef},
		{"blank ref", "04A1", "   ", msgEnterTrackRef},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &stubBackend{}
			m := newTestModel(t, backend)
			m.uid.SetValue(tc.uid)
			m.trackRef.SetValue(tc.ref)

			m, cmd := send(t, m, ctrl(tea.KeyCtrlS))
			if cmd != nil {
				t.Fatalf("save returned a command for invalid input")
			}
			if m.saving {
				t.Fatalf("saving = true, want false")
			}
			if got := alertMessages(m); len(got) != 1 || got[0] != tc.want {
				t.Fatalf("alerts = %v, want [%s]", got, tc.want)
			}
			if saves, _ := backend.counts(); saves != 0 {
				t.Fatalf("backend saves = %d, want 0", saves)
			}
		})
	}
}

func TestPlayValidationRaisesAlertWithoutRequest(t *testing.T) {
	backend := &stubBackend{}
	m := newTestModel(t, backend)
	m.uid.SetValue("   ")

	m, cmd := send(t, m, ctrl(tea.KeyCtrlP))
	if cmd != nil {
		t.Fatalf("play returned a command for a blank uid")
	}
	if m.playing {
		t.Fatalf("playing = true, want false")
	}
	if got := alertMessages(m); len(got) != 1 || got[0] != msgEnterUID {
		t.Fatalf("alerts = %v, want [%s]", got, msgEnterUID)
	}
	if _, plays := backend.counts(); plays != 0 {
		t.Fatalf("backend plays = %d, want 0", plays)
	}
}

func TestSaveSuccessShowsSavedAndClearsBusy(t *testing.T) {
	backend := &stubBackend{}
	m := newTestModel(t, backend)
	m.uid.SetValue("04A1B2C3D4")
	m.trackRef.SetValue("spotify:track:abc")

	m, cmd := send(t, m, ctrl(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatalf("save returned nil command")
	}
	if !m.saving {
		t.Fatalf("saving = false while request in flight")
	}
	if !strings.Contains(m.View(), "Saving...") {
		t.Fatalf("view does not show Saving... while busy")
	}

	m, _ = send(t, m, cmd())
	if m.saving {
		t.Fatalf("saving = true after result, want false")
	}
	if got := alertMessages(m); len(got) != 1 || got[0] != msgSaved {
		t.Fatalf("alerts = %v, want [%s]", got, msgSaved)
	}
	if backend.saves[0] != "04A1B2C3D4=spotify:track:abc" {
		t.Fatalf("saved %q, want 04A1B2C3D4=spotify:track:abc", backend.saves[0])
	}
	if !strings.Contains(m.View(), msgSaved) {
		t.Fatalf("view does not show the Saved! alert")
	}
}

func TestSaveFailureShowsGenericAlert(t *testing.T) {
	backend := &stubBackend{saveErr: &recordify.StatusError{Op: "save tag", Path: "/api/tags/x", Code: http.StatusInternalServerError, Body: "boom"}}
	m := newTestModel(t, backend)
	m.uid.SetValue("x")
	m.trackRef.SetValue("spotify:track:1")

	m, cmd := send(t, m, ctrl(tea.KeyCtrlS))
	m, _ = send(t, m, cmd())
	if m.saving {
		t.Fatalf("saving = true after failure, want false")
	}
	if got := alertMessages(m); len(got) != 1 || got[0] != msgSaveFailed {
		t.Fatalf("alerts = %v, want [%s]", got, msgSaveFailed)
	}
}

func TestPlayResultAlwaysClearsBusy(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		alerts []string
	}{
		{"success", nil, nil},
		{"failure", errors.New("dial tcp: connection refused"), []string{msgPlayFailed}},
		{"cancelled", context.Canceled, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &stubBackend{playErr: tc.err}
			m := newTestModel(t, backend)
			m.uid.SetValue("04A1")

			m, cmd := send(t, m, ctrl(tea.KeyCtrlP))
			if !m.playing || cmd == nil {
				t.Fatalf("play did not start: playing=%v cmd=%v", m.playing, cmd != nil)
			}
			m, _ = send(t, m, cmd())
			if m.playing {
				t.Fatalf("playing = true after result, want false")
			}
			if got := alertMessages(m); len(got) != len(tc.alerts) || (len(got) == 1 && got[0] != tc.alerts[0]) {
				t.Fatalf("alerts = %v, want %v", got, tc.alerts)
			}
		})
	}
}

func TestSecondSaveWhileSavingIsRejected(t *testing.T) {
	backend := &stubBackend{}
	m := newTestModel(t, backend)
	m.uid.SetValue("04A1")
	m.trackRef.SetValue("spotify:track:1")

	m, first := send(t, m, ctrl(tea.KeyCtrlS))
	m, second := send(t, m, ctrl(tea.KeyCtrlS))
	if second != nil {
		t.Fatalf("second save returned a command while busy")
	}
	m, _ = send(t, m, first())
	if saves, _ := backend.counts(); saves != 1 {
		t.Fatalf("backend saves = %d, want 1", saves)
	}
	if len(m.alerts) != 1 {
		t.Fatalf("alerts = %v, want only the result alert", alertMessages(m))
	}
}

func TestSaveAndPlayAreIndependent(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m.uid.SetValue("04A1")
	m.trackRef.SetValue("spotify:track:1")

	m, saveCmd := send(t, m, ctrl(tea.KeyCtrlS))
	m, playCmd := send(t, m, ctrl(tea.KeyCtrlP))
	if saveCmd == nil || playCmd == nil {
		t.Fatalf("save and play should both start")
	}
	if !m.saving || !m.playing {
		t.Fatalf("saving=%v playing=%v, want both true", m.saving, m.playing)
	}
}

func TestEnterMovesFocusThenSaves(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m.uid.SetValue("04A1")

	m, _ = send(t, m, ctrl(tea.KeyEnter))
	if m.focus != fieldTrackRef {
		t.Fatalf("focus = %v, want track field", m.focus)
	}
	m, cmd := send(t, m, ctrl(tea.KeyEnter))
	if cmd != nil {
		t.Fatalf("enter with empty track ref returned a command")
	}
	if got := alertMessages(m); len(got) != 1 || got[0] != msgEnterTrackRef {
		t.Fatalf("alerts = %v, want [%s]", got, msgEnterTrackRef)
	}
}

func TestEditorShowsFieldLabels(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	view := m.View()
	for _, want := range []string{labelUID, labelTrackRef} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing label %q", want)
		}
	}
}

func TestTypingGoesToFocusedField(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("04A1")})
	m, _ = send(t, m, ctrl(tea.KeyTab))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("spotify:track:9")})

	if got := m.uid.Value(); got != "04A1" {
		t.Fatalf("uid = %q, want 04A1", got)
	}
	if got := m.trackRef.Value(); got != "spotify:track:9" {
		t.Fatalf("trackRef = %q, want spotify:track:9", got)
	}
}

func TestAlertBlocksInputUntilDismissed(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m, _ = send(t, m, ctrl(tea.KeyCtrlS)) // empty uid alert

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	if got := m.uid.Value(); got != "" {
		t.Fatalf("uid = %q while alert open, want empty", got)
	}
	m, _ = send(t, m, ctrl(tea.KeyEnter))
	if len(m.alerts) != 0 {
		t.Fatalf("alerts = %v after dismiss, want none", alertMessages(m))
	}
}

func TestNowPlayingRendersTrackAsReceived(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m, _ = send(t, m, snapshotMsg(populatedSnapshot()))

	view := m.View()
	for _, want := range []string{"Song", "Artist", "Album", "http://x/y.jpg", openLinkLabel, "https://open.spotify.com/track/1", "1:01", badgePlaying} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
	if strings.Contains(view, emptyStateMessage) {
		t.Fatalf("view shows empty state with a track loaded")
	}
}

func TestNowPlayingOmitsLinkWithoutURL(t *testing.T) {
	snap := populatedSnapshot()
	snap.NowPlaying.Item.SpotifyURL = ""
	m := newTestModel(t, &stubBackend{})
	m, _ = send(t, m, snapshotMsg(snap))

	if strings.Contains(m.View(), openLinkLabel) {
		t.Fatalf("view shows the Spotify link without a spotify_url")
	}
}

func TestNullItemRendersEmptyState(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m, _ = send(t, m, snapshotMsg(state.Snapshot{
		Polls:      1,
		NowPlaying: &recordify.NowPlaying{IsPlaying: false},
	}))

	view := m.View()
	if !strings.Contains(view, emptyStateMessage) {
		t.Fatalf("view missing empty state message")
	}
	if !strings.Contains(view, badgePaused) {
		t.Fatalf("view missing paused badge")
	}
}

func TestBadgeFollowsIsPlaying(t *testing.T) {
	snap := populatedSnapshot()
	snap.NowPlaying.IsPlaying = false
	m := newTestModel(t, &stubBackend{})
	m, _ = send(t, m, snapshotMsg(snap))
	if got := m.renderBadge(); !strings.Contains(got, badgePaused) {
		t.Fatalf("badge = %q, want paused when is_playing is false", got)
	}

	m, _ = send(t, m, snapshotMsg(populatedSnapshot()))
	if got := m.renderBadge(); !strings.Contains(got, badgePlaying) {
		t.Fatalf("badge = %q, want playing", got)
	}
}

func TestPollFailureClearsPanel(t *testing.T) {
	store := &state.Store{}
	store.Update(populatedSnapshot().NowPlaying, nil)
	store.Update(nil, &recordify.StatusError{Op: "now playing", Path: "/api/now_playing", Code: http.StatusInternalServerError})

	m := newTestModel(t, &stubBackend{})
	m, _ = send(t, m, snapshotMsg(store.Snapshot()))

	if m.status.NowPlaying != nil {
		t.Fatalf("NowPlaying = %#v after failed poll, want nil", m.status.NowPlaying)
	}
	view := m.View()
	if !strings.Contains(view, emptyStateMessage) || !strings.Contains(view, badgePaused) {
		t.Fatalf("failed poll should render the idle panel")
	}
	if len(m.alerts) != 0 {
		t.Fatalf("poll failure raised alerts %v", alertMessages(m))
	}
}

func TestLayoutFollowsWindowSize(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	if m.layout != layoutWide {
		t.Fatalf("layout = %v at 200 cols, want wide", m.layout)
	}
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	if m.layout != layoutNarrow {
		t.Fatalf("layout = %v at 60 cols, want narrow", m.layout)
	}
	m, _ = send(t, m, tea.WindowSizeMsg{Width: DefaultWideLayoutMin, Height: 40})
	if m.layout != layoutWide {
		t.Fatalf("layout = %v at %d cols, want wide", m.layout, DefaultWideLayoutMin)
	}
}

func TestWaitForUpdateDeliversSnapshot(t *testing.T) {
	store := &state.Store{}
	updates := make(chan struct{}, 1)
	store.Update(populatedSnapshot().NowPlaying, nil)
	updates <- struct{}{}

	cmd := waitForUpdateCmd(context.Background(), updates, store)
	msg, ok := cmd().(storeUpdatedMsg)
	if !ok {
		t.Fatalf("waitForUpdateCmd returned %T, want storeUpdatedMsg", msg)
	}
	if msg.NowPlaying == nil || msg.NowPlaying.Item.Name != "Song" {
		t.Fatalf("snapshot = %#v, want Song", msg.NowPlaying)
	}

	m := newTestModel(t, &stubBackend{})
	m.updates, m.store = updates, store
	_, next := send(t, m, msg)
	if next == nil {
		t.Fatalf("store update did not re-arm the wait")
	}
}

func TestWaitForUpdateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd := waitForUpdateCmd(ctx, make(chan struct{}), &state.Store{})
	if msg := cmd(); msg != nil {
		t.Fatalf("waitForUpdateCmd after cancel = %#v, want nil", msg)
	}
}

func TestOpenLinkUsesCurrentTrack(t *testing.T) {
	var opened string
	m := New(Options{
		Store:     &state.Store{},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		OpenLink: func(u string) error {
			opened = u
			return nil
		},
	})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if _, cmd := send(t, m, ctrl(tea.KeyCtrlO)); cmd != nil {
		t.Fatalf("open link without a track returned a command")
	}

	m, _ = send(t, m, snapshotMsg(populatedSnapshot()))
	_, cmd := send(t, m, ctrl(tea.KeyCtrlO))
	if cmd == nil {
		t.Fatalf("open link returned nil command")
	}
	cmd()
	if opened != "https://open.spotify.com/track/1" {
		t.Fatalf("opened %q, want the track url", opened)
	}
}

func TestCycleThemePersistsPrefs(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m, _ = send(t, m, ctrl(tea.KeyCtrlT))
	if m.theme.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox", m.theme.Name)
	}
	if got := prefs.Load(m.prefsPath).Theme; got != "Nightfox" {
		t.Fatalf("saved theme = %q, want Nightfox", got)
	}
}

func TestLogOverlayReadsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recordify.log")
	data := "2026/10/17 12:00:00 INFO starting\n2026/10/17 12:00:02 ERRO save failed uid=x\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	m := New(Options{
		Store:     &state.Store{},
		LogPath:   path,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	m, cmd := send(t, m, ctrl(tea.KeyCtrlL))
	if !m.showLog || cmd == nil {
		t.Fatalf("ctrl+l did not open the log overlay")
	}
	m, _ = send(t, m, cmd())
	if len(m.logLines) != 2 {
		t.Fatalf("log lines = %d, want 2", len(m.logLines))
	}
	if !strings.Contains(m.View(), "save failed") {
		t.Fatalf("log overlay missing the error line")
	}

	m, _ = send(t, m, ctrl(tea.KeyEsc))
	if m.showLog {
		t.Fatalf("esc did not close the log overlay")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	_, cmd := send(t, m, ctrl(tea.KeyCtrlQ))
	if cmd == nil {
		t.Fatalf("ctrl+q returned nil command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+q did not quit")
	}
}

func TestHelpOverlayListsBindings(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m, _ = send(t, m, ctrl(tea.KeyF1))
	if !m.showHelp {
		t.Fatalf("f1 did not open help")
	}
	view := m.View()
	for _, want := range []string{"Keyboard Shortcuts", "ctrl+s", "Save tag", "ctrl+p", "Play tag"} {
		if !strings.Contains(view, want) {
			t.Fatalf("help view missing %q", want)
		}
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.showHelp {
		t.Fatalf("help still open after a key press")
	}
	if got := m.uid.Value(); got != "" {
		t.Fatalf("closing help typed %q into the uid field", got)
	}
}
