package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/recordify/internal/browser"
	"github.com/five82/recordify/internal/logging"
	"github.com/five82/recordify/internal/prefs"
	"github.com/five82/recordify/internal/recordify"
	"github.com/five82/recordify/internal/state"
)

// ErrBusy is logged when a save or play is requested while the previous one
// is still in flight.
var ErrBusy = errors.New("request already in flight")

// field identifies one of the two tag editor inputs.
type field int

const (
	fieldUID field = iota
	fieldTrackRef
)

// Options configures the UI.
type Options struct {
	Context       context.Context
	Backend       recordify.Backend
	Store         *state.Store
	Updates       <-chan struct{} // signalled by the poller after each store update
	Logger        *log.Logger
	LogPath       string
	APIBase       string
	ThemeName     string
	PrefsPath     string
	WideLayoutMin int
	OpenLink      func(string) error // defaults to browser.Open
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	backend   recordify.Backend
	store     *state.Store
	updates   <-chan struct{}
	logger    *log.Logger
	logPath   string
	apiBase   string
	prefsPath string
	wideMin   int
	openLink  func(string) error

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool
	layout layoutMode

	// Tag editor
	uid      textinput.Model
	trackRef textinput.Model
	focus    field
	saving   bool
	playing  bool

	// Latest poll result; status.NowPlaying is nil when nothing is playing
	// or the last poll failed.
	status state.Snapshot

	// Overlays
	alerts   []Modal
	showHelp bool
	showLog  bool
	logLines []string
	logView  viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Midnight"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	openLink := opts.OpenLink
	if openLink == nil {
		openLink = browser.Open
	}

	uid := textinput.New()
	uid.Prompt = ""
	uid.Placeholder = "e.g. 04A1B2C3D4"
	uid.Focus()

	trackRef := textinput.New()
	trackRef.Prompt = ""
	trackRef.Placeholder = "spotify:track:... or https://open.spotify.com/track/..."

	return Model{
		ctx:       ctx,
		backend:   opts.Backend,
		store:     opts.Store,
		updates:   opts.Updates,
		logger:    logger.With("component", "ui"),
		logPath:   opts.LogPath,
		apiBase:   opts.APIBase,
		prefsPath: prefsPath,
		wideMin:   opts.WideLayoutMin,
		openLink:  openLink,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		layout:    layoutNarrow,
		uid:       uid,
		trackRef:  trackRef,
		focus:     fieldUID,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	// Show whatever the first poll already stored, then follow the poller.
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if cmd := waitForUpdateCmd(m.ctx, m.updates, m.store); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = chooseLayout(m.width, m.wideMin)
		m.help.Width = m.width
		m.resizeInputs()
		if m.showLog {
			m.sizeLogView()
		}
		m.ready = true
		return m, nil

	case snapshotMsg:
		m.status = state.Snapshot(msg)
		return m, nil

	case storeUpdatedMsg:
		m.status = state.Snapshot(msg)
		return m, waitForUpdateCmd(m.ctx, m.updates, m.store)

	case saveResultMsg:
		return m.handleSaveResult(msg)

	case playResultMsg:
		return m.handlePlayResult(msg)

	case linkOpenedMsg:
		if msg.err != nil {
			m.logger.Error("open link failed", "url", msg.url, "err", msg.err)
			m.pushAlert(newAlert(alertError, "Could not open the link. Check the log."))
		}
		return m, nil

	case logTailMsg:
		m.logLines = msg.lines
		if msg.err != nil {
			m.logger.Warn("read log failed", "path", m.logPath, "err", msg.err)
		}
		m.setLogContent(msg.lines, msg.err)
		return m, nil
	}

	// Cursor blink and other input-bound messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.uid, cmd = m.uid.Update(msg)
	cmds = append(cmds, cmd)
	m.trackRef, cmd = m.trackRef.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if len(m.alerts) > 0 {
		return m.alerts[0].View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLog {
		return m.renderLog()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// An open alert swallows everything until dismissed.
	if len(m.alerts) > 0 {
		next, cmd, closed := m.alerts[0].Update(msg, m.keys)
		if closed {
			m.alerts = m.alerts[1:]
		} else {
			m.alerts[0] = next
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showLog {
		if key.Matches(msg, m.keys.Dismiss, m.keys.ShowLog) {
			m.showLog = false
			return m, nil
		}
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ShowLog):
		m.showLog = true
		return m, readLogCmd(m.logPath)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", "err", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.OpenLink):
		return m, m.openLinkCmd()

	case key.Matches(msg, m.keys.Save):
		return m.saveTag()

	case key.Matches(msg, m.keys.Play):
		return m.playTag()

	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus(m.focus.next())

	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus(m.focus.next())

	case key.Matches(msg, m.keys.Submit):
		if m.focus == fieldUID {
			return m, m.setFocus(fieldTrackRef)
		}
		return m.saveTag()
	}

	// Everything else is typing.
	var cmd tea.Cmd
	if m.focus == fieldUID {
		m.uid, cmd = m.uid.Update(msg)
	} else {
		m.trackRef, cmd = m.trackRef.Update(msg)
	}
	return m, cmd
}

func (f field) next() field {
	if f == fieldUID {
		return fieldTrackRef
	}
	return fieldUID
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	if f == fieldUID {
		m.trackRef.Blur()
		return m.uid.Focus()
	}
	m.uid.Blur()
	return m.trackRef.Focus()
}

func (m *Model) pushAlert(a Modal) {
	m.alerts = append(m.alerts, a)
}

// currentTrack returns the item from the latest poll, if any.
func (m Model) currentTrack() *recordify.Track {
	if m.status.NowPlaying == nil {
		return nil
	}
	return m.status.NowPlaying.Item
}

func (m Model) openLinkCmd() tea.Cmd {
	item := m.currentTrack()
	if item == nil || strings.TrimSpace(item.SpotifyURL) == "" {
		return nil
	}
	target, open := item.SpotifyURL, m.openLink
	return func() tea.Msg {
		return linkOpenedMsg{url: target, err: open(target)}
	}
}

// Messages

type snapshotMsg state.Snapshot

type storeUpdatedMsg state.Snapshot

type logTailMsg struct {
	lines []string
	err   error
}

type linkOpenedMsg struct {
	url string
	err error
}

// Commands

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// waitForUpdateCmd blocks until the poller signals a store update and then
// delivers the new snapshot. The model re-arms it after every delivery.
func waitForUpdateCmd(ctx context.Context, updates <-chan struct{}, store *state.Store) tea.Cmd {
	if updates == nil || store == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-updates:
			if !ok {
				return nil
			}
			return storeUpdatedMsg(store.Snapshot())
		}
	}
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logTailMsg{}
		}
		lines, err := logging.Tail(path, logOverlayLines)
		return logTailMsg{lines: lines, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
		opts.Context = ctx
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
