package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/recordify/internal/config"
	"github.com/five82/recordify/internal/logging"
	"github.com/five82/recordify/internal/prefs"
	"github.com/five82/recordify/internal/recordify"
	"github.com/five82/recordify/internal/state"
	"github.com/five82/recordify/internal/ui"
)

// Options configure the recordify application. Non-zero fields override the
// matching config.toml setting.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/recordify/prefs.toml
	APIBase    string
	PollEvery  time.Duration // zero uses config
	LogFile    string
	LogLevel   string
	Theme      string // empty uses the saved preference
}

// Env is the resolved runtime shared by the panel and the headless commands.
type Env struct {
	Config config.Config
	Logger *log.Logger
	Client *recordify.Client

	logFile io.Closer
}

// Setup loads the config, applies overrides, opens the log file and builds
// the backend client.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	client, err := recordify.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init backend client: %w", err)
	}

	return &Env{Config: cfg, Logger: logger, Client: client, logFile: closer}, nil
}

// Close releases the log file.
func (e *Env) Close() error {
	if e == nil || e.logFile == nil {
		return nil
	}
	return e.logFile.Close()
}

func applyOverrides(cfg *config.Config, opts Options) {
	if base := strings.TrimSpace(opts.APIBase); base != "" {
		cfg.APIBase = base
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = opts.PollEvery
	}
	if logFile := strings.TrimSpace(opts.LogFile); logFile != "" {
		if expanded, err := config.ExpandPath(logFile); err == nil {
			cfg.LogFile = expanded
		}
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
}

// Run boots the control panel until the user quits or the context is
// cancelled. The poller and any in-flight request stop with it.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	logger := env.Logger
	logger.Info("starting recordify", "api", env.Client.BaseURL(), "poll", env.Config.PollInterval)

	themeName := strings.TrimSpace(opts.Theme)
	if themeName == "" {
		themeName = prefs.Load(opts.PrefsPath).Theme
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	poller := NewPoller(env.Client, store, env.Config.PollInterval, logger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = poller.Run(ctx)
	}()

	err = ui.Run(ui.Options{
		Context:       ctx,
		Backend:       env.Client,
		Store:         store,
		Updates:       poller.Updates(),
		Logger:        logger,
		LogPath:       env.Config.LogFile,
		APIBase:       env.Client.BaseURL(),
		ThemeName:     themeName,
		PrefsPath:     opts.PrefsPath,
		WideLayoutMin: env.Config.WideLayoutMin,
	})

	cancel()
	wg.Wait()
	logger.Info("recordify stopped")
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
