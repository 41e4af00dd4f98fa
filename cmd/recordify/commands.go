package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/five82/recordify/internal/app"
	"github.com/five82/recordify/internal/config"
)

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "recordify",
		Usage:   "Bind RFID tags to Spotify tracks and watch what is playing",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config.toml (default " + config.DefaultPath() + ")",
			},
			&cli.StringFlag{
				Name:  "prefs",
				Usage: "Path to prefs.toml (default ~/.config/recordify/prefs.toml)",
			},
			&cli.StringFlag{
				Name:  "api",
				Usage: "Backend base URL (default http://localhost:8000)",
			},
			&cli.DurationFlag{
				Name:  "poll",
				Usage: "Now-playing poll interval (default 2s)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Log file path (default ~/.local/state/recordify/recordify.log)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Color theme: Midnight, Nightfox or Slate",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.Run(ctx, optionsFrom(cmd))
		},
		Commands: []*cli.Command{
			{
				Name:   "now",
				Usage:  "Print the current track once; exits non-zero when nothing is playing",
				Action: nowAction,
			},
			{
				Name:  "save",
				Usage: "Bind a tag UID to a Spotify track URL or URI",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "uid"},
					&cli.StringArg{Name: "ref"},
				},
				Action: saveAction,
			},
			{
				Name:  "play",
				Usage: "Play the track bound to a tag UID",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "uid"},
				},
				Action: playAction,
			},
		},
	}
}

func optionsFrom(cmd *cli.Command) app.Options {
	return app.Options{
		ConfigPath: cmd.String("config"),
		PrefsPath:  cmd.String("prefs"),
		APIBase:    cmd.String("api"),
		PollEvery:  cmd.Duration("poll"),
		LogFile:    cmd.String("log-file"),
		LogLevel:   cmd.String("log-level"),
		Theme:      cmd.String("theme"),
	}
}

func nowAction(ctx context.Context, cmd *cli.Command) error {
	env, err := app.Setup(optionsFrom(cmd))
	if err != nil {
		return err
	}
	defer env.Close()
	return app.NowPlaying(ctx, env.Client, os.Stdout, env.Logger)
}

func saveAction(ctx context.Context, cmd *cli.Command) error {
	env, err := app.Setup(optionsFrom(cmd))
	if err != nil {
		return err
	}
	defer env.Close()
	return app.SaveTag(ctx, env.Client, cmd.StringArg("uid"), cmd.StringArg("ref"), env.Logger)
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	env, err := app.Setup(optionsFrom(cmd))
	if err != nil {
		return err
	}
	defer env.Close()
	return app.PlayTag(ctx, env.Client, cmd.StringArg("uid"), env.Logger)
}
