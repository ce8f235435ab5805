package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"phasetimer/internal/chime"
	"phasetimer/internal/core/model"
	"phasetimer/internal/core/timekeeper"
	"phasetimer/internal/present"
	"phasetimer/internal/storage"
	"phasetimer/internal/ui/preferences"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	envConfigPath = "PHASETIMER_CONFIG"
	envLogLevel   = "PHASETIMER_LOG_LEVEL"
)

type options struct {
	configPath   string
	workMinutes  float64
	breakMinutes float64
	view         string
	mute         bool
	logLevel     string
	logFile      string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "phasetimer",
		Short: "Work/break interval timer",
		Long: `PhaseTimer alternates between a work phase and a break phase,
counting each one down and beeping when it switches.

With no subcommand it opens the desktop window and a tray icon.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(settings.LogLevel, opts.logFile, os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()
			return runGUI(settings)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default $UserConfigDir/PhaseTimer/settings.yaml)")
	flags.Float64Var(&opts.workMinutes, "work", model.DefaultWorkMinutes, "work phase length in minutes (1-180)")
	flags.Float64Var(&opts.breakMinutes, "break", model.DefaultBreakMinutes, "break phase length in minutes (1-180)")
	flags.StringVar(&opts.view, "view", "", "initial view: 1 ring, 2 bar, 3 digits")
	flags.BoolVar(&opts.mute, "mute", false, "disable the phase-switch beep")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newTUICommand(opts))
	return root
}

// loadSettings layers defaults, the settings file, the environment and flags.
func loadSettings(cmd *cobra.Command, opts *options) (preferences.Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return preferences.Settings{}, fmt.Errorf("load .env: %w", err)
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = os.Getenv(envConfigPath)
	}
	if configPath == "" {
		resolved, err := storage.ResolveConfigPath(appName)
		if err != nil {
			return preferences.Settings{}, err
		}
		configPath = resolved
	}

	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		return settings, err
	}

	if level := os.Getenv(envLogLevel); level != "" {
		settings.LogLevel = strings.ToLower(level)
	}
	applyFlags(cmd, opts, &settings)
	return settings, nil
}

func applyFlags(cmd *cobra.Command, opts *options, settings *preferences.Settings) {
	flags := cmd.Flags()
	if flags.Changed("work") {
		settings.WorkMinutes = model.ClampMinutes(opts.workMinutes, settings.WorkMinutes)
	}
	if flags.Changed("break") {
		settings.BreakMinutes = model.ClampMinutes(opts.breakMinutes, settings.BreakMinutes)
	}
	if opts.view != "" {
		settings.View = present.ResolveView(opts.view).ID
	}
	if opts.mute {
		settings.ChimeEnabled = false
	}
	if opts.logLevel != "" {
		settings.LogLevel = strings.ToLower(opts.logLevel)
	}
}

func newKeeper(settings preferences.Settings) *timekeeper.TimeKeeper {
	var player timekeeper.Chime = chime.Nop{}
	if settings.ChimeEnabled {
		player = chime.NewSpeaker(chime.Options{Volume: settings.ChimeVolume})
	}
	logger := log.Logger
	return timekeeper.New(settings.TimerSettings(), timekeeper.Config{
		Chime:  player,
		Logger: &logger,
	})
}
