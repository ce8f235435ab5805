package main

import (
	"fmt"
	"io"

	"phasetimer/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newTUICommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			// Console logs would draw over the terminal UI.
			closeLog, err := setupLogging(settings.LogLevel, opts.logFile, io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()

			keeper := newKeeper(settings)
			events := keeper.Subscribe(16)
			defer keeper.Stop()

			log.Info().Str("view", settings.View).Msg("starting terminal ui")
			program := tea.NewProgram(tui.New(keeper, events, settings.View), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run terminal ui: %w", err)
			}
			return nil
		},
	}
}
