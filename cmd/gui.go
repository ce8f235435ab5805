package main

import (
	"errors"

	"phasetimer/internal/core/model"
	"phasetimer/internal/core/timekeeper"
	"phasetimer/internal/platform"
	"phasetimer/internal/present"
	"phasetimer/internal/ui/preferences"
	"phasetimer/internal/ui/timerwindow"
	"phasetimer/internal/ui/tray"
	"phasetimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog/log"
)

func runGUI(settings preferences.Settings) error {
	var mainWindow *timerwindow.Window
	guard, err := platform.AcquireSingleInstance(appName, func() {
		fyne.Do(func() {
			if mainWindow != nil {
				mainWindow.Show()
			}
		})
	})
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Info().Msg("already running, raised the existing window")
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.phasetimer.app")
	fyneApp.SetIcon(resources.PausedIcon())

	keeper := newKeeper(settings)
	events := keeper.Subscribe(16)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		applied := keeper.ApplySettings(float64(updated.WorkMinutes), float64(updated.BreakMinutes))
		settings = updated.WithTimer(applied)
	})

	mainWindow = timerwindow.New(fyneApp, settings.View, timerwindow.Callbacks{
		OnStart: keeper.Start,
		OnPause: keeper.Pause,
		OnReset: keeper.Reset,
		OnSettings: func() {
			prefsWindow.UpdateSettings(settings)
			prefsWindow.Show()
		},
		OnViewChange: func(viewID string) {
			settings.View = viewID
			log.Debug().Str("view", viewID).Msg("view changed")
		},
	})
	renderer := mainWindow.Renderer()

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: mainWindow.Show,
			OnTogglePause: func() {
				if keeper.Snapshot().State.Running {
					keeper.Pause()
				} else {
					keeper.Start()
				}
			},
			OnSkipPhase: keeper.SkipPhase,
			OnReset:     keeper.Reset,
			OnPreferences: func() {
				prefsWindow.UpdateSettings(settings)
				prefsWindow.Show()
			},
			OnQuit: fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.PausedIcon())
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		log.Warn().Msg("system tray unsupported on this platform")
	}

	draw := func(snapshot model.Snapshot) {
		renderer.Render(snapshot)
		mainWindow.SetRunning(snapshot.State.Running)
		if trayManager == nil {
			return
		}
		if snapshot.State.Running != trayManager.Running() {
			if snapshot.State.Running {
				desktopApp.SetSystemTrayIcon(resources.RunningIcon())
			} else {
				desktopApp.SetSystemTrayIcon(resources.PausedIcon())
			}
		}
		trayManager.SetRunning(snapshot.State.Running)
		trayManager.SetStatus(present.StatusLine(snapshot))
	}
	draw(keeper.Snapshot())

	go func() {
		for event := range events {
			handleEvent(event, draw)
		}
	}()

	mainWindow.Show()
	fyneApp.Run()
	keeper.Stop()
	return nil
}

func handleEvent(event timekeeper.Event, draw func(model.Snapshot)) {
	switch event.Type {
	case timekeeper.EventStateChange:
		snapshot := event.Snapshot
		fyne.Do(func() {
			draw(snapshot)
		})
	case timekeeper.EventPhaseChange:
		log.Debug().Str("phase", string(event.Snapshot.State.Phase)).Msg("phase change")
	case timekeeper.EventChimeError:
		log.Debug().Str("message", event.Message).Msg("chime skipped")
	}
}
