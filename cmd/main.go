package main

import (
	"log"

	stretchapp "stretchtimer/internal/app"
	"stretchtimer/internal/core/reminder"
	"stretchtimer/internal/notify"
	"stretchtimer/internal/platform"
	"stretchtimer/internal/storage"
	"stretchtimer/internal/ui/tray"
	"stretchtimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func main() {
	guard, err := platform.AcquireSingleInstance(reminder.AppName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.stretchtimer.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	options := stretchapp.Options{
		Sounder:  platform.NewSounder(),
		Notifier: notify.New(),
	}

	settingsPath, err := platform.SettingsPath(reminder.AppName, storage.SettingsFileName)
	if err != nil {
		log.Printf("settings: %v", err)
	} else {
		options.Store = storage.Open(settingsPath)
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		options.Tray = desktopApp
		options.Icons = tray.Icons{
			Active: resources.MustIcon(resources.IconActive),
			Paused: resources.MustIcon(resources.IconPaused),
		}
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	application := stretchapp.New(fyneApp, options)
	guard.OnActivate(func() {
		fyne.Do(application.ShowWindow)
	})

	application.Start()
	application.ShowWindow()
	fyneApp.Run()
	application.Shutdown()
}
