// Command screenshots renders the Stretch Timer windows into PNG files using
// the headless fyne driver.
package main

import (
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/reminder"
	"stretchtimer/internal/ui/mainwindow"
	"stretchtimer/internal/ui/popup"
	"stretchtimer/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/spf13/cobra"
)

type shot struct {
	name  string
	theme model.Theme
	size  fyne.Size
	build func(app fyne.App, settings model.Settings, current reminder.Reminder) fyne.Window
}

var shots = []shot{
	{
		name:  "main_light.png",
		theme: model.ThemeLight,
		size:  fyne.NewSize(420, 760),
		build: func(app fyne.App, settings model.Settings, _ reminder.Reminder) fyne.Window {
			return mainwindow.New(app, settings, mainwindow.Callbacks{}).Window()
		},
	},
	{
		name:  "main_dark_reminder.png",
		theme: model.ThemeDark,
		size:  fyne.NewSize(420, 760),
		build: func(app fyne.App, settings model.Settings, current reminder.Reminder) fyne.Window {
			view := mainwindow.New(app, settings, mainwindow.Callbacks{})
			view.SetSession(true, false)
			view.SetRemaining(settings.IntervalMinutes*60 - 83)
			view.SetStats(current.Number, 47*time.Minute+12*time.Second)
			view.ShowReminder(current)
			return view.Window()
		},
	},
	{
		name:  "popup.png",
		theme: model.ThemeLight,
		size:  fyne.NewSize(460, 560),
		build: func(app fyne.App, settings model.Settings, current reminder.Reminder) fyne.Window {
			window := popup.New(app, popup.Options{Schedule: holdOpen})
			window.Show(current, settings, theme.PaletteFor(settings.Theme))
			return window.Window()
		},
	},
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outDir string
	var seed int64

	cmd := &cobra.Command{
		Use:           "screenshots",
		Short:         "Render Stretch Timer windows to PNG files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := render(outDir, seed)
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "screenshots", "directory to write PNG files into")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for the sample reminder")
	return cmd
}

func render(outDir string, seed int64) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	app := test.NewApp()
	defer app.Quit()

	dispatcher := reminder.New(catalog.MustDefault(), reminder.Effects{}, reminder.Options{
		Rand: rand.New(rand.NewSource(seed)),
	})
	current := dispatcher.Dispatch(model.DefaultSettings())

	written := make([]string, 0, len(shots))
	for _, next := range shots {
		settings := model.DefaultSettings()
		settings.Theme = next.theme
		app.Settings().SetTheme(theme.New(next.theme))

		window := next.build(app, settings, current)
		window.Resize(next.size)
		path := filepath.Join(outDir, next.name)
		err := writePNG(path, window)
		window.Close()
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writePNG(path string, window fyne.Window) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, window.Canvas().Capture()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func holdOpen(time.Duration, func()) func() bool {
	return func() bool { return false }
}
