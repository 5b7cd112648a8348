// Package steps renders the combined stretch and secondary exercise instructions.
package steps

import (
	"fmt"
	"image/color"

	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/reminder"
	"stretchtimer/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LineKind distinguishes rendered rows.
type LineKind int

const (
	LineStep LineKind = iota
	LineHeader
	LineBullet
)

// Line is one row of the instruction list.
type Line struct {
	Kind   LineKind
	Marker string
	Text   string
}

// Lines flattens a reminder into rows: numbered stretch steps first, then a
// header and bulleted steps for the secondary exercise.
func Lines(current reminder.Reminder) []Line {
	lines := make([]Line, 0, len(current.Stretch.Steps)+len(current.Secondary.Steps)+1)
	for index, step := range current.Stretch.Steps {
		lines = append(lines, Line{Kind: LineStep, Marker: fmt.Sprintf("%d.", index+1), Text: step})
	}
	if current.Secondary.Name == "" {
		return lines
	}

	lines = append(lines, Line{
		Kind:   LineHeader,
		Marker: SecondaryIcon(current.SecondaryKind()),
		Text:   fmt.Sprintf("%s: %s (%s)", current.SecondaryKind().Label(), current.Secondary.Name, current.Secondary.Duration),
	})
	for _, step := range current.Secondary.Steps {
		lines = append(lines, Line{Kind: LineBullet, Marker: "•", Text: step})
	}
	return lines
}

// SecondaryIcon returns the emoji shown before the secondary exercise header.
func SecondaryIcon(kind catalog.Kind) string {
	if kind == catalog.KindEye {
		return "👁"
	}
	return "🫁"
}

// Render builds the canvas objects for a reminder.
func Render(current reminder.Reminder, palette theme.Palette) fyne.CanvasObject {
	rows := make([]fyne.CanvasObject, 0)
	for _, line := range Lines(current) {
		rows = append(rows, renderLine(line, palette))
	}
	return container.NewVBox(rows...)
}

// Placeholder is shown before the first reminder.
func Placeholder() fyne.CanvasObject {
	label := widget.NewLabel("Click 'Start' to begin.\n\nStretch reminders will appear here\nwith step-by-step instructions.")
	label.Alignment = fyne.TextAlignCenter
	label.Wrapping = fyne.TextWrapWord
	return label
}

func renderLine(line Line, palette theme.Palette) fyne.CanvasObject {
	text := widget.NewLabel(line.Text)
	text.Wrapping = fyne.TextWrapWord

	switch line.Kind {
	case LineHeader:
		text.TextStyle = fyne.TextStyle{Bold: true}
		return container.NewBorder(nil, nil, marker(line.Marker, palette.Success, true), nil, text)
	case LineBullet:
		return rowBackground(container.NewBorder(nil, nil, marker(line.Marker, palette.Success, false), nil, text), palette.StepBackground)
	default:
		return rowBackground(container.NewBorder(nil, nil, marker(line.Marker, palette.StepNumber, true), nil, text), palette.StepBackground)
	}
}

func marker(value string, fill color.Color, bold bool) fyne.CanvasObject {
	text := canvas.NewText(value, fill)
	text.TextStyle = fyne.TextStyle{Bold: bold}
	text.Alignment = fyne.TextAlignTrailing
	return container.NewPadded(text)
}

func rowBackground(content fyne.CanvasObject, fill color.Color) fyne.CanvasObject {
	return container.NewStack(canvas.NewRectangle(fill), content)
}
