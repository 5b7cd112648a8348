package steps

import (
	"testing"

	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/reminder"
	"stretchtimer/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReminder() reminder.Reminder {
	return reminder.Reminder{
		Number: 1,
		Stretch: catalog.Exercise{
			Name:     "Calf Raises",
			Duration: "30 seconds",
			Steps:    []string{"Rise up onto your toes", "Lower heels back down slowly"},
			Kind:     catalog.KindStretch,
		},
		Secondary: catalog.Exercise{
			Name:     "20-20-20 Rule",
			Duration: "20 sec",
			Steps:    []string{"Find an object at least 20 feet away"},
			Kind:     catalog.KindEye,
		},
	}
}

func TestLinesOrderStretchFirst(t *testing.T) {
	lines := Lines(sampleReminder())
	require.Len(t, lines, 4)

	assert.Equal(t, Line{Kind: LineStep, Marker: "1.", Text: "Rise up onto your toes"}, lines[0])
	assert.Equal(t, Line{Kind: LineStep, Marker: "2.", Text: "Lower heels back down slowly"}, lines[1])
	assert.Equal(t, LineHeader, lines[2].Kind)
	assert.Equal(t, "👁", lines[2].Marker)
	assert.Equal(t, "Eye Break: 20-20-20 Rule (20 sec)", lines[2].Text)
	assert.Equal(t, Line{Kind: LineBullet, Marker: "•", Text: "Find an object at least 20 feet away"}, lines[3])
}

func TestLinesWithoutSecondary(t *testing.T) {
	current := sampleReminder()
	current.Secondary = catalog.Exercise{}
	lines := Lines(current)
	assert.Len(t, lines, 2)
}

func TestSecondaryIcon(t *testing.T) {
	assert.Equal(t, "👁", SecondaryIcon(catalog.KindEye))
	assert.Equal(t, "🫁", SecondaryIcon(catalog.KindBreathing))
}

func TestRenderBuildsOneRowPerLine(t *testing.T) {
	test.NewTempApp(t)

	object := Render(sampleReminder(), theme.PaletteFor(model.ThemeLight))
	box, ok := object.(*fyne.Container)
	require.True(t, ok)
	assert.Len(t, box.Objects, 4)
}
