package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogSizes(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 21, catalog.Len(KindStretch))
	assert.Equal(t, 6, catalog.Len(KindEye))
	assert.Equal(t, 6, catalog.Len(KindBreathing))
}

func TestDefaultCatalogEntriesAreComplete(t *testing.T) {
	catalog := MustDefault()
	for _, kind := range []Kind{KindStretch, KindEye, KindBreathing} {
		for _, entry := range catalog.Entries(kind) {
			assert.NotEmpty(t, entry.Name)
			assert.NotEmpty(t, entry.Duration, entry.Name)
			assert.NotEmpty(t, entry.Steps, entry.Name)
			assert.Equal(t, kind, entry.Kind, entry.Name)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	catalog := MustDefault()
	entries := catalog.Entries(KindEye)
	entries[0].Name = "changed"

	entry, ok := catalog.At(KindEye, 0)
	require.True(t, ok)
	assert.NotEqual(t, "changed", entry.Name)
}

func TestAtOutOfRange(t *testing.T) {
	catalog := MustDefault()
	_, ok := catalog.At(KindBreathing, catalog.Len(KindBreathing))
	assert.False(t, ok)
	_, ok = catalog.At(KindStretch, -1)
	assert.False(t, ok)
}

func TestParseRejectsEmptySection(t *testing.T) {
	data := []byte(`
stretches:
  - name: "Reach"
    duration: "10 seconds"
    steps: ["Reach up"]
eye: []
breathing:
  - name: "Box"
    duration: "1 min"
    steps: ["Inhale"]
`)
	_, err := Parse(data)
	require.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("stretches: [unterminated"))
	require.Error(t, err)
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "Eye Break", KindEye.Label())
	assert.Equal(t, "Breathing", KindBreathing.Label())
}
