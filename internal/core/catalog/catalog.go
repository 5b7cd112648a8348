package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog indicates a catalog section without entries.
var ErrEmptyCatalog = errors.New("catalog section is empty")

// Kind identifies the exercise table an entry belongs to.
type Kind string

const (
	KindStretch   Kind = "stretch"
	KindEye       Kind = "eye"
	KindBreathing Kind = "breathing"
)

// Exercise is a single catalog entry.
type Exercise struct {
	Name     string   `yaml:"name"`
	Duration string   `yaml:"duration"`
	Steps    []string `yaml:"steps"`
	Kind     Kind     `yaml:"-"`
}

// Catalog holds the static exercise tables.
type Catalog struct {
	stretches []Exercise
	eye       []Exercise
	breathing []Exercise
}

type yamlCatalog struct {
	Stretches []Exercise `yaml:"stretches"`
	Eye       []Exercise `yaml:"eye"`
	Breathing []Exercise `yaml:"breathing"`
}

//go:embed catalog.yaml
var defaultData []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var fileData yamlCatalog
	if err := yaml.Unmarshal(data, &fileData); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	sections := []struct {
		kind    Kind
		entries []Exercise
	}{
		{KindStretch, fileData.Stretches},
		{KindEye, fileData.Eye},
		{KindBreathing, fileData.Breathing},
	}
	for _, section := range sections {
		if len(section.entries) == 0 {
			return nil, fmt.Errorf("%s: %w", section.kind, ErrEmptyCatalog)
		}
		for index := range section.entries {
			entry := &section.entries[index]
			if entry.Name == "" || len(entry.Steps) == 0 {
				return nil, fmt.Errorf("%s entry %d: missing name or steps", section.kind, index)
			}
			entry.Kind = section.kind
		}
	}

	return &Catalog{
		stretches: fileData.Stretches,
		eye:       fileData.Eye,
		breathing: fileData.Breathing,
	}, nil
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultData)
	})
	return defaultCatalog, defaultErr
}

// MustDefault returns the embedded catalog or panics on error.
func MustDefault() *Catalog {
	catalog, err := Default()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Entries returns a copy of the table for kind.
func (catalog *Catalog) Entries(kind Kind) []Exercise {
	return slices.Clone(catalog.table(kind))
}

// Len reports the number of entries of kind.
func (catalog *Catalog) Len(kind Kind) int {
	return len(catalog.table(kind))
}

// At returns the entry of kind at index.
func (catalog *Catalog) At(kind Kind, index int) (Exercise, bool) {
	table := catalog.table(kind)
	if index < 0 || index >= len(table) {
		return Exercise{}, false
	}
	entry := table[index]
	entry.Steps = slices.Clone(entry.Steps)
	return entry, true
}

func (catalog *Catalog) table(kind Kind) []Exercise {
	switch kind {
	case KindStretch:
		return catalog.stretches
	case KindEye:
		return catalog.eye
	case KindBreathing:
		return catalog.breathing
	default:
		return nil
	}
}

// Label returns the display header for a secondary exercise kind.
func (kind Kind) Label() string {
	switch kind {
	case KindEye:
		return "Eye Break"
	case KindBreathing:
		return "Breathing"
	case KindStretch:
		return "Stretch"
	default:
		return string(kind)
	}
}
