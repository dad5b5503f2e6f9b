package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape_Valid(t *testing.T) {
	s := NewShape(Shape{
		Name:       "test",
		StorageKey: "testData",
		Fields:     []Field{{Name: "a"}, {Name: "b", Kind: KindList}},
		Sections:   []Section{{Name: "main", Fields: []string{"a", "b"}}},
		Steps:      []string{"Edit", "Preview"},
	})
	require.NotNil(t, s)

	kind, ok := s.FieldKind("b")
	assert.True(t, ok)
	assert.Equal(t, KindList, kind)

	_, ok = s.FieldKind("missing")
	assert.False(t, ok)

	assert.Equal(t, 1, s.PreviewStep())
}

func TestNewShape_EmptySection(t *testing.T) {
	assert.Panics(t, func() {
		NewShape(Shape{
			Name:       "test",
			StorageKey: "testData",
			Fields:     []Field{{Name: "a"}},
			Sections:   []Section{{Name: "empty"}},
			Steps:      []string{"Edit"},
		})
	})
}

func TestNewShape_UnknownSectionField(t *testing.T) {
	assert.Panics(t, func() {
		NewShape(Shape{
			Name:       "test",
			StorageKey: "testData",
			Fields:     []Field{{Name: "a"}},
			Sections:   []Section{{Name: "main", Fields: []string{"nope"}}},
			Steps:      []string{"Edit"},
		})
	})
}

func TestNewShape_DuplicateField(t *testing.T) {
	assert.Panics(t, func() {
		NewShape(Shape{
			Name:       "test",
			StorageKey: "testData",
			Fields:     []Field{{Name: "a"}, {Name: "a"}},
			Sections:   []Section{{Name: "main", Fields: []string{"a"}}},
			Steps:      []string{"Edit"},
		})
	})
}

func TestBuiltinShapes(t *testing.T) {
	assert.Equal(t, "cvData", CV.StorageKey)
	assert.Equal(t, 5, len(CV.Steps))
	assert.Equal(t, 4, len(CV.Sections))

	assert.Equal(t, "coverLetterData", CoverLetter.StorageKey)
	assert.Equal(t, 4, len(CoverLetter.Steps))

	// Every non-preview step has a matching section in both shapes.
	assert.Equal(t, len(CV.Steps)-1, len(CV.Sections))
	assert.Equal(t, len(CoverLetter.Steps)-1, len(CoverLetter.Sections))

	sec, ok := CV.Section("skills")
	require.True(t, ok)
	assert.Equal(t, []string{"skills"}, sec.Fields)
}
