// Package draft defines document shapes and the in-progress field values
// for the CV and cover-letter builders.
package draft

import "fmt"

// Kind distinguishes single string values from ordered string lists.
type Kind int

const (
	// KindString is a single-line or multi-line text field.
	KindString Kind = iota
	// KindList is an ordered list of strings (skills, duty bullets).
	KindList
)

// Field describes one named field in a document shape.
type Field struct {
	Name string
	Kind Kind
}

// Section groups schema fields for completion scoring. Sections are static
// configuration; they never change at runtime.
type Section struct {
	Name   string
	Fields []string
}

// Shape is the fixed schema for one document type: the field set, the
// scoring sections and the wizard step sequence.
type Shape struct {
	// Name is the document kind and also the API path segment ("cv", "cover-letter").
	Name string
	// StorageKey is the durable store key for drafts of this shape.
	StorageKey string
	// PayloadKey is the JSON key wrapping the draft in preview/download requests.
	PayloadKey string
	// DownloadName is the file name used when saving a generated PDF.
	DownloadName string

	Fields   []Field
	Sections []Section
	Steps    []string

	kinds map[string]Kind
}

// NewShape builds a Shape and verifies its invariants: no duplicate fields,
// no empty section, no section referencing an unknown field, at least one
// step. A bad schema fails at definition time, not during scoring.
func NewShape(s Shape) *Shape {
	if s.Name == "" || s.StorageKey == "" {
		panic("draft: shape name and storage key are required")
	}
	kinds := make(map[string]Kind, len(s.Fields))
	for _, f := range s.Fields {
		if _, dup := kinds[f.Name]; dup {
			panic(fmt.Sprintf("draft: shape %s declares field %q twice", s.Name, f.Name))
		}
		kinds[f.Name] = f.Kind
	}
	for _, sec := range s.Sections {
		if len(sec.Fields) == 0 {
			panic(fmt.Sprintf("draft: shape %s section %q has no fields", s.Name, sec.Name))
		}
		for _, name := range sec.Fields {
			if _, ok := kinds[name]; !ok {
				panic(fmt.Sprintf("draft: shape %s section %q references unknown field %q", s.Name, sec.Name, name))
			}
		}
	}
	if len(s.Steps) == 0 {
		panic(fmt.Sprintf("draft: shape %s has no steps", s.Name))
	}
	s.kinds = kinds
	return &s
}

// FieldKind returns the declared kind for a field name.
func (s *Shape) FieldKind(name string) (Kind, bool) {
	k, ok := s.kinds[name]
	return k, ok
}

// Section returns the named section, or false if the shape has none.
func (s *Shape) Section(name string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.Name == name {
			return sec, true
		}
	}
	return Section{}, false
}

// PreviewStep is the index of the terminal preview step.
func (s *Shape) PreviewStep() int {
	return len(s.Steps) - 1
}

// CV is the shape of the CV builder.
var CV = NewShape(Shape{
	Name:         "cv",
	StorageKey:   "cvData",
	PayloadKey:   "cv",
	DownloadName: "My_CV.pdf",
	Fields: []Field{
		{Name: "full_name"},
		{Name: "job_title"},
		{Name: "email"},
		{Name: "phone"},
		{Name: "location"},
		{Name: "profile_summary"},
		{Name: "role"},
		{Name: "company_name"},
		{Name: "start_date"},
		{Name: "end_date"},
		{Name: "duties", Kind: KindList},
		{Name: "qualification"},
		{Name: "institution"},
		{Name: "graduation_year"},
		{Name: "skills", Kind: KindList},
	},
	Sections: []Section{
		{Name: "personal", Fields: []string{"full_name", "job_title", "email", "phone", "location", "profile_summary"}},
		{Name: "experience", Fields: []string{"role", "company_name", "start_date", "end_date", "duties"}},
		{Name: "education", Fields: []string{"qualification", "institution", "graduation_year"}},
		{Name: "skills", Fields: []string{"skills"}},
	},
	Steps: []string{"Personal Info", "Experience", "Education", "Skills", "Preview"},
})

// CoverLetter is the shape of the cover-letter builder.
var CoverLetter = NewShape(Shape{
	Name:         "cover-letter",
	StorageKey:   "coverLetterData",
	PayloadKey:   "cover_letter",
	DownloadName: "My_Cover_Letter.pdf",
	Fields: []Field{
		{Name: "full_name"},
		{Name: "job_title"},
		{Name: "email"},
		{Name: "phone"},
		{Name: "location"},
		{Name: "recipient_name"},
		{Name: "recipient_company"},
		{Name: "recipient_position"},
		{Name: "letter_body"},
	},
	Sections: []Section{
		{Name: "personal", Fields: []string{"full_name", "job_title", "email", "phone", "location"}},
		{Name: "recipient", Fields: []string{"recipient_name", "recipient_company", "recipient_position"}},
		{Name: "body", Fields: []string{"letter_body"}},
	},
	Steps: []string{"Personal Info", "Recipient Info", "Letter Body", "Preview"},
})
