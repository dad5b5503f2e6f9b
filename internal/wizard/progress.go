package wizard

import (
	"math"

	"github.com/careercraft/careercraft/internal/draft"
)

// SectionProgress returns the percentage of the given fields that hold a
// non-empty value, rounded to the nearest integer. Emptiness is plain
// truthiness: lists by length, strings compared against "" without
// trimming. Fields the draft does not declare count as empty.
func SectionProgress(fields []string, d draft.Draft) int {
	filled := 0
	for _, name := range fields {
		if v, ok := d.Value(name); ok && v.Filled() {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}

// OverallProgress returns the unweighted mean of the integer section
// progresses across the shape's sections, rounded to the nearest integer.
// Sections weigh equally regardless of field count. Shape construction
// guarantees every section has at least one field.
func OverallProgress(shape *draft.Shape, d draft.Draft) int {
	total := 0
	for _, sec := range shape.Sections {
		total += SectionProgress(sec.Fields, d)
	}
	return int(math.Round(float64(total) / float64(len(shape.Sections))))
}
