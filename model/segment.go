package model

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TypeHint is the coarse element type reported by the layout analyzer.
// Only titles and section headers influence classification; every other
// reported type collapses to TypeOther.
type TypeHint int

const (
	TypeOther TypeHint = iota
	TypeTitle
	TypeSectionHeader
)

// String returns a string representation of the type hint
func (t TypeHint) String() string {
	switch t {
	case TypeTitle:
		return "Title"
	case TypeSectionHeader:
		return "Section header"
	default:
		return "Other"
	}
}

// ParseTypeHint maps a layout-analyzer type string to a TypeHint.
// Analyzers emit "Title" and "Section header"; serialized dumps commonly
// carry the snake_case forms, so matching ignores case and treats
// underscores as spaces. Unrecognized values map to TypeOther.
func ParseTypeHint(s string) TypeHint {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", " ")
	switch normalized {
	case "title":
		return TypeTitle
	case "section header":
		return TypeSectionHeader
	default:
		return TypeOther
	}
}

// Segment is one positioned run of text on a page, as reported by the
// upstream layout analyzer.
type Segment struct {
	// Text is the segment's text content
	Text string

	// Height is the font height, used as a font size proxy
	Height float64

	// FontName is the reported font name; it may encode boldness
	// (e.g. "Helvetica-Bold")
	FontName string

	// Type is the analyzer's coarse type hint
	Type TypeHint

	// Page is the 1-based page number
	Page int

	// Top and Left position the segment on the page. Top increases
	// downward (Top=0 at the top of the page).
	Top  float64
	Left float64
}

// Valid reports whether the segment carries enough information to take
// part in analysis: non-empty trimmed text and a positive height.
func (s Segment) Valid() bool {
	return strings.TrimSpace(s.Text) != "" && s.Height > 0
}

// IsBold reports whether the font name signals a bold face.
func (s Segment) IsBold() bool {
	// "bold" also covers the SemiBold and DemiBold weight names.
	f := strings.ToLower(s.FontName)
	return strings.Contains(f, "bold") ||
		strings.Contains(f, "black") ||
		strings.Contains(f, "heavy")
}

// normalize returns a copy of the segment with trimmed, NFC-normalized
// text and defaulted fields. Layout services frequently emit decomposed
// Unicode; normalizing here keeps every downstream string comparison
// byte-stable.
func (s Segment) normalize() Segment {
	s.Text = norm.NFC.String(strings.TrimSpace(s.Text))
	if s.Page <= 0 {
		s.Page = 1
	}
	return s
}

// CleanSegments normalizes the input collection and drops segments that
// fail basic validity (empty trimmed text or non-positive height). The
// input slice is not modified.
func CleanSegments(segments []Segment) []Segment {
	cleaned := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if !s.Valid() {
			continue
		}
		cleaned = append(cleaned, s.normalize())
	}
	return cleaned
}

// SortReadingOrder sorts segments in place into reading order:
// page, then top, then left. The sort is stable so segments sharing a
// position keep their input order.
func SortReadingOrder(segments []Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		if segments[i].Page != segments[j].Page {
			return segments[i].Page < segments[j].Page
		}
		if segments[i].Top != segments[j].Top {
			return segments[i].Top < segments[j].Top
		}
		return segments[i].Left < segments[j].Left
	})
}
