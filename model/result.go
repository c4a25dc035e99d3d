package model

import (
	"encoding/json"
	"fmt"
)

// Level represents the hierarchical level of an outline heading.
type Level int

const (
	LevelUnknown Level = iota
	LevelH1            // H1 - Top-level section
	LevelH2            // H2 - Subsection
	LevelH3            // H3 - Sub-subsection
	LevelH4            // H4 - Deepest numbered level
)

// String returns a string representation of the level
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelH4:
		return "H4"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level string ("H1".."H4") to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "H1":
		return LevelH1, nil
	case "H2":
		return LevelH2, nil
	case "H3":
		return LevelH3, nil
	case "H4":
		return LevelH4, nil
	}
	return LevelUnknown, fmt.Errorf("unrecognized heading level %q", s)
}

// MarshalJSON encodes the level as its string form ("H1".."H4"), which is
// the external contract consumed by downstream tooling.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its string form.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// OutlineEntry is one classified heading in a document outline.
type OutlineEntry struct {
	// Level is the heading level (H1-H4)
	Level Level `json:"level"`

	// Text is the heading text
	Text string `json:"text"`

	// Page is the page the heading appears on
	Page int `json:"page"`
}

// DocumentResult is the classifier's sole output: a document title
// (possibly empty) and the heading outline in reading order.
type DocumentResult struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}
