package report

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// LevelError records an outline entry that matched on text and page but
// landed on the wrong level.
type LevelError struct {
	Text     string
	Expected model.Level
	Actual   model.Level
}

// Comparison holds the per-document comparison of an actual result
// against a reference result.
type Comparison struct {
	// Name identifies the document.
	Name string

	// TitleMatch reports whether the normalized titles agree.
	TitleMatch bool

	// ExpectedTitle and ActualTitle are the raw titles.
	ExpectedTitle string
	ActualTitle   string

	// TotalExpected and TotalActual are the outline entry counts.
	TotalExpected int
	TotalActual   int

	// ExactMatches counts entries agreeing on level, text and page.
	ExactMatches int

	// LevelMatches and PageMatches count entries found by (text, page)
	// key that also agree on the named field.
	LevelMatches int
	PageMatches  int

	// LevelErrors are found entries with a level mismatch.
	LevelErrors []LevelError

	// Missing are reference entries absent from the actual outline;
	// Extra are actual entries absent from the reference.
	Missing []model.OutlineEntry
	Extra   []model.OutlineEntry
}

// Precision is the fraction of emitted entries that exactly match the
// reference, as a percentage.
func (c Comparison) Precision() float64 {
	if c.TotalActual == 0 {
		return 0
	}
	return 100 * float64(c.ExactMatches) / float64(c.TotalActual)
}

// Recall is the fraction of reference entries exactly recovered, as a
// percentage.
func (c Comparison) Recall() float64 {
	if c.TotalExpected == 0 {
		return 0
	}
	return 100 * float64(c.ExactMatches) / float64(c.TotalExpected)
}

// F1 is the harmonic mean of precision and recall.
func (c Comparison) F1() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// OutlineScore is the per-document outline accuracy: the exact match
// rate, or 100 when both outlines are deliberately empty.
func (c Comparison) OutlineScore() float64 {
	if c.TotalExpected == 0 {
		if c.TotalActual == 0 {
			return 100
		}
		return 0
	}
	return 100 * float64(c.ExactMatches) / float64(c.TotalExpected)
}

// normalizeText lowers and trims text for comparison, so trailing
// padding and case differences in emitted headings do not count as
// mismatches.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type entryKey struct {
	text string
	page int
}

// Compare evaluates an actual result against its reference.
func Compare(name string, expected, actual model.DocumentResult) Comparison {
	c := Comparison{
		Name:          name,
		ExpectedTitle: expected.Title,
		ActualTitle:   actual.Title,
		TitleMatch:    normalizeText(expected.Title) == normalizeText(actual.Title),
		TotalExpected: len(expected.Outline),
		TotalActual:   len(actual.Outline),
	}

	actualByKey := make(map[entryKey]model.OutlineEntry, len(actual.Outline))
	for _, e := range actual.Outline {
		actualByKey[entryKey{normalizeText(e.Text), e.Page}] = e
	}
	expectedByKey := make(map[entryKey]model.OutlineEntry, len(expected.Outline))
	for _, e := range expected.Outline {
		expectedByKey[entryKey{normalizeText(e.Text), e.Page}] = e
	}

	for _, exp := range expected.Outline {
		key := entryKey{normalizeText(exp.Text), exp.Page}
		act, ok := actualByKey[key]
		if !ok {
			c.Missing = append(c.Missing, exp)
			continue
		}

		if exp.Level == act.Level {
			c.LevelMatches++
			if exp.Page == act.Page {
				c.ExactMatches++
			}
		} else {
			c.LevelErrors = append(c.LevelErrors, LevelError{
				Text:     exp.Text,
				Expected: exp.Level,
				Actual:   act.Level,
			})
		}
		if exp.Page == act.Page {
			c.PageMatches++
		}
	}

	for _, act := range actual.Outline {
		key := entryKey{normalizeText(act.Text), act.Page}
		if _, ok := expectedByKey[key]; !ok {
			c.Extra = append(c.Extra, act)
		}
	}

	return c
}
