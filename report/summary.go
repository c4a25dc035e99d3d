package report

import (
	"fmt"
	"strings"
)

// Weight of title accuracy in the blended document score; the outline
// carries the rest.
const titleWeight = 0.2

// Summary aggregates comparisons across a document corpus.
type Summary struct {
	// Documents is the number of compared documents.
	Documents int

	// TitleMatches counts documents with a matching title.
	TitleMatches int

	// AvgOutlineScore is the mean per-document outline score.
	AvgOutlineScore float64

	// OverallScore blends title accuracy and outline accuracy.
	OverallScore float64

	// Comparisons are the per-document results, in input order.
	Comparisons []Comparison
}

// Summarize rolls per-document comparisons into a corpus summary.
func Summarize(comparisons []Comparison) Summary {
	s := Summary{
		Documents:   len(comparisons),
		Comparisons: comparisons,
	}
	if len(comparisons) == 0 {
		return s
	}

	outlineTotal := 0.0
	for _, c := range comparisons {
		if c.TitleMatch {
			s.TitleMatches++
		}
		outlineTotal += c.OutlineScore()
	}

	s.AvgOutlineScore = outlineTotal / float64(len(comparisons))
	titleScore := 100 * float64(s.TitleMatches) / float64(len(comparisons))
	s.OverallScore = titleWeight*titleScore + (1-titleWeight)*s.AvgOutlineScore
	return s
}

// String formats the summary as a short human-readable report.
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "documents: %d\n", s.Documents)
	fmt.Fprintf(&sb, "title matches: %d/%d\n", s.TitleMatches, s.Documents)
	fmt.Fprintf(&sb, "avg outline score: %.1f%%\n", s.AvgOutlineScore)
	fmt.Fprintf(&sb, "overall score: %.1f%%\n", s.OverallScore)
	for _, c := range s.Comparisons {
		fmt.Fprintf(&sb, "  %s: title=%v exact=%d/%d precision=%.1f%% recall=%.1f%% f1=%.1f%%\n",
			c.Name, c.TitleMatch, c.ExactMatches, c.TotalExpected,
			c.Precision(), c.Recall(), c.F1())
	}
	return sb.String()
}
