package classify

import (
	"math"
	"sort"

	"github.com/tsawler/outliner/model"
)

// ThresholdSet holds the font-height cutoffs derived from one document's
// text population. Derived once per document and read-only afterward.
type ThresholdSet struct {
	// BodyTextSize is the most frequent rounded font height, assumed to
	// be running body text.
	BodyTextSize float64

	// H1Threshold, H2Threshold and H3Threshold separate the heading
	// tiers. Non-increasing from H1 to H3 in the common case.
	H1Threshold float64
	H2Threshold float64
	H3Threshold float64

	// TitleThreshold is the height of the document's title tier.
	TitleThreshold float64

	// MinHeaderSize is the absolute floor below which nothing is
	// classified as a heading on size alone.
	MinHeaderSize float64

	// AvgBodyLength is the mean character length of body-sized segments.
	AvgBodyLength float64

	// HeaderSizes are the distinct candidate heading heights, largest
	// first.
	HeaderSizes []float64
}

// defaultThresholds are the synthesized values used for a document with
// no analyzable text at all.
func defaultThresholds(cfg Config) ThresholdSet {
	return ThresholdSet{
		BodyTextSize:   10,
		H1Threshold:    13,
		H2Threshold:    11,
		H3Threshold:    10,
		TitleThreshold: 15,
		MinHeaderSize:  9,
		AvgBodyLength:  cfg.DefaultBodyLength,
	}
}

// AnalyzeThresholds scans all segments of one document and derives the
// size thresholds separating body text from the heading tiers.
//
// It never fails: documents with zero, one, two or more distinct
// candidate heading sizes all yield a complete, internally consistent
// ThresholdSet, synthesizing missing tiers additively above the body
// size where needed.
func AnalyzeThresholds(segments []model.Segment, cfg Config) ThresholdSet {
	type sized struct {
		height float64
		length int
	}

	var population []sized
	for _, s := range segments {
		if !s.Valid() {
			continue
		}
		population = append(population, sized{
			height: roundHeight(s.Height),
			length: len(s.Text),
		})
	}

	if len(population) == 0 {
		return defaultThresholds(cfg)
	}

	// Mode of rounded heights. Body text dominates any normal document
	// by volume, which makes the mode a robust body-size estimate.
	counts := make(map[float64]int)
	for _, p := range population {
		counts[p.height]++
	}
	bodySize := 0.0
	bodyCount := 0
	for h, c := range counts {
		if c > bodyCount || (c == bodyCount && h < bodySize) {
			bodySize = h
			bodyCount = c
		}
	}

	// Average body text length, for later length comparisons.
	avgBodyLength := cfg.DefaultBodyLength
	bodyChars, bodySegs := 0, 0
	for _, p := range population {
		if math.Abs(p.height-bodySize) < cfg.BodyTolerance {
			bodyChars += p.length
			bodySegs++
		}
	}
	if bodySegs > 0 {
		avgBodyLength = float64(bodyChars) / float64(bodySegs)
	}

	// Distinct candidate heading sizes, largest first.
	seen := make(map[float64]bool)
	var headerSizes []float64
	for _, p := range population {
		if p.height > bodySize+cfg.HeaderGap && !seen[p.height] {
			seen[p.height] = true
			headerSizes = append(headerSizes, p.height)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(headerSizes)))

	// Title tier: explicit Title-tagged segments win, then the largest
	// candidate size, then a synthesized tier above the body.
	titleThreshold := 0.0
	for _, s := range segments {
		if s.Type == model.TypeTitle && s.Height > titleThreshold {
			titleThreshold = s.Height
		}
	}
	if titleThreshold == 0 {
		if len(headerSizes) > 0 {
			titleThreshold = headerSizes[0]
		} else {
			titleThreshold = bodySize + 4
		}
	}

	ts := ThresholdSet{
		BodyTextSize:   bodySize,
		TitleThreshold: titleThreshold,
		MinHeaderSize:  bodySize + cfg.HeaderGap,
		AvgBodyLength:  avgBodyLength,
		HeaderSizes:    headerSizes,
	}

	// Map the distinct sizes onto H1/H2/H3, consuming from the largest.
	// With four or more sizes the largest is an implicit title tier and
	// the next three become the heading tiers.
	switch {
	case len(headerSizes) >= 4:
		ts.H1Threshold = headerSizes[1] - cfg.SizeEpsilon
		ts.H2Threshold = headerSizes[2] - cfg.SizeEpsilon
		ts.H3Threshold = headerSizes[3] - cfg.SizeEpsilon
	case len(headerSizes) == 3:
		ts.H1Threshold = headerSizes[0] - cfg.SizeEpsilon
		ts.H2Threshold = headerSizes[1] - cfg.SizeEpsilon
		ts.H3Threshold = headerSizes[2] - cfg.SizeEpsilon
	case len(headerSizes) == 2:
		ts.H1Threshold = headerSizes[0] - cfg.SizeSlack
		ts.H2Threshold = headerSizes[1] - cfg.SizeSlack
		ts.H3Threshold = bodySize + 0.5
	case len(headerSizes) == 1:
		ts.H1Threshold = headerSizes[0] - cfg.SizeSlack
		ts.H2Threshold = bodySize + 1.5
		ts.H3Threshold = bodySize + 0.5
	default:
		ts.H1Threshold = bodySize + 3.0
		ts.H2Threshold = bodySize + 1.5
		ts.H3Threshold = bodySize + 0.5
	}

	return ts
}

// roundHeight rounds a font height to one decimal place, collapsing
// sub-0.1 rendering noise into a single bucket.
func roundHeight(h float64) float64 {
	return math.Round(h*10) / 10
}
