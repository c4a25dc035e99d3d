package classify

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// Engine classifies one document's segments into a title and outline.
// An Engine is stateless across documents and safe to reuse.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the default configuration.
func NewEngine() *Engine {
	return &Engine{cfg: DefaultConfig()}
}

// NewEngineWithConfig creates an engine with a custom configuration.
func NewEngineWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Classify runs the full pipeline on one document's segment collection:
// normalize and filter, derive thresholds, extract the title, detect the
// genre, score every remaining segment, and assemble the outline in
// reading order. The result is always valid; degenerate inputs yield an
// empty title and outline.
func (e *Engine) Classify(segments []model.Segment) model.DocumentResult {
	cleaned := model.CleanSegments(segments)

	// Genre detection samples the leading segments in the order the
	// document supplied them, before reading order is established.
	supplied := make([]model.Segment, len(cleaned))
	copy(supplied, cleaned)

	ordered := cleaned
	model.SortReadingOrder(ordered)

	thresholds := AnalyzeThresholds(ordered, e.cfg)
	title := ExtractTitle(ordered, thresholds, e.cfg)
	docType := DetectDocumentType(supplied, title, e.cfg)
	pol := policyFor(docType, e.cfg)

	result := model.DocumentResult{
		Title:   title,
		Outline: []model.OutlineEntry{},
	}

	if pol.emptyOutline {
		return result
	}
	if pol.flyer {
		result.Outline = flyerOutline(ordered)
		return result
	}

	titleText := strings.TrimSpace(title)
	for _, s := range ordered {
		text := s.Text

		// The title never reappears in the outline, and bare page
		// numbers are noise.
		if text == titleText || (titleText != "" && strings.Contains(titleText, text)) {
			continue
		}
		if isDigitsOnly(text) {
			continue
		}

		if rejectedByPolicy(s, pol) {
			continue
		}

		score, candidate := scoreSegment(s, thresholds, e.cfg)
		if !candidate || score < requiredScore(s, pol) {
			continue
		}

		// Size floor: below the minimum header size only a clearly
		// high-scoring candidate survives.
		if s.Height < thresholds.MinHeaderSize && score < e.cfg.Confidence.HighScoreFloor {
			continue
		}

		result.Outline = append(result.Outline, model.OutlineEntry{
			Level: headingLevel(text, s.Height, thresholds, score, e.cfg),
			Text:  text,
			Page:  adjustPage(s.Page, pol),
		})
	}

	return result
}

func isDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
