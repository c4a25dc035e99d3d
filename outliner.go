// Package outliner provides a fluent API for classifying positioned text
// segments from a page-layout analyzer into a document title and a
// hierarchical outline.
//
// Basic usage:
//
//	result := outliner.FromSegments(segments).Result()
//	fmt.Println(result.Title)
//
// With options:
//
//	cfg := classify.DefaultConfig()
//	cfg.Confidence.General = 4
//	result := outliner.FromSegments(segments).
//	    WithConfig(cfg).
//	    Result()
//
// For advanced use cases, the lower-level classify package is also
// available.
package outliner

import (
	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/model"
)

// Classifier is a fluent builder over one document's segments.
type Classifier struct {
	segments []model.Segment
	options  classifyOptions
}

// FromSegments starts classification of one document's segment
// collection. The input slice is never modified.
//
// Example:
//
//	result := outliner.FromSegments(segments).Result()
func FromSegments(segments []model.Segment) *Classifier {
	return &Classifier{
		segments: segments,
		options:  defaultOptions(),
	}
}

// WithConfig replaces the engine configuration.
func (c *Classifier) WithConfig(cfg classify.Config) *Classifier {
	c.options.config = cfg
	c.options.haveConfig = true
	return c
}

// Result runs the full classification pipeline and returns the title and
// outline. It never fails: degenerate input yields an empty result.
func (c *Classifier) Result() model.DocumentResult {
	return c.engine().Classify(c.segments)
}

// Title runs classification and returns only the extracted title.
func (c *Classifier) Title() string {
	return c.Result().Title
}

// Outline runs classification and returns only the outline entries.
func (c *Classifier) Outline() []model.OutlineEntry {
	return c.Result().Outline
}

func (c *Classifier) engine() *classify.Engine {
	if c.options.haveConfig {
		return classify.NewEngineWithConfig(c.options.config)
	}
	return classify.NewEngine()
}
