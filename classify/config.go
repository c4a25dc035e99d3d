package classify

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable parameter of the classification engine.
// DefaultConfig returns the values the engine was tuned with; callers may
// override individual fields or load overrides from YAML via ParseConfig.
type Config struct {
	// BodyTolerance is the height tolerance (in font units) used when
	// grouping segments around the detected body text size. Absorbs
	// rendering jitter.
	BodyTolerance float64 `yaml:"body_tolerance"`

	// HeaderGap is how far above the body text size a segment's height
	// must be to count as a heading candidate. Also sets the absolute
	// floor below which nothing is classified as a heading.
	HeaderGap float64 `yaml:"header_gap"`

	// SizeEpsilon is subtracted from each detected heading size when
	// three or more distinct sizes exist, admitting minor rendering
	// variance at tier boundaries.
	SizeEpsilon float64 `yaml:"size_epsilon"`

	// SizeSlack is the wider offset used when only one or two distinct
	// heading sizes exist and tiers must be partially synthesized.
	SizeSlack float64 `yaml:"size_slack"`

	// DefaultBodyLength is the assumed average body-text length when a
	// document has no segments at the body size.
	DefaultBodyLength float64 `yaml:"default_body_length"`

	// TitleBandTop is the vertical band (from the top of page 1) within
	// which a bold segment may be accepted as the title.
	TitleBandTop float64 `yaml:"title_band_top"`

	// LargeTextRatio is the fraction of the page's maximum height a
	// segment must reach for the large-text title fallback.
	LargeTextRatio float64 `yaml:"large_text_ratio"`

	// LargeTextAvgRatio is how far above the page's average height a
	// large-text title candidate must sit. Keeps the fallback from
	// firing on pages with no real size contrast.
	LargeTextAvgRatio float64 `yaml:"large_text_avg_ratio"`

	// Weights are the additive scoring weights for heading signals.
	Weights Weights `yaml:"weights"`

	// Confidence holds the per-document-type acceptance floors.
	Confidence Confidence `yaml:"confidence"`
}

// Weights are the additive contributions of each heading signal.
// Relative ordering matters more than absolute values: the numbered-H1
// pattern and the section-header type hint dominate, boldness and early
// pages only nudge.
type Weights struct {
	TypeSectionHeader float64 `yaml:"type_section_header"`
	TypeTitle         float64 `yaml:"type_title"`
	NumberedH1        float64 `yaml:"numbered_h1"`
	NumberedH2        float64 `yaml:"numbered_h2"`
	NumberedH3        float64 `yaml:"numbered_h3"`
	AllCaps           float64 `yaml:"all_caps"`
	ChapterSection    float64 `yaml:"chapter_section"`
	CanonicalSection  float64 `yaml:"canonical_section"`
	Appendix          float64 `yaml:"appendix"`
	SizeLarge         float64 `yaml:"size_large"`
	SizeMedium        float64 `yaml:"size_medium"`
	ShortText         float64 `yaml:"short_text"`
	LongTextPenalty   float64 `yaml:"long_text_penalty"`
	Bold              float64 `yaml:"bold"`
	EarlyPage         float64 `yaml:"early_page"`
	TrailingColon     float64 `yaml:"trailing_colon"`
	Question          float64 `yaml:"question"`
	SpecialPhrase     float64 `yaml:"special_phrase"`
	ListItemPenalty   float64 `yaml:"list_item_penalty"`
}

// Confidence holds acceptance floors: the minimum aggregate score a
// candidate needs per document type, plus the level-decision cutoffs.
type Confidence struct {
	General  float64 `yaml:"general"`
	Academic float64 `yaml:"academic"`
	RFP      float64 `yaml:"rfp"`
	STEM     float64 `yaml:"stem"`
	Flyer    float64 `yaml:"flyer"`

	// HighScoreFloor lets a candidate below the minimum header font size
	// through anyway when its aggregate score reaches this value.
	HighScoreFloor float64 `yaml:"high_score_floor"`

	// LevelHigh and LevelMedium decide the default heading level when no
	// pattern or size signal resolves it: score >= LevelHigh maps to H1,
	// score >= LevelMedium to H2, anything else to H3.
	LevelHigh   float64 `yaml:"level_high"`
	LevelMedium float64 `yaml:"level_medium"`
}

// DefaultConfig returns the configuration the engine was tuned with.
func DefaultConfig() Config {
	return Config{
		BodyTolerance:     0.5,
		HeaderGap:         1.0,
		SizeEpsilon:       0.1,
		SizeSlack:         0.5,
		DefaultBodyLength: 50,
		TitleBandTop:      200,
		LargeTextRatio:    0.8,
		LargeTextAvgRatio: 1.4,
		Weights: Weights{
			TypeSectionHeader: 3,
			TypeTitle:         2,
			NumberedH1:        3,
			NumberedH2:        2,
			NumberedH3:        1,
			AllCaps:           2,
			ChapterSection:    3,
			CanonicalSection:  2,
			Appendix:          2,
			SizeLarge:         2,
			SizeMedium:        1,
			ShortText:         1,
			LongTextPenalty:   2,
			Bold:              1,
			EarlyPage:         0.5,
			TrailingColon:     1,
			Question:          1,
			SpecialPhrase:     0.5,
			ListItemPenalty:   3,
		},
		Confidence: Confidence{
			General:        3,
			Academic:       4,
			RFP:            4,
			STEM:           3,
			Flyer:          2,
			HighScoreFloor: 5,
			LevelHigh:      5,
			LevelMedium:    4,
		},
	}
}

// ParseConfig unmarshals YAML overrides on top of the default
// configuration, so a partial document only changes the fields it names.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing classifier config: %w", err)
	}
	return cfg, nil
}
