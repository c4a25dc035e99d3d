package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/model"
)

// Content patterns. Numbered-section prefixes are the most reliable level
// signal: "1. Introduction" pins H1, "1.1 Scope" pins H2, and so on.
var (
	reNumberedH1 = regexp.MustCompile(`^\d+\.?\s+[A-Z]`)
	reNumberedH2 = regexp.MustCompile(`^\d+\.\d+\.?\s+[A-Z]`)
	reNumberedH3 = regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+[A-Z]`)
	reNumberedH4 = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\.?\s+[A-Z]`)

	reAllCapsShort = regexp.MustCompile(`^[A-Z][A-Z\s\-]{2,30}$`)
	reAllCapsLine  = regexp.MustCompile(`^[A-Z][A-Z\s\-]+$`)

	reChapterSection = regexp.MustCompile(`(?i)^(Chapter|Section|Part)\s+\d+`)
	reCanonicalName  = regexp.MustCompile(`(?i)^(Abstract|Introduction|Background|Method|Results|Discussion|Conclusion|References)$`)
	reAppendix       = regexp.MustCompile(`(?i)^Appendix\s+[A-Z](:|\s)`)
	reCommonSection  = regexp.MustCompile(`(?i)^(Revision\s+History|Table\s+of\s+Contents|Acknowledgements?)$`)

	reDateLine  = regexp.MustCompile(`^\w+\s+\d{1,2},?\s+\d{4}`)
	rePunctOnly = regexp.MustCompile(`^[\d\s.\-:]+$`)
	reListItem  = regexp.MustCompile(`^[\d•●]\.\s+.{50,}`)
)

// Canonical major-section names that resolve directly to H1.
var majorSections = map[string]bool{
	"abstract": true, "introduction": true, "background": true,
	"method": true, "methods": true, "methodology": true,
	"results": true, "discussion": true, "conclusion": true,
	"conclusions": true, "references": true, "bibliography": true,
	"acknowledgements": true, "overview": true,
	"revision history": true, "table of contents": true,
}

// Phrases that nudge a line toward heading status in mixed documents.
var specialPhrases = []string{"pathway", "timeline", "summary", "background"}

// scoreSegment computes the additive confidence score for one segment
// and reports whether anything marked it as a heading candidate at all.
// A high score on a non-candidate means nothing: some signal (type hint
// or content pattern) must nominate the segment first.
func scoreSegment(s model.Segment, th ThresholdSet, cfg Config) (float64, bool) {
	w := cfg.Weights
	text := s.Text
	lower := strings.ToLower(text)

	score := 0.0
	candidate := false

	// Type hints from the layout analyzer.
	switch s.Type {
	case model.TypeSectionHeader:
		candidate = true
		score += w.TypeSectionHeader
	case model.TypeTitle:
		// Subsection titles are sometimes tagged Title.
		candidate = true
		score += w.TypeTitle
	}

	// Content patterns, strongest first; only the first match counts.
	switch {
	case reNumberedH1.MatchString(text):
		candidate = true
		score += w.NumberedH1
	case reNumberedH2.MatchString(text):
		candidate = true
		score += w.NumberedH2
	case reNumberedH3.MatchString(text):
		candidate = true
		score += w.NumberedH3
	case reAllCapsShort.MatchString(text):
		candidate = true
		score += w.AllCaps
	case reChapterSection.MatchString(text):
		candidate = true
		score += w.ChapterSection
	case reCanonicalName.MatchString(text):
		candidate = true
		score += w.CanonicalSection
	case reAppendix.MatchString(text):
		candidate = true
		score += w.Appendix
	case reCommonSection.MatchString(text):
		candidate = true
		score += w.CanonicalSection
	}

	// Font size relative to the document's own body text.
	if s.Height > th.BodyTextSize*1.5 {
		score += w.SizeLarge
	} else if s.Height > th.BodyTextSize*1.2 {
		score += w.SizeMedium
	}

	// Headings run short; body-length lines are probably misfires.
	if len(text) <= 60 {
		score += w.ShortText
	} else if len(text) > 120 {
		score -= w.LongTextPenalty
	}

	if s.IsBold() {
		score += w.Bold
	}

	if s.Page <= 2 {
		score += w.EarlyPage
	}

	// Only short colon-terminated lines read as headings; long ones are
	// lead-ins to lists or definitions.
	if strings.HasSuffix(text, ":") && len(text) <= 30 {
		score += w.TrailingColon
	}

	if strings.HasSuffix(text, "?") && len(text) <= 80 {
		score += w.Question
	}

	for _, p := range specialPhrases {
		if strings.Contains(lower, p) {
			score += w.SpecialPhrase
			break
		}
	}

	// Long numbered lines are list items, not headings.
	if reListItem.MatchString(text) && len(text) > 80 {
		score -= w.ListItemPenalty
	}

	return score, candidate
}

// headingLevel assigns the heading level for an accepted segment.
// Numbered-section patterns pin the level outright; font height decides
// next; canonical names, all-caps and colon endings resolve the rest,
// with the aggregate score as the final tie-breaker.
func headingLevel(text string, height float64, th ThresholdSet, score float64, cfg Config) model.Level {
	switch {
	case reNumberedH1.MatchString(text):
		return model.LevelH1
	case reNumberedH2.MatchString(text):
		return model.LevelH2
	case reNumberedH3.MatchString(text):
		return model.LevelH3
	case reNumberedH4.MatchString(text):
		return model.LevelH4
	}

	switch {
	case height >= th.H1Threshold:
		return model.LevelH1
	case height >= th.H2Threshold:
		return model.LevelH2
	case height >= th.H3Threshold:
		return model.LevelH3
	}

	if majorSections[strings.ToLower(strings.TrimSpace(text))] {
		return model.LevelH1
	}

	if reAllCapsLine.MatchString(text) && len(text) <= 40 {
		if score >= cfg.Confidence.LevelHigh {
			return model.LevelH1
		}
		return model.LevelH2
	}

	if strings.HasSuffix(text, ":") {
		return model.LevelH3
	}

	switch {
	case score >= cfg.Confidence.LevelHigh:
		return model.LevelH1
	case score >= cfg.Confidence.LevelMedium:
		return model.LevelH2
	default:
		return model.LevelH3
	}
}

// rejectedByPolicy applies the per-genre exclusion rules after generic
// scoring.
func rejectedByPolicy(s model.Segment, p policy) bool {
	text := s.Text
	lower := strings.ToLower(text)

	for _, term := range p.skipTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	if p.skipDates && reDateLine.MatchString(text) {
		return true
	}
	if p.skipFragments {
		if len(text) <= 3 {
			return true
		}
		if functionWords[strings.TrimSpace(lower)] {
			return true
		}
	}
	if p.skipPunctOnly && rePunctOnly.MatchString(text) {
		return true
	}
	return false
}

// requiredScore returns the acceptance floor for a segment under a
// policy. STEM documents without an educational keyword pay a one-tier
// premium.
func requiredScore(s model.Segment, p policy) float64 {
	required := p.required
	if len(p.eduKeywords) > 0 {
		lower := strings.ToLower(s.Text)
		found := false
		for _, k := range p.eduKeywords {
			if strings.Contains(lower, k) {
				found = true
				break
			}
		}
		if !found {
			required++
		}
	}
	return required
}

// adjustPage rewrites the reported page number per the policy's
// numbering scheme.
func adjustPage(page int, p policy) int {
	switch p.numbering {
	case pageMinusOne:
		if page > 1 {
			return page - 1
		}
		return page
	case pageZero:
		return 0
	default:
		return page
	}
}
