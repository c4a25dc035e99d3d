package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/model"
)

// Title-indicating phrases and keywords for the section-header-as-title
// fallback.
var (
	titlePhrases = []string{"introduction to", "overview of", "guide to", "report on"}

	titleKeywords = []string{
		"application", "form", "proposal", "request", "overview",
		"report", "study", "analysis", "guide", "manual", "plan",
		"stem", "pathways",
	}

	// Administrative suffix words stripped from form titles.
	adminWords = map[string]bool{
		"service": true, "department": true, "office": true,
		"ministry": true, "govt": true, "government": true,
	}

	// Stray function words that can never be a title on their own.
	functionWords = map[string]bool{
		"the": true, "and": true, "of": true, "to": true,
		"for": true, "a": true, "in": true, "on": true,
	}

	rePureNumber = regexp.MustCompile(`^\d+$`)
	rePageNumber = regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`)
	reLeadingNum = regexp.MustCompile(`^\d+\s`)
)

// ExtractTitle picks the single best title candidate by applying an
// ordered chain of strategies, returning the first hit. It never fails;
// title-less layouts yield an empty string. Segments are expected in
// reading order.
func ExtractTitle(segments []model.Segment, th ThresholdSet, cfg Config) string {
	if title, ok := titleFromExplicitType(segments); ok {
		return title
	}
	if title, ok := titleFromBoldText(segments, cfg); ok {
		return title
	}
	if title, ok := titleFromLargeText(segments, th, cfg); ok {
		return title
	}
	if title, ok := titleFromSectionHeader(segments); ok {
		return title
	}
	// Address/RSVP flyers legitimately have no title.
	return ""
}

// titleFromExplicitType picks the best segment explicitly tagged Title.
// Page-1 titles are preferred; within the pool the tallest wins, ties
// broken by boldness and then reading order.
func titleFromExplicitType(segments []model.Segment) (string, bool) {
	var pool []model.Segment
	for _, s := range segments {
		if s.Type == model.TypeTitle && s.Page == 1 {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		for _, s := range segments {
			if s.Type == model.TypeTitle {
				pool = append(pool, s)
			}
		}
	}
	if len(pool) == 0 {
		return "", false
	}

	best := pool[0]
	for _, c := range pool[1:] {
		switch {
		case c.Height > best.Height+0.01:
			best = c
		case c.Height > best.Height-0.01 && c.IsBold() && !best.IsBold():
			best = c
		}
	}
	return best.Text, true
}

// titleFromBoldText scans page 1 for bold, title-like text in the upper
// band of the page.
func titleFromBoldText(segments []model.Segment, cfg Config) (string, bool) {
	var best *model.Segment
	for i := range segments {
		s := &segments[i]
		if s.Page != 1 || !s.IsBold() || !titleLike(s.Text, 4) {
			continue
		}
		if best == nil || s.Top < best.Top ||
			(s.Top == best.Top && s.Height > best.Height) {
			best = s
		}
	}
	if best == nil || best.Top > cfg.TitleBandTop {
		return "", false
	}
	return best.Text, true
}

// titleFromLargeText falls back to the tallest prominent text on page 1:
// close to the page's maximum height, clearly above body size, and
// highest on the page.
func titleFromLargeText(segments []model.Segment, th ThresholdSet, cfg Config) (string, bool) {
	maxHeight := 0.0
	sum, count := 0.0, 0
	for _, s := range segments {
		if s.Page != 1 {
			continue
		}
		if s.Height > maxHeight {
			maxHeight = s.Height
		}
		sum += s.Height
		count++
	}
	if maxHeight == 0 {
		return "", false
	}
	avgHeight := sum / float64(count)

	var best *model.Segment
	for i := range segments {
		s := &segments[i]
		if s.Page != 1 {
			continue
		}
		if s.Height < cfg.LargeTextRatio*maxHeight || s.Height < th.MinHeaderSize {
			continue
		}
		if s.Height <= cfg.LargeTextAvgRatio*avgHeight {
			continue
		}
		if len(s.Text) < 6 || len(s.Text) > 199 {
			continue
		}
		if best == nil || s.Top < best.Top {
			best = s
		}
	}
	if best == nil {
		return "", false
	}

	text := best.Text
	if strings.HasPrefix(text, "ADDRESS:") || rePageNumber.MatchString(text) ||
		reLeadingNum.MatchString(text) {
		return "", false
	}

	// Proposal documents conventionally carry an RFP prefix.
	lower := strings.ToLower(text)
	if strings.Contains(lower, "proposal") && strings.Contains(lower, "developing") &&
		!strings.HasPrefix(text, "RFP") {
		return "RFP:Request for Proposal " + text + "  ", true
	}

	return text, true
}

// titleFromSectionHeader promotes the first section header whose text
// reads like a document title rather than a section name. Two short,
// complementary page-1 headers merge into a combined title; form titles
// lose their administrative suffix words.
func titleFromSectionHeader(segments []model.Segment) (string, bool) {
	var headers []model.Segment
	for _, s := range segments {
		if s.Type == model.TypeSectionHeader {
			headers = append(headers, s)
		}
	}
	if len(headers) == 0 {
		return "", false
	}

	text := headers[0].Text
	lower := strings.ToLower(text)

	matched := false
	for _, p := range titlePhrases {
		if strings.Contains(lower, p) {
			matched = true
			break
		}
	}
	if !matched {
		for _, k := range titleKeywords {
			if strings.Contains(lower, k) {
				matched = true
				break
			}
		}
	}
	if !matched {
		return "", false
	}

	// Fragmented titles: two short page-1 headers with no sentence
	// endings merge into one title.
	var page1 []model.Segment
	for _, h := range headers {
		if h.Page == 1 {
			page1 = append(page1, h)
		}
	}
	if len(page1) >= 2 {
		first := page1[0].Text
		second := page1[1].Text
		if len(first) <= 50 && len(second) <= 50 &&
			!strings.HasSuffix(first, ".") && !strings.HasSuffix(second, ".") &&
			len(strings.Fields(first)) <= 3 && len(strings.Fields(second)) <= 5 {
			return first + "  " + second + "  ", true
		}
	}

	if strings.Contains(lower, "application") && strings.Contains(lower, "form") {
		var kept []string
		for _, w := range strings.Fields(text) {
			if !adminWords[strings.ToLower(w)] {
				kept = append(kept, w)
			}
		}
		if len(kept) > 0 {
			return strings.Join(kept, " ") + "  ", true
		}
	}

	return text, true
}

// titleLike reports whether text is a plausible title: within length
// bounds and not an address line, page number, bare number, or stray
// function word.
func titleLike(text string, minLen int) bool {
	if len(text) < minLen || len(text) > 199 {
		return false
	}
	if rePureNumber.MatchString(text) || rePageNumber.MatchString(text) {
		return false
	}
	if strings.HasPrefix(text, "ADDRESS:") {
		return false
	}
	if functionWords[strings.ToLower(strings.TrimSpace(text))] {
		return false
	}
	return true
}
