package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/model"
)

// Promotional keywords that identify the headline segment of a flyer.
var flyerKeywords = []string{"HOPE", "SEE", "THERE", "RSVP", "ADDRESS", "JOIN", "COME", "VISIT"}

var (
	reSpaces         = regexp.MustCompile(`\s+`)
	reSpacePunct     = regexp.MustCompile(`\s+([!?.])`)
	flyerPunctuation = "!?."
)

// flyerOutline short-circuits classification for flyers: the first
// segment matching a promotional keyword becomes the document's single
// H1 entry, after fixing up lettering artifacts, and nothing else is
// emitted. Flyers without a matching segment produce an empty outline.
func flyerOutline(segments []model.Segment) []model.OutlineEntry {
	for _, s := range segments {
		upper := strings.ToUpper(s.Text)
		for _, kw := range flyerKeywords {
			if strings.Contains(upper, kw) {
				return []model.OutlineEntry{{
					Level: model.LevelH1,
					Text:  fixFlyerText(s.Text) + " ",
					Page:  0,
				}}
			}
		}
	}
	return []model.OutlineEntry{}
}

// fixFlyerText repairs text rendered in decorative flyer fonts, where
// individual letters surface as isolated single-character tokens.
// Consecutive single-character tokens are rejoined into one word and
// stray spaces before punctuation removed.
func fixFlyerText(text string) string {
	clean := reSpaces.ReplaceAllString(strings.TrimSpace(text), " ")

	words := strings.Split(clean, " ")
	var fixed []string
	for i := 0; i < len(words); {
		word := words[i]
		if len(word) == 1 && isLetter(word) && i+1 < len(words) && len(words[i+1]) == 1 {
			combined := word
			j := i + 1
			for j < len(words) && len(words[j]) == 1 &&
				(isLetter(words[j]) || strings.Contains(flyerPunctuation, words[j])) {
				combined += words[j]
				j++
			}
			fixed = append(fixed, combined)
			i = j
		} else {
			fixed = append(fixed, word)
			i++
		}
	}

	return reSpacePunct.ReplaceAllString(strings.Join(fixed, " "), "$1")
}

func isLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
