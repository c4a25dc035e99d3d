package classify

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// DocumentType is a coarse content-genre tag. It only parametrizes the
// heading scorer's acceptance floor and exclusion rules; it is never
// exposed in the result.
type DocumentType int

const (
	DocGeneral DocumentType = iota
	DocForm
	DocFlyer
	DocSTEM
	DocRFP
	DocAcademic
)

// String returns a string representation of the document type
func (d DocumentType) String() string {
	switch d {
	case DocForm:
		return "form"
	case DocFlyer:
		return "flyer"
	case DocSTEM:
		return "stem"
	case DocRFP:
		return "rfp"
	case DocAcademic:
		return "academic"
	default:
		return "general"
	}
}

// Indicator keyword sets per genre. Counted as present/absent substring
// matches against the lowercased sample text.
var (
	formIndicators     = []string{"application", "form", "name:", "designation:", "signature:", "date:", "employee id"}
	flyerIndicators    = []string{"address:", "rsvp:", "contact:", "phone:", "email:", "visit", "come", "join"}
	stemIndicators     = []string{"stem", "pathway", "program", "credit", "gpa", "student", "course", "requirements"}
	rfpIndicators      = []string{"rfp", "proposal", "request", "bidder", "contractor", "award", "procurement"}
	academicIndicators = []string{"abstract", "introduction", "methodology", "results", "conclusion", "references", "study", "research", "analysis", "foundation level"}
)

// sampleSize is how many leading segments feed genre detection.
const sampleSize = 20

// DetectDocumentType inspects the leading segments (in the order the
// document supplied them) and the provisional title, and returns the
// first matching genre. The decision order encodes specificity: the most
// distinctive signals are checked first, general is the fallback.
func DetectDocumentType(segments []model.Segment, title string, cfg Config) DocumentType {
	n := len(segments)
	if n > sampleSize {
		n = sampleSize
	}

	var sb strings.Builder
	for _, s := range segments[:n] {
		sb.WriteString(s.Text)
		sb.WriteString(" ")
	}
	sample := strings.ToLower(sb.String())
	titleLower := strings.ToLower(title)

	// Forms: explicit "application ... form" titles, or a cluster of
	// fill-in field labels.
	if (strings.Contains(titleLower, "application") && strings.Contains(titleLower, "form")) ||
		countIndicators(sample, formIndicators) >= 3 {
		return DocForm
	}

	// Flyers: an address block up front, or promotional contact lines.
	addressLead := false
	for i := 0; i < len(segments) && i < 3; i++ {
		if strings.HasPrefix(segments[i].Text, "ADDRESS:") {
			addressLead = true
			break
		}
	}
	if addressLead || countIndicators(sample, flyerIndicators) >= 2 {
		return DocFlyer
	}

	if strings.Contains(titleLower, "stem") || countIndicators(sample, stemIndicators) >= 3 {
		return DocSTEM
	}

	if strings.Contains(titleLower, "rfp") || strings.Contains(titleLower, "proposal") ||
		countIndicators(sample, rfpIndicators) >= 2 {
		return DocRFP
	}

	if strings.Contains(titleLower, "overview") || countIndicators(sample, academicIndicators) >= 3 {
		return DocAcademic
	}

	return DocGeneral
}

// countIndicators counts how many of the indicator keywords occur in the
// sample. Each keyword counts once no matter how often it appears.
func countIndicators(sample string, indicators []string) int {
	count := 0
	for _, ind := range indicators {
		if strings.Contains(sample, ind) {
			count++
		}
	}
	return count
}

// pageNumbering selects how a policy rewrites page numbers on emitted
// outline entries.
type pageNumbering int

const (
	pageAsIs     pageNumbering = iota
	pageMinusOne               // shift pages past the first down by one
	pageZero                   // report every entry on page 0
)

// policy is the per-genre scoring policy record: acceptance floor plus
// exclusion rules applied after generic scoring.
type policy struct {
	required      float64
	emptyOutline  bool
	flyer         bool
	skipTerms     []string
	skipDates     bool
	skipFragments bool
	skipPunctOnly bool
	eduKeywords   []string
	numbering     pageNumbering
}

// policyFor returns the scoring policy for a document type.
func policyFor(dt DocumentType, cfg Config) policy {
	switch dt {
	case DocForm:
		// Forms have no heading hierarchy.
		return policy{emptyOutline: true}
	case DocFlyer:
		return policy{required: cfg.Confidence.Flyer, flyer: true}
	case DocAcademic:
		return policy{
			required:  cfg.Confidence.Academic,
			skipTerms: []string{"et al", "figure", "table", "ref.", "pp.", "vol.", "no.", "professionals who"},
			numbering: pageMinusOne,
		}
	case DocRFP:
		return policy{
			required:      cfg.Confidence.RFP,
			skipDates:     true,
			skipFragments: true,
			skipPunctOnly: true,
		}
	case DocSTEM:
		return policy{
			required:    cfg.Confidence.STEM,
			eduKeywords: []string{"pathway", "program", "course", "credit", "gpa", "student"},
			numbering:   pageZero,
		}
	default:
		return policy{required: cfg.Confidence.General}
	}
}
