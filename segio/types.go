package segio

import "github.com/tsawler/outliner/model"

// rawSegment mirrors one segment record in a layout-service dump. Field
// names follow the service's JSON contract. Missing fields take their
// zero values and are defaulted during conversion; invalid records are
// dropped later by the classifier, never reported as errors.
type rawSegment struct {
	Text       string  `json:"text"`
	Height     float64 `json:"height"`
	FontName   string  `json:"font_name"`
	Type       string  `json:"type"`
	PageNumber int     `json:"page_number"`
	Top        float64 `json:"top"`
	Left       float64 `json:"left"`
}

// toModel converts a raw record into the engine's segment type.
func (r rawSegment) toModel() model.Segment {
	page := r.PageNumber
	if page <= 0 {
		page = 1
	}
	return model.Segment{
		Text:     r.Text,
		Height:   r.Height,
		FontName: r.FontName,
		Type:     model.ParseTypeHint(r.Type),
		Page:     page,
		Top:      r.Top,
		Left:     r.Left,
	}
}
