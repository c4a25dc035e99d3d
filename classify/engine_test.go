package classify

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/tsawler/outliner/model"
)

// structuredDocument builds a general document with an explicit title
// and three numbered heading tiers over body text.
func structuredDocument() []model.Segment {
	segments := []model.Segment{
		makeTyped("Modern Data Pipelines", 20, model.TypeTitle, 1, 40),
		makeTyped("1. Introduction", 16, model.TypeSectionHeader, 1, 120),
		makeTyped("1.1 Data Collection", 14, model.TypeSectionHeader, 1, 300),
		makeTyped("1.1.1 Sensor Types", 12, model.TypeSectionHeader, 1, 500),
	}
	for i := 0; i < 6; i++ {
		segments = append(segments, model.Segment{
			Text:   "the sensors record continuous measurements across the field",
			Height: 10,
			Page:   1,
			Top:    600 + float64(i)*20,
		})
	}
	return segments
}

func TestClassifyStructuredDocument(t *testing.T) {
	result := NewEngine().Classify(structuredDocument())

	if result.Title != "Modern Data Pipelines" {
		t.Errorf("title = %q, want %q", result.Title, "Modern Data Pipelines")
	}

	want := []model.OutlineEntry{
		{Level: model.LevelH1, Text: "1. Introduction", Page: 1},
		{Level: model.LevelH2, Text: "1.1 Data Collection", Page: 1},
		{Level: model.LevelH3, Text: "1.1.1 Sensor Types", Page: 1},
	}
	if !reflect.DeepEqual(result.Outline, want) {
		t.Errorf("outline = %+v, want %+v", result.Outline, want)
	}
}

func TestClassifyBodyOnlyDocument(t *testing.T) {
	var segments []model.Segment
	for i := 0; i < 10; i++ {
		segments = append(segments, model.Segment{
			Text:   "plain running text without any heading structure at all",
			Height: 10,
			Page:   1 + i/5,
			Top:    float64(i * 30),
		})
	}

	result := NewEngine().Classify(segments)
	if result.Title != "" {
		t.Errorf("title = %q, want empty", result.Title)
	}
	if len(result.Outline) != 0 {
		t.Errorf("outline = %+v, want empty", result.Outline)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	engine := NewEngine()
	segments := structuredDocument()

	first := engine.Classify(segments)
	second := engine.Classify(segments)

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("results differ between runs:\n%s\n%s", a, b)
	}
}

func TestClassifyDoesNotModifyInput(t *testing.T) {
	segments := structuredDocument()
	snapshot := make([]model.Segment, len(segments))
	copy(snapshot, segments)

	NewEngine().Classify(segments)

	if !reflect.DeepEqual(segments, snapshot) {
		t.Error("Classify modified its input slice")
	}
}

func TestClassifyFormAlwaysEmptyOutline(t *testing.T) {
	segments := []model.Segment{
		makeTyped("Application Form for Grant", 20, model.TypeTitle, 1, 40),
		makeTyped("1. Personal Details", 16, model.TypeSectionHeader, 1, 120),
		makeTyped("2. Employment History", 16, model.TypeSectionHeader, 1, 300),
		makeTyped("Name: ____________", 10, model.TypeOther, 1, 160),
		makeTyped("Signature: ____________", 10, model.TypeOther, 1, 400),
		makeTyped("Date: ____________", 10, model.TypeOther, 1, 440),
	}

	result := NewEngine().Classify(segments)
	if len(result.Outline) != 0 {
		t.Errorf("form outline = %+v, want empty despite heading-like segments", result.Outline)
	}
}

func TestClassifyFlyerSingleEntry(t *testing.T) {
	segments := []model.Segment{
		makeTyped("JOIN US FOR THE CELEBRATION", 14, model.TypeOther, 1, 40),
		makeTyped("ADDRESS: 12 Elm Street", 10, model.TypeOther, 1, 100),
		makeTyped("RSVP: call 555-0100", 10, model.TypeOther, 1, 140),
	}

	result := NewEngine().Classify(segments)
	if result.Title != "" {
		t.Errorf("flyer title = %q, want empty", result.Title)
	}
	if len(result.Outline) != 1 {
		t.Fatalf("flyer outline has %d entries, want exactly 1", len(result.Outline))
	}
	if result.Outline[0].Level != model.LevelH1 {
		t.Errorf("flyer entry level = %v, want H1", result.Outline[0].Level)
	}
}

func TestClassifyTitleNeverDuplicatedInOutline(t *testing.T) {
	segments := append(structuredDocument(),
		makeTyped("Modern Data Pipelines", 16, model.TypeSectionHeader, 2, 40),
		makeTyped("Data Pipelines", 16, model.TypeSectionHeader, 2, 120),
	)

	result := NewEngine().Classify(segments)
	for _, entry := range result.Outline {
		if entry.Text == result.Title {
			t.Errorf("outline repeats the title: %+v", entry)
		}
		if entry.Text == "Data Pipelines" {
			t.Errorf("outline contains a title substring: %+v", entry)
		}
	}
}

func TestClassifyAcademicPolicy(t *testing.T) {
	segments := []model.Segment{
		makeTyped("Overview of Research Findings", 20, model.TypeTitle, 1, 40),
		makeTyped("Methodology", 16, model.TypeSectionHeader, 2, 60),
		makeTyped("Results shown in figure 3", 16, model.TypeSectionHeader, 3, 60),
		makeTyped("References", 16, model.TypeSectionHeader, 3, 400),
	}
	for i := 0; i < 6; i++ {
		segments = append(segments, model.Segment{
			Text:   "observed values were recorded for each trial in sequence",
			Height: 10,
			Page:   2,
			Top:    200 + float64(i)*20,
		})
	}

	result := NewEngine().Classify(segments)
	if result.Title != "Overview of Research Findings" {
		t.Fatalf("title = %q", result.Title)
	}

	var texts []string
	for _, e := range result.Outline {
		texts = append(texts, e.Text)
	}
	if !reflect.DeepEqual(texts, []string{"Methodology", "References"}) {
		t.Fatalf("outline texts = %v, want figure noise filtered", texts)
	}

	// Academic numbering shifts pages past the first down by one.
	if result.Outline[0].Page != 1 {
		t.Errorf("Methodology page = %d, want 1", result.Outline[0].Page)
	}
	if result.Outline[1].Page != 2 {
		t.Errorf("References page = %d, want 2", result.Outline[1].Page)
	}
}

func TestClassifySTEMPolicy(t *testing.T) {
	segments := []model.Segment{
		makeTyped("STEM Pathways Guide", 20, model.TypeTitle, 1, 40),
		makeTyped("Program Requirements", 16, model.TypeSectionHeader, 1, 120),
		makeTyped("Each course awards one credit toward the student gpa", 10, model.TypeOther, 1, 200),
		makeTyped("Pathway selection happens in grade nine for every student", 10, model.TypeOther, 1, 240),
		makeTyped("Course credit totals are reviewed by program advisors", 10, model.TypeOther, 1, 280),
	}

	result := NewEngine().Classify(segments)
	if len(result.Outline) == 0 {
		t.Fatal("expected at least one STEM outline entry")
	}
	for _, e := range result.Outline {
		if e.Page != 0 {
			t.Errorf("stem entry %q page = %d, want 0", e.Text, e.Page)
		}
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	result := NewEngine().Classify(nil)
	if result.Title != "" || len(result.Outline) != 0 {
		t.Errorf("empty input produced %+v", result)
	}
	if result.Outline == nil {
		t.Error("outline must be non-nil so JSON encodes [] rather than null")
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte("confidence:\n  general: 6\nweights:\n  bold: 2\n")
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if !approx(cfg.Confidence.General, 6) {
		t.Errorf("Confidence.General = %v, want 6", cfg.Confidence.General)
	}
	if !approx(cfg.Weights.Bold, 2) {
		t.Errorf("Weights.Bold = %v, want 2", cfg.Weights.Bold)
	}
	// Untouched fields keep their defaults.
	if !approx(cfg.Confidence.Academic, DefaultConfig().Confidence.Academic) {
		t.Errorf("Confidence.Academic = %v, want default", cfg.Confidence.Academic)
	}
}

func TestParseConfigRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("weights: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
