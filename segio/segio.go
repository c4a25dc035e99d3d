package segio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/model"
)

// outlineSuffix is appended to a dump's base name to form its result
// file name, e.g. report.json -> report_outline.json.
const outlineSuffix = "_outline.json"

// Config configures the segment I/O service.
type Config struct {
	// Classifier overrides the engine configuration.
	Classifier classify.Config

	// Logger for progress and per-document diagnostics.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	zero := classify.Config{}
	if c.Classifier == zero {
		c.Classifier = classify.DefaultConfig()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Service loads layout-service segment dumps, classifies them, and
// writes outline results.
type Service struct {
	fs     afs.Service
	engine *classify.Engine
	log    *slog.Logger
}

// New creates a Service.
func New(cfg Config) *Service {
	cfg.defaults()
	return &Service{
		fs:     afs.New(),
		engine: classify.NewEngineWithConfig(cfg.Classifier),
		log:    cfg.Logger,
	}
}

// LoadSegments reads one segment dump (a JSON array of segment records)
// from URL and converts it to the engine's segment type.
func (s *Service) LoadSegments(ctx context.Context, URL string) ([]model.Segment, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("reading segment dump %s: %w", URL, err)
	}

	var raw []rawSegment
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding segment dump %s: %w", URL, err)
	}

	segments := make([]model.Segment, 0, len(raw))
	for _, r := range raw {
		segments = append(segments, r.toModel())
	}
	return segments, nil
}

// WriteResult persists a classification result as indented JSON at URL.
func (s *Service) WriteResult(ctx context.Context, URL string, result model.DocumentResult) error {
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding result for %s: %w", URL, err)
	}
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing result %s: %w", URL, err)
	}
	return nil
}

// Process loads the dump at URL, classifies it, and returns the result.
func (s *Service) Process(ctx context.Context, URL string) (model.DocumentResult, error) {
	segments, err := s.LoadSegments(ctx, URL)
	if err != nil {
		return model.DocumentResult{}, err
	}
	result := s.engine.Classify(segments)
	s.log.Info("classified document",
		"url", URL,
		"segments", len(segments),
		"outline", len(result.Outline),
		"title", result.Title != "")
	return result, nil
}

// ProcessDir classifies every .json dump under inputURL and writes one
// <name>_outline.json per dump under outputURL. A failing document is
// logged and skipped; the first storage-level failure aborts. Returns
// the number of documents written.
func (s *Service) ProcessDir(ctx context.Context, inputURL, outputURL string) (int, error) {
	objects, err := s.fs.List(ctx, inputURL)
	if err != nil {
		return 0, fmt.Errorf("listing %s: %w", inputURL, err)
	}

	processed := 0
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		if strings.HasSuffix(object.Name(), outlineSuffix) {
			continue
		}

		result, err := s.Process(ctx, object.URL())
		if err != nil {
			s.log.Warn("skipping document", "url", object.URL(), "error", err)
			continue
		}

		name := strings.TrimSuffix(object.Name(), ".json") + outlineSuffix
		if err := s.WriteResult(ctx, url.Join(outputURL, name), result); err != nil {
			return processed, err
		}
		processed++
	}

	s.log.Info("processed segment dumps", "input", inputURL, "written", processed)
	return processed, nil
}
