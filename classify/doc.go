// Package classify implements the heading-classification engine.
//
// The engine takes one document's segment collection and produces a title
// plus a hierarchical outline. Analysis proceeds in stages:
//
//   - [AnalyzeThresholds] derives font-size cutoffs from the document's own
//     text population (body text is the most frequent font size by volume).
//   - [ExtractTitle] applies an ordered chain of title strategies.
//   - [DetectDocumentType] assigns a coarse genre tag used only to select
//     the scoring policy.
//   - The [Engine] scores every remaining segment against multiple
//     independent signals (size, content patterns, boldness, length,
//     position, type hints) and maps accepted segments to heading levels.
//
// All numeric weights and thresholds live in [Config]; they were tuned
// against a small document corpus and should be treated as tuning
// parameters, not fixed values.
//
// The engine never fails: malformed segments are dropped, threshold
// derivation degrades to synthesized defaults, and title extraction
// degrades to an empty string. Every input yields a valid, possibly
// empty, result.
package classify
