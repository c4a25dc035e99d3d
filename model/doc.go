// Package model defines the data types shared by the outline classifier:
// the positioned text segments produced by an upstream layout analyzer,
// and the title/outline result structure the classifier emits.
//
// Segments arrive as a flat, unordered collection per document. The model
// package normalizes them (trimming text, defaulting missing fields,
// dropping invalid entries) and establishes reading order by sorting on
// (page, top, left).
package model
