// Package report compares classification results against reference
// outlines and computes accuracy metrics: exact, level, text and page
// match counts per document, precision/recall/F1, and a corpus-level
// summary blending title and outline accuracy.
package report
