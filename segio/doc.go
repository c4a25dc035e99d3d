// Package segio moves documents in and out of the classifier: it reads
// segment dumps produced by an upstream layout-analysis service and
// persists classification results as JSON.
//
// Storage access goes through github.com/viant/afs, so dump and output
// locations may be plain paths, file:// URLs, mem:// URLs in tests, or
// any other scheme afs supports.
package segio
