// Package ingestion loads the Paranuara dataset from its JSON files.
//
// The Loader type reads a record array and decodes the records concurrently
// on a worker pool, keeping them in input order. A single malformed record
// aborts the whole load; records are never skipped.
//
// ProgressTracker reports progress of long-running writes, such as
// synchronizing a loaded Dataset into the document store.
package ingestion
