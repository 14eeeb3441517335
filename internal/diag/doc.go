// Package diag defines the diagnostic record model shared by every stage of
// the pipeline: the immutable Record, its dedup identity Key, and severity
// classification.
package diag
