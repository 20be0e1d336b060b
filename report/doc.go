// Package report turns comparison results into the unified-diff style output stream.
// Report lines go to one writer (normally Stdout), operational diagnostics to another
// (normally Stderr), and the ordering of lines exactly mirrors the order results are
// emitted in - the Stream never reorders or batches.
package report
