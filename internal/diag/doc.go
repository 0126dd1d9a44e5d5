// Package diag defines the diagnostic model shared by all pipeline phases:
// severities, stable error codes, the Diagnostic record, the Bag collector
// and the Reporter contract phases use to emit without knowing the sink.
package diag
