// Package model defines the data types shared across the analyzer:
// function kinds, classifications, per-function records, per-file results,
// and the aggregate analysis report.
package model
