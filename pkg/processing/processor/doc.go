// Package processor provides validating data processors sharing a single
// polymorphic contract.
//
// A Processor accepts loosely typed input, reports through Validate whether
// the input is structurally acceptable, and produces a textual summary
// through Process. Process never inspects input a Validate call would
// reject; it fails with a ValidationError instead.
//
// Three variants are provided:
//   - Numeric: single numbers or non-empty numeric sequences (count, sum, average)
//   - Text: strings (character and word counts)
//   - LogClassifier: log lines with a recognized severity prefix (tagged alerts)
//
// Processors are stateless and safe for concurrent use.
package processor
