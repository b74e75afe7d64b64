// Package seqvar is your in-memory toolkit for spotting structural
// variations of a reference pattern inside longer sequences — from exact
// repeats to transposed, mirrored, fragmented and extended occurrences.
//
// 🚀 What is seqvar?
//
//	A small, zero-dependency library of comparison algorithms:
//		• Repetition: exact windowed occurrences of a pattern
//		• Transposition: constant additive offset on the primary value
//		• Retrograde: reversed-order occurrences
//		• Inversion: mirror reflection around a fixed axis value
//		• LocalAuxChanges / LocalValueChanges: bounded component-wise edits
//		• Fragmentation: pattern with internal deletions
//		• Extension: pattern with internal insertions
//
// ✨ Why choose seqvar?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Generic – detectors work over any item type via pluggable extractors
//   - Pure Go – no cgo, no hidden deps, no state between calls
//   - Deterministic – identical inputs always yield identical output
//
// Everything lives in one subpackage:
//
//	variations/ — the eight detectors, extractor strategies and options
//
// Quick sketch:
//
//	pattern  = [1, 2]
//	sequence = [0, 1, 2, 1, 2, 3]
//	           → Repetition reports starts 1 and 3
//
// Dive into variations/doc.go and the examples/ directory for full
// walkthroughs with pitch/duration pairs and plain scalar codes.
//
//	go get github.com/katalvlaran/seqvar/variations
package seqvar
