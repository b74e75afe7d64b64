// Package variations detects structural variations of a reference
// pattern inside a longer sequence of items, where every item carries a
// primary value and an optional auxiliary value.
//
// 🚀 What is a variation?
//
//	Given a pattern P and a sequence S, the package reports every window
//	of S that relates to P through one of eight transformations:
//	  • Repetition        — exact element-wise repeat of P
//	  • Transposition     — primary values shifted by a constant offset
//	  • Retrograde        — P in reversed order
//	  • Inversion         — primary values mirrored around a fixed axis
//	  • LocalAuxChanges   — same primaries, a few auxiliary values differ
//	  • LocalValueChanges — same auxiliaries, a few primaries differ
//	  • Fragmentation     — P with some elements deleted (shorter window)
//	  • Extension         — P with extra internal elements (longer window)
//
//	The classic instance is symbolic music: items are (pitch, duration)
//	pairs, transposition shifts pitch, retrograde plays a motif backwards,
//	inversion mirrors it around its opening pitch. Nothing in the API is
//	music-specific: items are generic and values come from pluggable
//	extractors.
//
// ✨ Key features:
//   - generic over the item type T; no fixed item schema
//   - pluggable PrimaryFunc/AuxFunc extraction strategies with built-in
//     defaults for Pair items and plain scalars
//   - explicit optional Aux type — no sentinel nils in comparisons
//   - total functions: degenerate inputs yield empty results, never errors
//   - pure and stateless: safe for concurrent use on immutable inputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqvar/variations"
//
//	pattern := []int{1, 2, 3}
//	melody := []int{1, 2, 3, 2, 3, 4}
//
//	// exact repeats
//	starts := variations.Repetition(pattern, melody)
//
//	// transposed repeats (+1 at position 3)
//	shifts := variations.Transposition(pattern, melody,
//	    variations.Identity[int], variations.NoAux[int])
//
// Performance:
//
//   - Repetition … LocalValueChanges: O(N·L) time, L = pattern length.
//   - Fragmentation / Extension: up to O(N·L²) time — the window length
//     varies and every candidate runs a greedy subsequence alignment.
//   - Memory: O(1) beyond the returned records.
//
// See example_test.go and the examples/ directory at the module root for
// detailed walkthroughs.
package variations
