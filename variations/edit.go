package variations

import "sort"

// Edit-based detectors.
//
// Description:
//
//	Fragmentation and Extension align the pattern against windows of
//	*different* length than the pattern:
//
//	  Fragmentation — a shorter window obtained by deleting pattern
//	    elements (order preserved). Reported as the deleted pattern
//	    indices.
//	  Extension — a longer window containing the full pattern as an
//	    ordered subsequence plus extra internal items. Reported as the
//	    inserted window slots with their values.
//
//	Both rest on the same greedy two-pointer alignment (alignSkips): the
//	shorter side is matched as an ordered subsequence of the longer side
//	and the skipped long-side indices describe the edit. For
//	Fragmentation the long side is the pattern (skips = deletions); for
//	Extension the long side is the window (skips = insertions).
//
// Algorithm Outline (Fragmentation):
//  1. minLen defaults to L - L/4; window lengths run minLen..L-1.
//  2. Precompute exact full-pattern spans; any candidate window fully
//     contained in such a span is discarded (an exact repeat is not a
//     fragmentation).
//  3. Per start index keep the candidate with the fewest deletions;
//     ties keep the first found in ascending window-length order, so the
//     smallest window length wins.
//  4. Greedy left-to-right de-overlap: walk candidates in ascending
//     start order and keep one only if it starts strictly after the end
//     of the last kept candidate.
//
// Algorithm Outline (Extension):
//  1. maxExtra defaults to max(1, L/4); window lengths run L+1..L+maxExtra
//     ascending, stopping at the sequence boundary.
//  2. A window qualifies iff the pattern is fully consumed, at least one
//     slot was skipped, and the skipped slots are internal: neither the
//     first window slot nor the last may be an insertion.
//  3. Per start the longest qualifying window wins unconditionally; at
//     most one record per start.
//
// Complexity:
//
//	Time   = O(N·L²) worst case (window-length dimension × alignment)
//	Memory = O(L) per candidate alignment

// Fragmentation finds shorter windows obtained from pattern by deleting
// some elements while preserving order.
//
// minLen comes from WithMinLength; values <= 0 select the derived
// default L - L/4. Items are compared under full structural equality.
// Results are in ascending start order, overlap-free (earliest start
// wins), one per surviving start index, each listing the deleted
// pattern indices in ascending order.
//
// Complexity: O(N·L²) time worst case.
func Fragmentation[T comparable](pattern, sequence []T, opts ...Option) []Fragment {
	l, n := len(pattern), len(sequence)
	if l == 0 || n == 0 {
		return nil
	}
	minLen := gatherOptions(opts...).minLengthFor(l)

	// Spans of exact full-pattern matches; candidates living entirely
	// inside one are exact repeats, not fragmentations.
	exact := Repetition(pattern, sequence)
	inExactSpan := func(start, end int) bool {
		for _, s := range exact {
			if s <= start && end <= s+l-1 {
				return true
			}
		}

		return false
	}

	// Best candidate per start: fewest deletions; ties keep the first
	// found, i.e. the smallest window length.
	bestByPos := make(map[int][]int)
	for fragLen := minLen; fragLen < l; fragLen++ {
		for start := 0; start+fragLen <= n; start++ {
			end := start + fragLen - 1
			if inExactSpan(start, end) {
				continue
			}

			removed, ok := alignSkips(pattern, sequence[start:start+fragLen])
			if !ok {
				continue
			}

			if existing, seen := bestByPos[start]; !seen || len(removed) < len(existing) {
				bestByPos[start] = removed
			}
		}
	}

	// Ascending start order.
	positions := make([]int, 0, len(bestByPos))
	for pos := range bestByPos {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	// Greedy de-overlap: earliest-starting match wins within a region.
	var results []Fragment
	lastEnd := -1
	for _, pos := range positions {
		removed := bestByPos[pos]
		end := pos + (l - len(removed)) - 1
		if pos > lastEnd {
			results = append(results, Fragment{Position: pos, Removed: removed})
			lastEnd = end
		}
	}

	return results
}

// Extension finds longer windows containing the full pattern as an
// ordered subsequence plus extra internal items.
//
// maxExtra comes from WithMaxExtra; values <= 0 select the derived
// default max(1, L/4). Items are compared under full structural
// equality. The extra items must be internal: a window whose first or
// last slot is an insertion is rejected (that would be mere prefix or
// suffix padding). Per start index only the longest qualifying window
// is reported.
//
// Complexity: O(N·L²) time worst case.
func Extension[T comparable](pattern, sequence []T, opts ...Option) []Extent[T] {
	l, n := len(pattern), len(sequence)
	if l == 0 || n == 0 {
		return nil
	}
	maxExtra := gatherOptions(opts...).maxExtraFor(l)

	var results []Extent[T]
	for start := 0; start+l <= n; start++ {
		var (
			best  Extent[T]
			found bool
		)

		for fragLen := l + 1; fragLen <= l+maxExtra; fragLen++ {
			if start+fragLen > n {
				break
			}
			window := sequence[start : start+fragLen]

			skipped, ok := alignSkips(window, pattern)
			if !ok || len(skipped) == 0 {
				continue
			}
			// Insertions must be internal, not prefix/suffix padding.
			if skipped[0] == 0 || skipped[len(skipped)-1] == fragLen-1 {
				continue
			}

			added := make([]Insertion[T], len(skipped))
			for k, idx := range skipped {
				added[k] = Insertion[T]{Index: idx, Value: window[idx]}
			}

			// Longer qualifying windows overwrite shorter ones.
			best = Extent[T]{Position: start, Added: added}
			found = true
		}

		if found {
			results = append(results, best)
		}
	}

	return results
}

// alignSkips greedily matches short as an ordered subsequence of long
// with a two-pointer walk: on equality both cursors advance, otherwise
// the long-side index is recorded as skipped and only the long cursor
// advances. Long-side indices left after short is exhausted are skipped
// too. ok reports whether short was fully consumed.
//
// Complexity: O(len(long)) time.
func alignSkips[T comparable](long, short []T) (skipped []int, ok bool) {
	i, j := 0, 0
	for i < len(long) && j < len(short) {
		if long[i] == short[j] {
			i++
			j++
		} else {
			skipped = append(skipped, i)
			i++
		}
	}
	for ; i < len(long); i++ {
		skipped = append(skipped, i)
	}

	return skipped, j == len(short)
}
