package variations

// Exact and transform detectors.
//
// Description:
//
//	All four detectors in this file slide a window of pattern length L
//	over the sequence and test every alignment independently:
//
//	  Repetition    — window equals the pattern element-wise
//	  Transposition — primary values shifted by one constant, non-zero offset
//	  Retrograde    — window equals the pattern read backwards
//	  Inversion     — primary values mirrored around axis = value(pattern[0])
//
// Algorithm Outline (shared):
//  1. Let L = len(pattern), N = len(sequence). If L == 0 or N < L,
//     return no matches (an empty pattern matches nowhere by definition).
//  2. For each start i in [0, N-L], test window sequence[i:i+L] against
//     the pattern under the detector's relation; on success record i
//     (plus the offset, for Transposition).
//  3. Matches come out in ascending start order, each start reported once.
//
// Complexity:
//
//	Time   = O(N·L) per detector
//	Memory = O(1) beyond the result slice

// Repetition finds every exact occurrence of pattern in sequence.
//
// A start index i matches iff sequence[i:i+L] equals pattern
// element-wise under full structural equality of items (not just the
// primary value). Results are ascending and duplicate-free; an empty
// pattern yields no matches.
//
// Complexity: O(N·L) time.
func Repetition[T comparable](pattern, sequence []T) []int {
	l, n := len(pattern), len(sequence)
	if l == 0 || n < l {
		return nil
	}

	var matches []int
	for i := 0; i+l <= n; i++ {
		ok := true
		for j := 0; j < l; j++ {
			if sequence[i+j] != pattern[j] {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, i)
		}
	}

	return matches
}

// Transposition finds occurrences of pattern whose primary values are
// uniformly shifted by a constant additive offset.
//
// For each window the candidate offset is taken from index 0:
// value(window[0]) - value(pattern[0]). A zero offset is rejected — an
// exact repetition is not a transposition. The window matches iff every
// index exhibits the same offset and, unless WithIgnoreAux is given,
// the auxiliary values match the pattern index-wise.
//
// Complexity: O(N·L) time.
func Transposition[T any, V Number, A comparable](
	pattern, sequence []T,
	value PrimaryFunc[T, V],
	aux AuxFunc[T, A],
	opts ...Option,
) []Shift[V] {
	l, n := len(pattern), len(sequence)
	if l == 0 || n < l {
		return nil
	}
	o := gatherOptions(opts...)

	var results []Shift[V]
	for i := 0; i+l <= n; i++ {
		window := sequence[i : i+l]

		// 1) Optional aux equality check.
		if !o.ignoreAux && !auxEqual(pattern, window, aux) {
			continue
		}

		// 2) Candidate offset from the first element; zero means an
		//    exact repetition, which Repetition already covers.
		offset := value(window[0]) - value(pattern[0])
		if offset == 0 {
			continue
		}

		// 3) The offset must hold at every index.
		ok := true
		for j := 0; j < l; j++ {
			if value(window[j])-value(pattern[j]) != offset {
				ok = false
				break
			}
		}
		if ok {
			results = append(results, Shift[V]{Position: i, Offset: offset})
		}
	}

	return results
}

// Retrograde finds occurrences of pattern in reversed order.
//
// A window matches iff primary(window[j]) == primary(pattern[L-1-j]) for
// every j, and — unless WithIgnoreAux is given — the auxiliary values
// match on the same reversed alignment.
//
// Complexity: O(N·L) time.
func Retrograde[T any, P comparable, A comparable](
	pattern, sequence []T,
	primary PrimaryFunc[T, P],
	aux AuxFunc[T, A],
	opts ...Option,
) []int {
	l, n := len(pattern), len(sequence)
	if l == 0 || n < l {
		return nil
	}
	o := gatherOptions(opts...)

	var matches []int
	for i := 0; i+l <= n; i++ {
		window := sequence[i : i+l]
		ok := true
		for j := 0; j < l; j++ {
			p := pattern[l-1-j]
			s := window[j]
			if primary(s) != primary(p) {
				ok = false
				break
			}
			if !o.ignoreAux && aux(s) != aux(p) {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, i)
		}
	}

	return matches
}

// Inversion finds occurrences of pattern mirrored around a fixed axis.
//
// The axis is derived once from the pattern — axis = value(pattern[0]) —
// and is NOT recomputed per window: inversion is defined relative to a
// fixed reference value. A window matches iff:
//
//	(a) value(window[0]) == axis;
//	(b) auxiliary values match index-wise, unless WithIgnoreAux is given;
//	(c) value(window[j]) == axis - (value(pattern[j]) - axis) for all j.
//
// Complexity: O(N·L) time.
func Inversion[T any, V Number, A comparable](
	pattern, sequence []T,
	value PrimaryFunc[T, V],
	aux AuxFunc[T, A],
	opts ...Option,
) []int {
	l, n := len(pattern), len(sequence)
	if l == 0 || n < l {
		return nil
	}
	o := gatherOptions(opts...)

	axis := value(pattern[0])

	var matches []int
	for i := 0; i+l <= n; i++ {
		window := sequence[i : i+l]

		// 1) The window must open on the axis itself.
		if value(window[0]) != axis {
			continue
		}

		// 2) Optional aux equality.
		if !o.ignoreAux && !auxEqual(pattern, window, aux) {
			continue
		}

		// 3) Mirror equality at every index.
		ok := true
		for j := 0; j < l; j++ {
			if value(window[j]) != axis-(value(pattern[j])-axis) {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, i)
		}
	}

	return matches
}

// auxEqual reports whether window and pattern carry equal auxiliary
// values at every index. len(window) >= len(pattern) is assumed.
func auxEqual[T any, A comparable](pattern, window []T, aux AuxFunc[T, A]) bool {
	for j := range pattern {
		if aux(window[j]) != aux(pattern[j]) {
			return false
		}
	}

	return true
}
