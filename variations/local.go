package variations

// Perturbation detectors.
//
// Description:
//
//	LocalAuxChanges and LocalValueChanges are mirror images of each
//	other: one component must repeat the pattern exactly while the other
//	may differ on a bounded number of indices (at least one, at most
//	maxChanges). Typical reading: same melody with a few altered
//	durations, or same rhythm with a few altered pitches.
//
// Complexity:
//
//	Time   = O(N·L) per detector
//	Memory = O(1) beyond the result slice

// LocalAuxChanges finds windows whose primary values repeat the pattern
// exactly while the auxiliary values differ on 1..maxChanges indices.
//
// maxChanges comes from WithMaxChanges; values <= 0 select the derived
// default max(1, L/4). Changed entries are in ascending index order,
// each carrying the window's auxiliary value at that index.
func LocalAuxChanges[T any, P comparable, A comparable](
	pattern, sequence []T,
	primary PrimaryFunc[T, P],
	aux AuxFunc[T, A],
	opts ...Option,
) []AuxChange[A] {
	l, n := len(pattern), len(sequence)
	if l == 0 || n < l {
		return nil
	}
	maxChanges := gatherOptions(opts...).maxChangesFor(l)

	var results []AuxChange[A]
	for i := 0; i+l <= n; i++ {
		window := sequence[i : i+l]

		// 1) Primary values must repeat the pattern exactly.
		ok := true
		for j := 0; j < l; j++ {
			if primary(window[j]) != primary(pattern[j]) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		// 2) Collect the differing auxiliary indices.
		var changed []AuxEdit[A]
		for j := 0; j < l; j++ {
			if a := aux(window[j]); a != aux(pattern[j]) {
				changed = append(changed, AuxEdit[A]{Index: j, NewAux: a})
			}
		}

		if len(changed) > 0 && len(changed) <= maxChanges {
			results = append(results, AuxChange[A]{Position: i, Changed: changed})
		}
	}

	return results
}

// LocalValueChanges finds windows whose auxiliary values repeat the
// pattern exactly (unless WithIgnoreAux is given) while the primary
// values differ on 1..maxChanges indices.
//
// maxChanges comes from WithMaxChanges; values <= 0 select the derived
// default max(1, L/4). Changed entries are in ascending index order,
// each carrying the window's primary value at that index.
func LocalValueChanges[T any, P comparable, A comparable](
	pattern, sequence []T,
	primary PrimaryFunc[T, P],
	aux AuxFunc[T, A],
	opts ...Option,
) []ValueChange[P] {
	l, n := len(pattern), len(sequence)
	if l == 0 || n < l {
		return nil
	}
	o := gatherOptions(opts...)
	maxChanges := o.maxChangesFor(l)

	var results []ValueChange[P]
	for i := 0; i+l <= n; i++ {
		window := sequence[i : i+l]

		// 1) Auxiliary values must repeat the pattern exactly.
		if !o.ignoreAux && !auxEqual(pattern, window, aux) {
			continue
		}

		// 2) Collect the differing primary indices.
		var changed []ValueEdit[P]
		for j := 0; j < l; j++ {
			if v := primary(window[j]); v != primary(pattern[j]) {
				changed = append(changed, ValueEdit[P]{Index: j, NewValue: v})
			}
		}

		if len(changed) > 0 && len(changed) <= maxChanges {
			results = append(results, ValueChange[P]{Position: i, Changed: changed})
		}
	}

	return results
}
