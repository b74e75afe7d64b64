package variations_test

import (
	"testing"

	"github.com/katalvlaran/seqvar/variations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairs builds a Pair slice from parallel primary/aux values; aux values
// are applied cyclically so uniform-duration fixtures stay short.
func pairs(primaries []int, auxes ...float64) []variations.Pair[int, float64] {
	out := make([]variations.Pair[int, float64], len(primaries))
	for i, p := range primaries {
		out[i] = variations.Pair[int, float64]{Primary: p, Aux: auxes[i%len(auxes)]}
	}

	return out
}

// TestLocalAuxChanges_Basic verifies a single changed duration is
// reported with its pattern index and new value.
func TestLocalAuxChanges_Basic(t *testing.T) {
	pattern := pairs([]int{1, 2, 3}, 1.0)
	sequence := []variations.Pair[int, float64]{
		{Primary: 1, Aux: 1.0},
		{Primary: 2, Aux: 0.5}, // changed
		{Primary: 3, Aux: 1.0},
		{Primary: 1, Aux: 1.0},
	}

	res := variations.LocalAuxChanges(pattern, sequence,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64],
		variations.WithMaxChanges(1))

	require.Len(t, res, 1)
	assert.Equal(t, 0, res[0].Position)
	assert.Equal(t, []variations.AuxEdit[float64]{
		{Index: 1, NewAux: variations.SomeAux(0.5)},
	}, res[0].Changed)
}

// TestLocalAuxChanges_ExactWindowNotReported verifies that a window with
// zero auxiliary changes is not a variation.
func TestLocalAuxChanges_ExactWindowNotReported(t *testing.T) {
	pattern := pairs([]int{1, 2, 3}, 1.0)

	res := variations.LocalAuxChanges(pattern, pattern,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64])
	assert.Empty(t, res, "at least one change is required")
}

// TestLocalAuxChanges_CapEnforced verifies that windows exceeding
// maxChanges are rejected.
func TestLocalAuxChanges_CapEnforced(t *testing.T) {
	pattern := pairs([]int{1, 2, 3}, 1.0)
	sequence := pairs([]int{1, 2, 3}, 0.5, 0.5, 1.0) // two changed durations

	res := variations.LocalAuxChanges(pattern, sequence,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64],
		variations.WithMaxChanges(1))
	assert.Empty(t, res)

	res = variations.LocalAuxChanges(pattern, sequence,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64],
		variations.WithMaxChanges(2))
	require.Len(t, res, 1)
	assert.Len(t, res[0].Changed, 2)
}

// TestLocalAuxChanges_DefaultCap verifies the derived default
// max(1, L/4): an 8-item pattern tolerates two changes but not three.
func TestLocalAuxChanges_DefaultCap(t *testing.T) {
	primaries := []int{1, 2, 3, 4, 5, 6, 7, 8}
	pattern := pairs(primaries, 1.0)

	two := pairs(primaries, 1.0, 1.0, 0.5, 1.0, 1.0, 0.5, 1.0, 1.0)
	res := variations.LocalAuxChanges(pattern, two,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64])
	require.Len(t, res, 1, "two changes fit the default cap of 8/4")
	assert.Equal(t, []int{2, 5}, changedAuxIndices(res[0]))

	three := pairs(primaries, 1.0, 0.5, 0.5, 1.0, 1.0, 0.5, 1.0, 1.0)
	res = variations.LocalAuxChanges(pattern, three,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64])
	assert.Empty(t, res, "three changes exceed the default cap")
}

// changedAuxIndices projects the changed indices of an AuxChange.
func changedAuxIndices(c variations.AuxChange[float64]) []int {
	out := make([]int, len(c.Changed))
	for i, e := range c.Changed {
		out[i] = e.Index
	}

	return out
}

// TestLocalAuxChanges_PrimaryMismatchRejects verifies that any primary
// deviation disqualifies the window regardless of aux content.
func TestLocalAuxChanges_PrimaryMismatchRejects(t *testing.T) {
	pattern := pairs([]int{1, 2, 3}, 1.0)
	sequence := pairs([]int{1, 9, 3}, 1.0, 0.5, 1.0)

	res := variations.LocalAuxChanges(pattern, sequence,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64])
	assert.Empty(t, res)
}

// TestLocalValueChanges_Basic verifies a single changed primary is
// reported with its pattern index and new value.
func TestLocalValueChanges_Basic(t *testing.T) {
	pattern := pairs([]int{1, 2, 3}, 1.0)
	sequence := []variations.Pair[int, float64]{
		{Primary: 1, Aux: 1.0},
		{Primary: 2, Aux: 1.0},
		{Primary: 4, Aux: 1.0}, // changed primary
		{Primary: 0, Aux: 1.0},
	}

	res := variations.LocalValueChanges(pattern, sequence,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64],
		variations.WithMaxChanges(1))

	require.Len(t, res, 1)
	assert.Equal(t, 0, res[0].Position)
	assert.Equal(t, []variations.ValueEdit[int]{{Index: 2, NewValue: 4}}, res[0].Changed)
}

// TestLocalValueChanges_AuxGate verifies the auxiliary requirement and
// its WithIgnoreAux escape hatch.
func TestLocalValueChanges_AuxGate(t *testing.T) {
	pattern := pairs([]int{1, 2}, 1.0)
	sequence := []variations.Pair[int, float64]{
		{Primary: 1, Aux: 2.0}, // changed duration disqualifies by default
		{Primary: 5, Aux: 1.0},
	}

	strict := variations.LocalValueChanges(pattern, sequence,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64])
	assert.Empty(t, strict)

	loose := variations.LocalValueChanges(pattern, sequence,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64],
		variations.WithIgnoreAux())
	require.Len(t, loose, 1)
	assert.Equal(t, []variations.ValueEdit[int]{{Index: 1, NewValue: 5}}, loose[0].Changed)
}

// TestLocalValueChanges_ExactWindowNotReported verifies that an exact
// repetition is not a value-change variation.
func TestLocalValueChanges_ExactWindowNotReported(t *testing.T) {
	pattern := pairs([]int{1, 2, 3}, 1.0)

	res := variations.LocalValueChanges(pattern, pattern,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64])
	assert.Empty(t, res)
}

// TestLocalDetectors_EmptyInputs verifies degenerate inputs yield empty
// results, never panics.
func TestLocalDetectors_EmptyInputs(t *testing.T) {
	pattern := pairs([]int{1}, 1.0)

	assert.Empty(t, variations.LocalAuxChanges(nil, pattern,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64]))
	assert.Empty(t, variations.LocalValueChanges(pattern, nil,
		variations.PairPrimary[int, float64], variations.PairAux[int, float64]))
}
