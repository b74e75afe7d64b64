// Package variations - options and match records shared by all detectors.
//
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented derived defaults,
//   - the Number constraint for offset arithmetic,
//   - one match-record struct per detector that reports more than a
//     bare start index.
//
// Design principles:
//   - Deterministic: no global state, no randomness, stable output order.
//   - Total: invalid knob values fall back to derived defaults instead of
//     erroring; every detector is a total function over its inputs.
//   - Index discipline: Position is always a 0-based start index into the
//     sequence; every other index field is relative to the pattern or to
//     the local window, never absolute.
package variations

// Number is the constraint for primary values used in offset arithmetic
// (Transposition, Inversion). Any built-in integer or float kind works.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Option configures a detector via functional arguments.
type Option func(*Options)

// Options holds the tunable knobs shared by the detectors. Zero values
// select the documented defaults; construct via DefaultOptions or let a
// detector gather its ...Option arguments.
type Options struct {
	// ignoreAux drops the auxiliary-equality requirement in
	// Transposition, Retrograde, Inversion and LocalValueChanges.
	ignoreAux bool

	// maxChanges caps the number of differing indices accepted by
	// LocalAuxChanges / LocalValueChanges. <= 0 means max(1, L/4).
	maxChanges int

	// minLength is the shortest window Fragmentation considers.
	// <= 0 means L - L/4.
	minLength int

	// maxExtra caps the insertions Extension tolerates.
	// <= 0 means max(1, L/4).
	maxExtra int
}

// DefaultOptions returns an Options with every knob on its derived
// default: auxiliary values must match, and the numeric caps are taken
// from the pattern length at call time.
func DefaultOptions() Options {
	return Options{
		ignoreAux:  false,
		maxChanges: 0,
		minLength:  0,
		maxExtra:   0,
	}
}

// WithIgnoreAux disables the auxiliary-equality requirement. Detectors
// that take an AuxFunc then compare primary values only.
func WithIgnoreAux() Option {
	return func(o *Options) { o.ignoreAux = true }
}

// WithMaxChanges caps the differing indices tolerated by the local-change
// detectors.
//
//	n > 0:  accept windows with 1..n differing indices
//	n <= 0: derived default max(1, L/4)
func WithMaxChanges(n int) Option {
	return func(o *Options) { o.maxChanges = n }
}

// WithMinLength sets the shortest window length Fragmentation considers.
//
//	n > 0:  windows of length n..L-1
//	n <= 0: derived default L - L/4
func WithMinLength(n int) Option {
	return func(o *Options) { o.minLength = n }
}

// WithMaxExtra caps the number of inserted items Extension tolerates.
//
//	n > 0:  windows of length L+1..L+n
//	n <= 0: derived default max(1, L/4)
func WithMaxExtra(n int) Option {
	return func(o *Options) { o.maxExtra = n }
}

// gatherOptions folds a variadic option list over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// maxChangesFor resolves the effective change cap for pattern length l.
func (o Options) maxChangesFor(l int) int {
	if o.maxChanges > 0 {
		return o.maxChanges
	}

	return max(1, l/4)
}

// minLengthFor resolves the effective minimum fragment length for
// pattern length l.
func (o Options) minLengthFor(l int) int {
	if o.minLength > 0 {
		return o.minLength
	}

	return l - l/4
}

// maxExtraFor resolves the effective insertion cap for pattern length l.
func (o Options) maxExtraFor(l int) int {
	if o.maxExtra > 0 {
		return o.maxExtra
	}

	return max(1, l/4)
}

// Shift reports one transposed occurrence of the pattern.
type Shift[V Number] struct {
	// Position is the window start index in the sequence.
	Position int

	// Offset is the constant additive shift; never zero (an exact repeat
	// is not a transposition).
	Offset V
}

// AuxEdit records one auxiliary value that differs from the pattern.
type AuxEdit[A comparable] struct {
	// Index is the 0-based index within the pattern.
	Index int

	// NewAux is the auxiliary value found in the window at Index.
	NewAux Aux[A]
}

// AuxChange reports a window whose primaries repeat the pattern exactly
// while a bounded number of auxiliary values differ.
type AuxChange[A comparable] struct {
	Position int

	// Changed lists the differing indices in ascending order.
	Changed []AuxEdit[A]
}

// ValueEdit records one primary value that differs from the pattern.
type ValueEdit[P comparable] struct {
	// Index is the 0-based index within the pattern.
	Index int

	// NewValue is the primary value found in the window at Index.
	NewValue P
}

// ValueChange reports a window whose auxiliaries repeat the pattern
// while a bounded number of primary values differ.
type ValueChange[P comparable] struct {
	Position int

	// Changed lists the differing indices in ascending order.
	Changed []ValueEdit[P]
}

// Fragment reports a shorter window obtained from the pattern by
// deleting some elements while preserving order.
type Fragment struct {
	Position int

	// Removed lists the deleted pattern indices in ascending order.
	// Deleting them from the pattern reproduces the window exactly.
	Removed []int
}

// Insertion records one extra item found inside an extended window.
type Insertion[T comparable] struct {
	// Index is the 0-based index within the window (not the sequence).
	Index int

	// Value is the inserted item.
	Value T
}

// Extent reports a longer window that contains the full pattern as an
// ordered subsequence plus extra internal items.
type Extent[T comparable] struct {
	Position int

	// Added lists the inserted window slots in ascending index order.
	// Deleting them from the window reproduces the pattern exactly.
	Added []Insertion[T]
}
