// Package variations - extraction strategies.
//
// Items are opaque: detectors never look inside them directly. Instead
// the caller supplies two strategies, resolved once at call setup:
//
//   - PrimaryFunc — pulls the main comparable component (pitch, code, …)
//   - AuxFunc     — pulls the optional secondary component (duration, …)
//
// Two built-in variants cover the common shapes:
//
//   - composite items: Pair with PairPrimary / PairAux
//   - scalar items:    Identity / NoAux
//
// Absence of an auxiliary value is an explicit state of the Aux type,
// not a sentinel, so equality between extracted values is always plain ==.
package variations

// PrimaryFunc extracts the comparable primary value of an item.
type PrimaryFunc[T any, V comparable] func(T) V

// AuxFunc extracts the optional auxiliary value of an item.
type AuxFunc[T any, A comparable] func(T) Aux[A]

// Aux is an optional auxiliary value. The zero value is "absent".
// Two Aux values are equal iff both are absent or both are present with
// equal payloads, which is exactly what == yields.
type Aux[A comparable] struct {
	// Value is the auxiliary payload; meaningful only when Present.
	Value A

	// Present reports whether the item carries an auxiliary component.
	Present bool
}

// SomeAux wraps v as a present auxiliary value.
func SomeAux[A comparable](v A) Aux[A] {
	return Aux[A]{Value: v, Present: true}
}

// AbsentAux returns the explicit "no auxiliary value" marker.
func AbsentAux[A comparable]() Aux[A] {
	return Aux[A]{}
}

// Pair is the built-in composite item: a primary value plus an
// auxiliary component, e.g. (pitch, duration).
type Pair[V, A comparable] struct {
	Primary V
	Aux     A
}

// PairPrimary extracts the primary component of a Pair.
func PairPrimary[V, A comparable](p Pair[V, A]) V {
	return p.Primary
}

// PairAux extracts the auxiliary component of a Pair, always present.
func PairAux[V, A comparable](p Pair[V, A]) Aux[A] {
	return SomeAux(p.Aux)
}

// Identity is the scalar-item primary strategy: the item is its own
// primary value.
func Identity[V comparable](v V) V {
	return v
}

// NoAux is the scalar-item auxiliary strategy: scalar items carry no
// auxiliary component, so every comparison sees the same absent marker.
func NoAux[T any](T) Aux[struct{}] {
	return Aux[struct{}]{}
}
