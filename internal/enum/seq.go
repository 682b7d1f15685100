// Package enum implements lazy enumeration of every string a parsed regular
// expression can match.
//
// The engine is built from two pieces: restartable lazy sequences (Seq and
// Factory) and a lazy multiway Cartesian product over them (Product). Compile
// walks a regexp/syntax tree and assembles those pieces into a single lazy
// sequence of candidate byte strings. Nothing here performs I/O; the consumer
// pulls one candidate at a time and can simply stop pulling to cancel.
package enum

// Seq is a pull-based lazy sequence. Each call produces the next element;
// the second return value is false once the sequence is exhausted. A Seq may
// be infinite. A Seq instance has a single cursor and is not safe for
// concurrent callers.
type Seq[T any] func() (T, bool)

// Factory produces a fresh Seq on every call. Factories used by this package
// must be deterministic: every instance yields the same elements in the same
// order. Violating that is a caller error and is not detected.
type Factory[T any] func() Seq[T]

// None returns a factory for the empty sequence.
func None[T any]() Factory[T] {
	return func() Seq[T] {
		return func() (T, bool) {
			var zero T
			return zero, false
		}
	}
}

// One returns a factory for the single-element sequence yielding v.
func One[T any](v T) Factory[T] {
	return func() Seq[T] {
		emitted := false
		return func() (T, bool) {
			if emitted {
				var zero T
				return zero, false
			}
			emitted = true
			return v, true
		}
	}
}

// Chain returns a factory whose sequences yield every element of each input
// factory in order: all of factories[0], then all of factories[1], and so on.
func Chain[T any](factories ...Factory[T]) Factory[T] {
	return func() Seq[T] {
		i := 0
		var cur Seq[T]
		return func() (T, bool) {
			for {
				if cur == nil {
					if i >= len(factories) {
						var zero T
						return zero, false
					}
					cur = factories[i]()
					i++
				}
				if v, ok := cur(); ok {
					return v, true
				}
				cur = nil
			}
		}
	}
}

// Filter returns a factory whose sequences yield only the elements of f's
// sequences for which keep returns true.
func Filter[T any](f Factory[T], keep func(T) bool) Factory[T] {
	return func() Seq[T] {
		seq := f()
		return func() (T, bool) {
			for {
				v, ok := seq()
				if !ok {
					var zero T
					return zero, false
				}
				if keep(v) {
					return v, true
				}
			}
		}
	}
}

// Collect drains seq into a slice. It never returns for infinite sequences;
// callers are expected to know their sequence is finite.
func Collect[T any](seq Seq[T]) []T {
	var out []T
	for {
		v, ok := seq()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
