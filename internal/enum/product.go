package enum

// Product returns the lazy N-dimensional Cartesian product of the given
// sequence factories: every tuple choosing one element per dimension, in
// mixed-radix counting order where dimension 0 is least significant (cycles
// fastest) and dimension N-1 is most significant.
//
// The zero-dimension product contains exactly one tuple, the empty tuple. If
// any dimension's sequence is empty the whole product is empty. Live state is
// O(N) regardless of how many tuples the product contains, and a dimension
// that never exhausts simply never carries, so infinite dimensions are fine.
//
// Each emitted tuple is a fresh slice owned by the caller.
func Product[T any](factories []Factory[T]) Factory[[]T] {
	return func() Seq[[]T] {
		n := len(factories)
		seqs := make([]Seq[T], n)
		heads := make([]T, n)
		started := false
		done := false
		return func() ([]T, bool) {
			if done {
				return nil, false
			}
			if !started {
				started = true
				for i, f := range factories {
					seqs[i] = f()
					v, ok := seqs[i]()
					if !ok {
						done = true
						return nil, false
					}
					heads[i] = v
				}
			} else {
				// Odometer advance: bump dimension 0; on wrap, restart it
				// from its factory and carry into the next dimension. A
				// carry past the last dimension exhausts the product.
				i := 0
				for ; i < n; i++ {
					if v, ok := seqs[i](); ok {
						heads[i] = v
						break
					}
					seqs[i] = factories[i]()
					v, ok := seqs[i]()
					if !ok {
						// A dimension that was non-empty at init came back
						// empty after restart: non-deterministic factory.
						done = true
						return nil, false
					}
					heads[i] = v
				}
				if i == n {
					done = true
					return nil, false
				}
			}
			tuple := make([]T, n)
			copy(tuple, heads)
			return tuple, true
		}
	}
}
