package enum

import (
	"regexp/syntax"
	"unicode"
	"unicode/utf8"
)

// Compile builds a restartable lazy sequence of every byte string re can
// match, in a deterministic order. The tree is read-only to the engine and
// must outlive every sequence derived from it.
//
// maxLen limits candidate byte length; a negative value means no limit. The
// limit both filters emitted candidates and prunes repetition expansion, which
// is what keeps unbounded repetitions tractable. Zero-width assertions are
// approximated as always satisfied and contribute the empty string.
func Compile(re *syntax.Regexp, maxLen int) Factory[[]byte] {
	f := compile(re, maxLen)
	if maxLen < 0 {
		return f
	}
	// Concat and Alternation do not prune internally; drop over-length
	// candidates at the boundary.
	return Filter(f, func(c []byte) bool { return len(c) <= maxLen })
}

func compile(re *syntax.Regexp, maxLen int) Factory[[]byte] {
	switch re.Op {
	case syntax.OpNoMatch:
		return None[[]byte]()

	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return emptyCandidate()

	case syntax.OpLiteral:
		if re.Flags&syntax.FoldCase != 0 {
			// Case-insensitive literal: one small class per rune, covering
			// its simple case-folding orbit.
			parts := make([]Factory[[]byte], len(re.Rune))
			for i, r := range re.Rune {
				parts[i] = classFactory(foldOrbit(r))
			}
			return joinProduct(parts)
		}
		return literalFactory(re.Rune)

	case syntax.OpCharClass:
		return classFactory(re.Rune)

	case syntax.OpAnyChar:
		return classFactory(anyRunePairs)

	case syntax.OpAnyCharNotNL:
		return classFactory(anyRuneNotNLPairs)

	case syntax.OpCapture:
		return compile(re.Sub[0], maxLen)

	case syntax.OpStar:
		return repetition(re.Sub[0], 0, -1, maxLen)

	case syntax.OpPlus:
		return repetition(re.Sub[0], 1, -1, maxLen)

	case syntax.OpQuest:
		return repetition(re.Sub[0], 0, 1, maxLen)

	case syntax.OpRepeat:
		return repetition(re.Sub[0], re.Min, re.Max, maxLen)

	case syntax.OpConcat:
		parts := make([]Factory[[]byte], len(re.Sub))
		for i, sub := range re.Sub {
			parts[i] = compile(sub, maxLen)
		}
		return joinProduct(parts)

	case syntax.OpAlternate:
		branches := make([]Factory[[]byte], len(re.Sub))
		for i, sub := range re.Sub {
			branches[i] = compile(sub, maxLen)
		}
		return Chain(branches...)
	}

	// Simplify leaves no other ops behind.
	return None[[]byte]()
}

// Scalar values minus the surrogate range.
var anyRunePairs = []rune{0, 0xD7FF, 0xE000, unicode.MaxRune}

var anyRuneNotNLPairs = []rune{0, '\n' - 1, '\n' + 1, 0xD7FF, 0xE000, unicode.MaxRune}

// emptyCandidate yields a single zero-length candidate.
func emptyCandidate() Factory[[]byte] {
	return func() Seq[[]byte] {
		emitted := false
		return func() ([]byte, bool) {
			if emitted {
				return nil, false
			}
			emitted = true
			return []byte{}, true
		}
	}
}

// literalFactory yields a single candidate holding the UTF-8 encoding of
// runes. Each pull hands out a fresh copy so consumers own what they receive.
func literalFactory(runes []rune) Factory[[]byte] {
	var lit []byte
	for _, r := range runes {
		lit = utf8.AppendRune(lit, r)
	}
	if lit == nil {
		lit = []byte{}
	}
	return func() Seq[[]byte] {
		emitted := false
		return func() ([]byte, bool) {
			if emitted {
				return nil, false
			}
			emitted = true
			return append([]byte(nil), lit...), true
		}
	}
}

// classFactory yields one candidate per code point covered by the class,
// walking ranges in order and values within each range in ascending order.
// pairs is the regexp/syntax layout: [lo0, hi0, lo1, hi1, ...].
func classFactory(pairs []rune) Factory[[]byte] {
	return func() Seq[[]byte] {
		ri := 0
		var cur rune
		if len(pairs) > 0 {
			cur = pairs[0]
		}
		return func() ([]byte, bool) {
			for ri < len(pairs) {
				if cur > pairs[ri+1] {
					ri += 2
					if ri < len(pairs) {
						cur = pairs[ri]
					}
					continue
				}
				r := cur
				cur++
				return utf8.AppendRune(nil, r), true
			}
			return nil, false
		}
	}
}

// foldOrbit returns the simple case-folding orbit of r as single-rune class
// pairs in ascending order.
func foldOrbit(r rune) []rune {
	orbit := []rune{r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	// The orbit is a small cycle; sort it so enumeration order is ascending.
	for i := 1; i < len(orbit); i++ {
		for j := i; j > 0 && orbit[j] < orbit[j-1]; j-- {
			orbit[j], orbit[j-1] = orbit[j-1], orbit[j]
		}
	}
	pairs := make([]rune, 0, 2*len(orbit))
	for _, o := range orbit {
		pairs = append(pairs, o, o)
	}
	return pairs
}

// joinProduct takes the Cartesian product of parts (dimension 0 cycling
// fastest) and concatenates each tuple's bytes in order.
func joinProduct(parts []Factory[[]byte]) Factory[[]byte] {
	prod := Product(parts)
	return func() Seq[[]byte] {
		seq := prod()
		return func() ([]byte, bool) {
			tuple, ok := seq()
			if !ok {
				return nil, false
			}
			return flatten(tuple), true
		}
	}
}

func flatten(tuple [][]byte) []byte {
	n := 0
	for _, part := range tuple {
		n += len(part)
	}
	out := make([]byte, 0, n)
	for _, part := range tuple {
		out = append(out, part...)
	}
	return out
}

// repetition enumerates sub repeated r times for every r from min up through
// max (max < 0 means unbounded), flattening across increasing r. Each repeat
// level is the r-fold self product of sub's compiled sequence, reusing one
// factory for every dimension.
//
// When maxLen is set, the loop stops at the first r whose every tuple must
// already exceed it (r times sub's minimal width). Candidate lengths only
// grow with r, so a level that emits nothing also terminates the loop; that
// backstop covers empty sub-patterns and sub-patterns whose minimal width is
// zero.
func repetition(sub *syntax.Regexp, min, max, maxLen int) Factory[[]byte] {
	subFactory := compile(sub, maxLen)
	subMin, _ := minWidth(sub)
	return func() Seq[[]byte] {
		r := min
		var level Seq[[][]byte]
		levelEmitted := false
		done := false
		return func() ([]byte, bool) {
			for !done {
				if level == nil {
					if max >= 0 && r > max {
						done = true
						break
					}
					if maxLen >= 0 && subMin > 0 && r*subMin > maxLen {
						done = true
						break
					}
					dims := make([]Factory[[]byte], r)
					for i := range dims {
						dims[i] = subFactory
					}
					level = Product(dims)()
					levelEmitted = false
				}
				for {
					tuple, ok := level()
					if !ok {
						break
					}
					cand := flatten(tuple)
					if maxLen >= 0 && len(cand) > maxLen {
						continue
					}
					levelEmitted = true
					return cand, true
				}
				level = nil
				if !levelEmitted {
					done = true
					break
				}
				r++
			}
			return nil, false
		}
	}
}
