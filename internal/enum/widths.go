package enum

import (
	"regexp/syntax"
	"unicode/utf8"
)

// minWidth returns the smallest byte length among re's candidates. The second
// return value is false when re has no candidates at all (an empty class, or
// a concat containing one). The repeat loop uses this to cut off repeat
// counts whose every tuple must exceed the length limit, before generating
// any of them.
func minWidth(re *syntax.Regexp) (int, bool) {
	switch re.Op {
	case syntax.OpNoMatch:
		return 0, false

	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return 0, true

	case syntax.OpLiteral:
		n := 0
		for _, r := range re.Rune {
			if re.Flags&syntax.FoldCase != 0 {
				// The narrowest orbit member is the smallest rune.
				n += utf8.RuneLen(foldOrbit(r)[0])
			} else {
				n += utf8.RuneLen(r)
			}
		}
		return n, true

	case syntax.OpCharClass:
		if len(re.Rune) == 0 {
			return 0, false
		}
		// Ranges are sorted, and UTF-8 width is monotonic in rune value.
		return utf8.RuneLen(re.Rune[0]), true

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return 1, true

	case syntax.OpCapture:
		return minWidth(re.Sub[0])

	case syntax.OpStar, syntax.OpQuest:
		return 0, true

	case syntax.OpPlus:
		return minWidth(re.Sub[0])

	case syntax.OpRepeat:
		if re.Min == 0 {
			return 0, true
		}
		w, ok := minWidth(re.Sub[0])
		if !ok {
			return 0, false
		}
		return re.Min * w, true

	case syntax.OpConcat:
		n := 0
		for _, sub := range re.Sub {
			w, ok := minWidth(sub)
			if !ok {
				return 0, false
			}
			n += w
		}
		return n, true

	case syntax.OpAlternate:
		best, any := 0, false
		for _, sub := range re.Sub {
			w, ok := minWidth(sub)
			if !ok {
				continue
			}
			if !any || w < best {
				best, any = w, true
			}
		}
		return best, any
	}

	return 0, false
}
