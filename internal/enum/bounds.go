package enum

import "regexp/syntax"

// Unbounded reports whether re contains a repetition with no upper bound
// (`*`, `+`, or `{n,}`) reachable through captures, repetitions, concats, or
// alternations. Enumerating such a pattern never terminates on its own, so
// callers must impose a length or count limit before starting.
func Unbounded(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpStar, syntax.OpPlus:
		return true
	case syntax.OpRepeat:
		if re.Max == -1 {
			return true
		}
	}
	for _, sub := range re.Sub {
		if Unbounded(sub) {
			return true
		}
	}
	return false
}
