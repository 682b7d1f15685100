package enum

import (
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, pattern string) *syntax.Regexp {
	t.Helper()
	re, err := syntax.Parse(pattern, syntax.Perl)
	require.NoError(t, err, "parse %q", pattern)
	return re.Simplify()
}

// enumerate compiles pattern and drains the whole sequence as strings.
// maxLen < 0 means no length limit; only call this on finite expansions.
func enumerate(t *testing.T, pattern string, maxLen int) []string {
	t.Helper()
	seq := Compile(mustParse(t, pattern), maxLen)()
	var out []string
	for {
		c, ok := seq()
		if !ok {
			return out
		}
		out = append(out, string(c))
	}
}

func TestCompileLiteral(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"single char", "a", []string{"a"}},
		{"word", "hunter2", []string{"hunter2"}},
		{"multibyte", "héllo", []string{"héllo"}},
		{"escaped meta", `a\.b`, []string{"a.b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enumerate(t, tt.pattern, -1))
		})
	}
}

func TestCompileCharClass(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"two chars", "[ab]", []string{"a", "b"}},
		{"range", "[0-4]", []string{"0", "1", "2", "3", "4"}},
		{"multiple ranges in order", "[c-da-b]", []string{"a", "b", "c", "d"}},
		{"digit class", `[\d]`, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enumerate(t, tt.pattern, -1))
		})
	}
}

func TestCompileCharClassEncodedWidth(t *testing.T) {
	// U+00E0..U+00E2 encode as two bytes each.
	seq := Compile(mustParse(t, "[à-â]"), -1)()
	var widths []int
	for {
		c, ok := seq()
		if !ok {
			break
		}
		widths = append(widths, len(c))
	}
	assert.Equal(t, []int{2, 2, 2}, widths)
}

func TestCompileAnyChar(t *testing.T) {
	// Enumeration of `.` starts from NUL and skips the newline.
	seq := Compile(mustParse(t, "."), -1)()
	var first []string
	for i := 0; i < 3; i++ {
		c, ok := seq()
		require.True(t, ok)
		first = append(first, string(c))
	}
	assert.Equal(t, []string{"\x00", "\x01", "\x02"}, first)
}

func TestCompileAlternation(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"grouped branches", "(ab|cd)", []string{"ab", "cd"}},
		// Multi-rune branches: the parser folds single-rune branches like
		// z|a|m into a sorted char class, which would hide branch order.
		{"declaration order", "zz|aa|mm", []string{"zz", "aa", "mm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enumerate(t, tt.pattern, -1))
		})
	}

	t.Run("duplicates across branches kept", func(t *testing.T) {
		// The parser factors duplicate branches out of pattern text, so
		// build the tree by hand.
		lit := mustParse(t, "a")
		re := &syntax.Regexp{Op: syntax.OpAlternate, Sub: []*syntax.Regexp{lit, lit}}
		var got []string
		seq := Compile(re, -1)()
		for {
			c, ok := seq()
			if !ok {
				break
			}
			got = append(got, string(c))
		}
		assert.Equal(t, []string{"a", "a"}, got)
	})
}

func TestCompileRepetition(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		maxLen  int
		want    []string
	}{
		{"bounded range", "a{2,3}", -1, []string{"aa", "aaa"}},
		{"exact count", "a{2}", -1, []string{"aa"}},
		{"optional", "ab?", -1, []string{"a", "ab"}},
		{"star pruned by max length", "a*", 2, []string{"", "a", "aa"}},
		{"plus pruned by max length", "a+", 3, []string{"a", "aa", "aaa"}},
		{"min already over limit", "a{3,5}", 2, nil},
		{"class repeated", "[ab]{2}", -1, []string{"aa", "ba", "ab", "bb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enumerate(t, tt.pattern, tt.maxLen))
		})
	}
}

func TestCompileConcat(t *testing.T) {
	// Dimension 0 is the first part and cycles fastest.
	want := []string{"ax", "bx", "ay", "by"}
	assert.Equal(t, want, enumerate(t, "[ab][xy]", -1))
}

func TestCompileConcatEveryPairOnce(t *testing.T) {
	got := enumerate(t, "[abc][xyz]", -1)
	assert.Len(t, got, 9)
	seen := make(map[string]int)
	for _, c := range got {
		seen[c]++
	}
	for _, first := range []string{"a", "b", "c"} {
		for _, second := range []string{"x", "y", "z"} {
			assert.Equal(t, 1, seen[first+second], "combination %s%s", first, second)
		}
	}
}

func TestCompileStarStarScenario(t *testing.T) {
	want := []string{
		"", "a", "aa", "aaa", "aaaa", "aaaaa",
		"b", "ab", "aab", "aaab", "aaaab",
		"bb", "abb", "aabb", "aaabb",
		"bbb", "abbb", "aabbb",
		"bbbb", "abbbb",
		"bbbbb",
	}
	assert.Equal(t, want, enumerate(t, "a*b*", 5))
}

func TestCompileEmptyAndLookaround(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"begin text", `^`},
		{"end text", `$`},
		{"word boundary", `\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Zero-width assertions are approximated as always satisfied.
			assert.Equal(t, []string{""}, enumerate(t, tt.pattern, -1))
		})
	}

	t.Run("anchors around literal", func(t *testing.T) {
		assert.Equal(t, []string{"ab"}, enumerate(t, `^ab$`, -1))
	})
}

func TestCompileCaptureTransparent(t *testing.T) {
	assert.Equal(t, enumerate(t, "a[xy]b", -1), enumerate(t, "a([xy])b", -1))
}

func TestCompileFoldCase(t *testing.T) {
	assert.Equal(t, []string{"AB", "aB", "Ab", "ab"}, enumerate(t, "(?i)ab", -1))
}

func TestCompileNoMatchPropagates(t *testing.T) {
	noMatch := &syntax.Regexp{Op: syntax.OpNoMatch}
	lit := mustParse(t, "a")

	t.Run("alone", func(t *testing.T) {
		_, ok := Compile(noMatch, -1)()()
		assert.False(t, ok)
	})

	t.Run("empties enclosing concat", func(t *testing.T) {
		re := &syntax.Regexp{Op: syntax.OpConcat, Sub: []*syntax.Regexp{lit, noMatch}}
		_, ok := Compile(re, -1)()()
		assert.False(t, ok)
	})

	t.Run("repetition keeps the zero-count candidate", func(t *testing.T) {
		re := &syntax.Regexp{Op: syntax.OpRepeat, Min: 0, Max: 2, Sub: []*syntax.Regexp{noMatch}}
		got := Collect(Compile(re, -1)())
		require.Len(t, got, 1)
		assert.Empty(t, got[0])
	})
}

func TestCompileRestartDeterminism(t *testing.T) {
	re := mustParse(t, "(a|b)[0-2]c?")

	f := Compile(re, 4)
	first := Collect(f())
	second := Collect(f())
	assert.Equal(t, first, second, "same factory, fresh instance")

	third := Collect(Compile(mustParse(t, "(a|b)[0-2]c?"), 4)())
	assert.Equal(t, first, third, "independent compilations")
}

func TestCompileMaxLengthFilter(t *testing.T) {
	// Concat does not prune internally; the boundary filter drops the
	// over-length combinations.
	got := enumerate(t, "(a|bb)(c|dd)", 2)
	assert.Equal(t, []string{"ac"}, got)
}

func TestCompileCandidatesAreOwned(t *testing.T) {
	f := Compile(mustParse(t, "ab"), -1)

	c, ok := f()()
	require.True(t, ok)
	c[0] = 'X'

	c2, ok := f()()
	require.True(t, ok)
	assert.Equal(t, "ab", string(c2))
}

func TestUnbounded(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"literal", "abc", false},
		{"star", "a*", true},
		{"plus", "a+", true},
		{"open repeat", "a{3,}", true},
		{"closed repeat", "a{3,7}", false},
		{"quest", "a?", false},
		{"nested in group", "(a+)", true},
		{"nested in concat", "abc*d", true},
		{"nested in alternation", "a|b*", true},
		{"bounded everything", "(ab|cd){1,3}[xyz]?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unbounded(mustParse(t, tt.pattern)))
		})
	}
}

func BenchmarkCompileClassRepeat(b *testing.B) {
	re, err := syntax.Parse("[a-z]{3}", syntax.Perl)
	if err != nil {
		b.Fatal(err)
	}
	re = re.Simplify()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq := Compile(re, -1)()
		n := 0
		for {
			_, ok := seq()
			if !ok {
				break
			}
			n++
		}
		if n != 26*26*26 {
			b.Fatalf("expected %d candidates, got %d", 26*26*26, n)
		}
	}
}

func BenchmarkCompileStarPruned(b *testing.B) {
	re, err := syntax.Parse("[ab]*", syntax.Perl)
	if err != nil {
		b.Fatal(err)
	}
	re = re.Simplify()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq := Compile(re, 10)()
		for {
			_, ok := seq()
			if !ok {
				break
			}
		}
	}
}
