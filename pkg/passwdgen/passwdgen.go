// Package passwdgen enumerates every string a regular-expression pattern can
// match, for generating candidate wordlists from a compact pattern.
package passwdgen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp/syntax"

	"github.com/Maurdekye/passwd-gen/internal/enum"
)

// NoMaxLength disables the candidate length limit.
const NoMaxLength = -1

// ErrUnbounded is returned by Compile for patterns that can match infinitely
// many strings when neither a maximum length nor a result limit is set.
// Enumerating such a pattern would never terminate.
var ErrUnbounded = errors.New("unbounded pattern requires a max length or a result limit")

// Options configures pattern enumeration.
type Options struct {
	// Pattern is the regular expression whose matches are enumerated.
	Pattern string

	// MinLength drops words shorter than this many bytes. It only affects
	// Words and WriteWords; Candidates is the raw engine output.
	MinLength int

	// MaxLength drops candidates longer than this many bytes and prunes
	// repetition expansion while enumerating. Use NoMaxLength (or any
	// negative value) for no limit.
	MaxLength int

	// Limit caps how many words Words and WriteWords produce. Zero or
	// negative means no cap.
	Limit int
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.MinLength < 0 {
		return fmt.Errorf("min length cannot be negative")
	}
	return nil
}

// Seq is a pull-based sequence of candidate byte strings. Each call produces
// the next candidate; the second return value is false once the sequence is
// exhausted. Each returned slice is owned by the caller.
type Seq func() ([]byte, bool)

// WordSeq is a pull-based sequence of display strings.
type WordSeq func() (string, bool)

// Generator enumerates the matches of one compiled pattern. It is restartable:
// every call to Candidates or Words starts a fresh walk in the same order.
type Generator struct {
	re      *syntax.Regexp
	opts    Options
	factory enum.Factory[[]byte]
}

// Compile parses the pattern and prepares a Generator for it.
//
// If the pattern is unbounded and the options carry neither a max length nor
// a result limit, Compile fails with an error wrapping ErrUnbounded before
// any enumeration happens. An empty result set is not an error; it simply
// yields a sequence that is exhausted immediately.
func Compile(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	re, err := syntax.Parse(opts.Pattern, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pattern: %w", err)
	}
	re = re.Simplify()

	if enum.Unbounded(re) && opts.MaxLength < 0 && opts.Limit <= 0 {
		return nil, fmt.Errorf("pattern %q: %w", opts.Pattern, ErrUnbounded)
	}

	return &Generator{
		re:      re,
		opts:    opts,
		factory: enum.Compile(re, opts.MaxLength),
	}, nil
}

// Unbounded reports whether the pattern can match infinitely many strings.
func (g *Generator) Unbounded() bool {
	return enum.Unbounded(g.re)
}

// Candidates returns a fresh sequence of raw candidates: every match of the
// pattern no longer than MaxLength, with no minimum length or count cap
// applied.
func (g *Generator) Candidates() Seq {
	return Seq(g.factory())
}

// Words returns a fresh sequence of display strings with MinLength and Limit
// applied. Candidates are valid UTF-8 by construction, so the conversion is
// a plain string cast.
func (g *Generator) Words() WordSeq {
	seq := g.factory()
	remaining := g.opts.Limit
	return func() (string, bool) {
		if g.opts.Limit > 0 && remaining <= 0 {
			return "", false
		}
		for {
			c, ok := seq()
			if !ok {
				return "", false
			}
			if len(c) < g.opts.MinLength {
				continue
			}
			if g.opts.Limit > 0 {
				remaining--
			}
			return string(c), true
		}
	}
}

// All drains Words into a slice. The Compile guard ensures this terminates
// for unbounded patterns only when a limit is configured; with a very large
// bounded expansion it is still on the caller to know the size is sane.
func (g *Generator) All() []string {
	words := g.Words()
	var out []string
	for {
		w, ok := words()
		if !ok {
			return out
		}
		out = append(out, w)
	}
}

// WriteWords writes every word to w, one per line, and returns how many were
// written.
func (g *Generator) WriteWords(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	words := g.Words()
	n := 0
	for {
		word, ok := words()
		if !ok {
			break
		}
		if _, err := bw.WriteString(word); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}
