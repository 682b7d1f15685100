package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Maurdekye/passwd-gen/pkg/passwdgen"
)

var (
	minLength int
	maxLength int
	limit     int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "passwd-gen [pattern]",
	Short: "Enumerate every string a regex pattern can match",
	Long: `passwd-gen expands a regular-expression pattern into the full list of
strings it can match, one per line, for use as a candidate wordlist.

Unbounded patterns (containing *, + or {n,}) are rejected unless a maximum
length (-x) or a result limit (-c) bounds the enumeration.`,
	Example: `  passwd-gen 'pass(word)?[0-9]{2}'
  passwd-gen -x 8 '[a-c]*[0-9]'
  passwd-gen -c 1000 '(hunter|secret)[0-9]+'`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		gen, err := passwdgen.Compile(passwdgen.Options{
			Pattern:   args[0],
			MinLength: minLength,
			MaxLength: maxLength,
			Limit:     limit,
		})
		if err != nil {
			return err
		}

		logger.Info("pattern compiled",
			zap.String("pattern", args[0]),
			zap.Bool("unbounded", gen.Unbounded()),
			zap.Int("min_length", minLength),
			zap.Int("max_length", maxLength),
			zap.Int("limit", limit),
		)

		n, err := gen.WriteWords(os.Stdout)
		if err != nil {
			return err
		}
		logger.Info("enumeration finished", zap.Int("words", n))
		return nil
	},
}

// newLogger returns a stderr logger for analysis diagnostics, silent unless
// --verbose is set.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&minLength, "min-length", "n", 0,
		"drop words shorter than this many bytes")
	rootCmd.PersistentFlags().IntVarP(&maxLength, "max-length", "x", passwdgen.NoMaxLength,
		"drop words longer than this many bytes and prune expansion (negative = no limit)")
	rootCmd.PersistentFlags().IntVarP(&limit, "limit", "c", 0,
		"stop after this many words (0 = no limit)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log pattern analysis to stderr")
	rootCmd.AddCommand(genCmd)
}
