package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Maurdekye/passwd-gen/internal/codegen"
	"github.com/Maurdekye/passwd-gen/pkg/passwdgen"
)

var (
	genOutput  string
	genName    string
	genPackage string
)

var genCmd = &cobra.Command{
	Use:   "gen [pattern]",
	Short: "Generate a Go source file embedding the wordlist",
	Long: `gen expands the pattern like the root command, but instead of printing the
words it writes a Go source file declaring them as a []string variable, for
embedding a candidate list in a program at build time.`,
	Example: `  passwd-gen gen -o pins.go --name Pins --package wordlists '[0-9]{4}'`,
	Args:    cobra.ExactArgs(1),
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

		words := gen.All()
		logger.Info("wordlist enumerated",
			zap.String("pattern", args[0]),
			zap.Int("words", len(words)),
		)

		e := codegen.New(codegen.Config{
			Pattern: args[0],
			Name:    genName,
			Package: genPackage,
		})
		if err := e.Save(words, genOutput); err != nil {
			return err
		}
		logger.Info("wordlist written", zap.String("output", genOutput))
		return nil
	},
}

func init() {
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "wordlist.go",
		"output file for the generated Go source")
	genCmd.Flags().StringVar(&genName, "name", "Wordlist",
		"identifier for the generated []string variable")
	genCmd.Flags().StringVar(&genPackage, "package", "wordlist",
		"package name for the generated file")
}
