// Package codegen renders enumerated wordlists as Go source files, so a
// candidate list can be generated once and embedded in a program at build
// time.
package codegen

import (
	"fmt"
	"io"
	"os"

	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for wordlist code generation.
type Config struct {
	// Pattern is the source pattern, recorded in the generated file header.
	Pattern string

	// Name is the identifier for the generated wordlist variable. It is
	// exported in the output regardless of its case here.
	Name string

	// Package is the Go package name for the generated code.
	Package string
}

// Validate checks if the config is valid.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !validIdentifier(c.Name) {
		return fmt.Errorf("name %q is not a valid Go identifier", c.Name)
	}
	if c.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Emitter renders one wordlist into Go source. An Emitter is single-use:
// create one per generated file.
type Emitter struct {
	config Config
	file   *jen.File
}

// New creates a new emitter instance.
func New(config Config) *Emitter {
	return &Emitter{
		config: config,
		file:   jen.NewFile(config.Package),
	}
}

// Render writes the generated Go source for words to w. The output declares
// a single exported `var <Name> = []string{...}` holding the words in
// enumeration order.
func (e *Emitter) Render(words []string, w io.Writer) error {
	if err := e.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e.file.Comment(fmt.Sprintf("Code generated by passwd-gen for pattern: %s", e.config.Pattern))
	e.file.Comment("DO NOT EDIT.")
	e.file.Line()

	values := make([]jen.Code, len(words))
	for i, word := range words {
		values[i] = jen.Lit(word)
	}
	name := UpperFirst(e.config.Name)
	e.file.Comment(fmt.Sprintf("%s holds every candidate the pattern expands to, in enumeration order.", name))
	e.file.Var().Id(name).Op("=").Index().String().Values(values...)

	if err := e.file.Render(w); err != nil {
		return fmt.Errorf("failed to render wordlist: %w", err)
	}
	return nil
}

// Save renders the wordlist and writes it to outputFile.
func (e *Emitter) Save(words []string, outputFile string) error {
	if outputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := e.Render(words, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
