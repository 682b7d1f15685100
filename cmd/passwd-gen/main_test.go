package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maurdekye/passwd-gen/pkg/passwdgen"
)

func TestRootCommandRejectsUnbounded(t *testing.T) {
	rootCmd.SetArgs([]string{"-x", "-1", "-c", "0", "a+"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, passwdgen.ErrUnbounded)
}

func TestGenCommandWritesWordlist(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "pins.go")

	rootCmd.SetArgs([]string{
		"gen", "[01]{2}",
		"-x", "-1", "-c", "0", "-n", "0",
		"-o", outputFile,
		"--name", "Pins",
		"--package", "wordlists",
	})
	require.NoError(t, rootCmd.Execute())

	src, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package wordlists")
	assert.Contains(t, string(src), `var Pins = []string{"00", "10", "01", "11"}`)
}
