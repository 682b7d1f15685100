// Command passwd-gen enumerates every string a regular-expression pattern can
// match and prints them one per line, for building candidate wordlists.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var errorStyle = color.New(color.FgRed, color.Bold)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}
