// Package main implements the targetkit CLI.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
	"golang.org/x/term"

	"targetkit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "targetkit",
	Short: "Inspect code-generation targets",
	Long:  `targetkit resolves target triples, describes target machines and queries host CPU capabilities`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(libfuncsCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// setupColor applies the --color flag and the NO_COLOR convention before a
// command renders anything.
func setupColor(cmd *cobra.Command) {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = env.Has("NO_COLOR") || !isTerminal(os.Stdout)
	}
}
