package main

import (
	"github.com/spf13/cobra"

	"targetkit/target"
)

var libfuncsCmd = &cobra.Command{
	Use:   "libfuncs [flags] <triple>",
	Short: "List library functions recognized for a triple",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibfuncs,
}

func init() {
	libfuncsCmd.Flags().Bool("available-only", false, "hide functions unavailable on the triple")
}

func runLibfuncs(cmd *cobra.Command, args []string) error {
	setupColor(cmd)
	availableOnly, err := cmd.Flags().GetBool("available-only")
	if err != nil {
		return err
	}

	return target.WithTargetLibraryInfo(args[0], func(li *target.TargetLibraryInfo) error {
		rows := make([][]string, 0)
		for _, fn := range li.Functions() {
			if availableOnly && !fn.Available {
				continue
			}
			state := okStyle.Render("available")
			if !fn.Available {
				state = offStyle.Render("unavailable")
			}
			rows = append(rows, []string{fn.StandardName, fn.EmittedName, state})
		}
		renderTable(cmd.OutOrStdout(), []string{"FUNCTION", "EMITS AS", "STATE"}, rows)
		return nil
	})
}
