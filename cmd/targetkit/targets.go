package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"targetkit/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List registered code-generation targets",
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func runTargets(cmd *cobra.Command, args []string) error {
	setupColor(cmd)
	target.InitializeAllTargets()

	rows := make([][]string, 0)
	for _, t := range target.AllTargets() {
		rows = append(rows, []string{
			t.Name(),
			t.Description(),
			t.DefaultCPU(),
			strconv.Itoa(t.PointerWidth()) + "-bit",
		})
	}
	renderTable(cmd.OutOrStdout(), []string{"TARGET", "DESCRIPTION", "DEFAULT CPU", "POINTER"}, rows)
	return nil
}
