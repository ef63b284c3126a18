package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"targetkit/target"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show the host triple, CPU and feature flags",
	Args:  cobra.NoArgs,
	RunE:  runHost,
}

func init() {
	hostCmd.Flags().Bool("enabled-only", false, "hide features the host lacks")
}

func runHost(cmd *cobra.Command, args []string) error {
	setupColor(cmd)
	enabledOnly, err := cmd.Flags().GetBool("enabled-only")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("triple:"), target.ProcessTargetTriple())
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("cpu:   "), target.HostCPUName())

	features := target.HostCPUFeatures()
	if len(features) == 0 {
		fmt.Fprintln(out, dimStyle.Render("no feature probe for this architecture"))
		return nil
	}
	names := make([]string, 0, len(features))
	for f := range features {
		names = append(names, string(f))
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		if enabledOnly && !features[target.CPUFeature(name)] {
			continue
		}
		state := okStyle.Render("enabled")
		if !features[target.CPUFeature(name)] {
			state = offStyle.Render("absent")
		}
		rows = append(rows, []string{name, state})
	}
	renderTable(out, []string{"FEATURE", "STATE"}, rows)
	return nil
}
