package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"targetkit/target"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [flags] <triple>",
	Short: "Resolve a triple to a registered target",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().String("arch", "", "architecture override (otherwise inferred from the triple)")
}

func runLookup(cmd *cobra.Command, args []string) error {
	setupColor(cmd)
	arch, err := cmd.Flags().GetString("arch")
	if err != nil {
		return err
	}

	target.InitializeAllTargets()
	t, normalized, err := target.LookupTarget(arch, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("target:"), t.Name())
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("triple:"), normalized)
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("desc:  "), t.Description())
	return nil
}
