package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"targetkit/datalayout"
	"targetkit/target"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [flags] <triple>",
	Short: "Show the data layout for a triple",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().Bool("raw", false, "print the raw layout string only")
}

func runLayout(cmd *cobra.Command, args []string) error {
	setupColor(cmd)
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return err
	}

	target.InitializeAllTargets()
	t, triple, err := target.LookupTarget("", args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return target.WithTargetOptions(func(opts *target.TargetOptions) error {
		return target.WithTargetMachine(t, triple, "", nil, opts,
			target.RelocDefault, target.CodeModelDefault, target.CodeGenLevelDefault,
			func(m *target.TargetMachine) error {
				if raw {
					fmt.Fprintln(out, m.DataLayoutString())
					return nil
				}
				printLayout(cmd, m.DataLayout())
				return nil
			})
	})
}

func printLayout(cmd *cobra.Command, dl datalayout.DataLayout) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("byte order:"), dl.ByteOrder)
	fmt.Fprintf(out, "%s %d-bit\n", headerStyle.Render("pointers:  "), dl.PointerSize(0))
	if dl.StackAlign != 0 {
		fmt.Fprintf(out, "%s %d-bit\n", headerStyle.Render("stack:     "), dl.StackAlign)
	}

	rows := make([][]string, 0)
	addRows := func(kind string, ts []datalayout.TypeLayout) {
		for _, t := range ts {
			rows = append(rows, []string{
				kind + strconv.Itoa(t.Size),
				strconv.Itoa(t.ABI),
				strconv.Itoa(t.Pref),
			})
		}
	}
	addRows("i", dl.Integers)
	addRows("f", dl.Floats)
	addRows("v", dl.Vectors)
	if len(rows) > 0 {
		renderTable(out, []string{"TYPE", "ABI ALIGN", "PREF ALIGN"}, rows)
	}
	if len(dl.NativeInts) > 0 {
		fmt.Fprintf(out, "%s %v\n", headerStyle.Render("native ints:"), dl.NativeInts)
	}
}
