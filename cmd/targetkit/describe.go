package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"targetkit/target"
)

// Current schema version - increment when TargetDescription format changes
const describeSchemaVersion uint16 = 1

// TargetDescription is the machine-readable payload of `targetkit describe`.
type TargetDescription struct {
	// Schema version for safe invalidation when format changes
	Schema uint16 `json:"schema" msgpack:"schema"`

	Target      string          `json:"target" msgpack:"target"`
	Triple      string          `json:"triple" msgpack:"triple"`
	CPU         string          `json:"cpu" msgpack:"cpu"`
	Features    string          `json:"features,omitempty" msgpack:"features"`
	DataLayout  string          `json:"data_layout" msgpack:"data_layout"`
	PointerBits int             `json:"pointer_bits" msgpack:"pointer_bits"`
	Options     *target.Options `json:"options,omitempty" msgpack:"options,omitempty"`
}

var describeCmd = &cobra.Command{
	Use:   "describe [flags] [triple]",
	Short: "Describe a configured target machine",
	Long:  "Describe builds a target machine for the given triple (default: the host) and prints its configuration.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().String("format", "text", "output format (text|json|msgpack)")
	describeCmd.Flags().String("preset", "", "TOML options preset file")
	describeCmd.Flags().String("cpu", "", "cpu to configure (default: target default, host cpu for the host triple)")
	describeCmd.Flags().Bool("all", false, "describe every known target")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	setupColor(cmd)
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "text", "json", "msgpack":
	default:
		return fmt.Errorf("unsupported format %q (must be text, json or msgpack)", format)
	}
	presetPath, err := cmd.Flags().GetString("preset")
	if err != nil {
		return err
	}
	cpu, err := cmd.Flags().GetString("cpu")
	if err != nil {
		return err
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	if all && len(args) > 0 {
		return fmt.Errorf("--all and an explicit triple are mutually exclusive")
	}

	var opts target.Options
	haveOpts := false
	if presetPath != "" {
		if opts, err = loadPreset(presetPath); err != nil {
			return err
		}
		haveOpts = true
	}

	target.InitializeAllTargets()

	var triples []string
	switch {
	case all:
		triples = target.KnownTriples()
		sort.Strings(triples)
	case len(args) == 1:
		triples = []string{args[0]}
	default:
		triples = []string{target.DefaultTargetTriple()}
	}

	descs := make([]TargetDescription, len(triples))
	var g errgroup.Group
	for i, triple := range triples {
		i, triple := i, triple
		g.Go(func() error {
			d, err := describeTriple(triple, cpu, opts, haveOpts)
			if err != nil {
				return err
			}
			descs[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if all {
			return enc.Encode(descs)
		}
		return enc.Encode(descs[0])
	case "msgpack":
		enc := msgpack.NewEncoder(out)
		if all {
			return enc.Encode(descs)
		}
		return enc.Encode(descs[0])
	default:
		for i, d := range descs {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printDescription(cmd, d)
		}
		return nil
	}
}

// describeTriple builds a scoped machine for one triple and snapshots its
// configuration. Each call owns its handles, so calls are safe to fan out.
func describeTriple(triple, cpu string, opts target.Options, haveOpts bool) (TargetDescription, error) {
	t, normalized, err := target.LookupTarget("", triple)
	if err != nil {
		return TargetDescription{}, err
	}
	var (
		features target.FeatureMap
		desc     TargetDescription
	)
	if cpu == "" && normalized == target.ProcessTargetTriple() {
		cpu = target.HostCPUName()
		features = target.HostCPUFeatures()
	}
	err = target.WithTargetOptions(func(to *target.TargetOptions) error {
		if haveOpts {
			to.Apply(opts)
		}
		return target.WithTargetMachine(t, normalized, cpu, features, to,
			target.RelocDefault, target.CodeModelDefault, target.CodeGenLevelDefault,
			func(m *target.TargetMachine) error {
				desc = TargetDescription{
					Schema:      describeSchemaVersion,
					Target:      t.Name(),
					Triple:      m.Triple(),
					CPU:         m.CPU(),
					Features:    m.Features(),
					DataLayout:  m.DataLayoutString(),
					PointerBits: m.DataLayout().PointerSize(0),
				}
				if haveOpts {
					read := to.Read()
					desc.Options = &read
				}
				return nil
			})
	})
	if err != nil {
		return TargetDescription{}, err
	}
	return desc, nil
}

func printDescription(cmd *cobra.Command, d TargetDescription) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("target: "), d.Target)
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("triple: "), d.Triple)
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("cpu:    "), d.CPU)
	if d.Features != "" {
		fmt.Fprintf(out, "%s %s\n", headerStyle.Render("features:"), d.Features)
	}
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("layout: "), d.DataLayout)
	fmt.Fprintf(out, "%s %d-bit pointers\n", headerStyle.Render("width:  "), d.PointerBits)
}
