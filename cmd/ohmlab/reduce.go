// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ohmlab/reduce"
	"github.com/katalvlaran/ohmlab/symbolic"
)

type compositeRow struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"`
	Members    []string `yaml:"members"`
	Resistance string   `yaml:"resistance"`
}

type reduceReport struct {
	Circuit    string         `yaml:"circuit,omitempty"`
	State      string         `yaml:"state"`
	Expression string         `yaml:"expression,omitempty"`
	Resistance string         `yaml:"resistance,omitempty"`
	Decimal    *float64       `yaml:"decimal,omitempty"`
	Composites []compositeRow `yaml:"composites,omitempty"`
	Dropped    []string       `yaml:"dropped,omitempty"`
}

func (a *app) reduceCmd() *cobra.Command {
	var nested bool
	cmd := &cobra.Command{
		Use:   "reduce <netlist.yaml>",
		Short: "Series/parallel equivalent resistance seen by the voltage source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			c, err := n.Circuit(a.opts...)
			if err != nil {
				return err
			}
			var opts []reduce.Option
			if nested {
				opts = append(opts, reduce.WithNestedComposites())
			}
			res, err := c.Equivalent(opts...)
			if err != nil {
				return err
			}
			rep := buildReduceReport(n.Name, res)

			if a.cfg.Output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), rep)
			}
			out := cmd.OutOrStdout()
			if !res.OK {
				fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("no series/parallel form (state: %s)", rep.State)))
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render("expression:"), rep.Expression)
			resistance := rep.Resistance
			if rep.Decimal != nil {
				resistance += " (" + strconv.FormatFloat(*rep.Decimal, 'g', -1, 64) + ")"
			}
			fmt.Fprintf(out, "%s %s Ω\n", titleStyle.Render("resistance:"), resistance)
			if len(rep.Composites) > 0 {
				rows := make([][]string, len(rep.Composites))
				for i, cr := range rep.Composites {
					rows[i] = []string{cr.Name, cr.Kind, strings.Join(cr.Members, ", "), cr.Resistance}
				}
				writeSection(out, "Composites", []string{"Name", "Kind", "Members", "Resistance"}, rows)
			}
			if len(rep.Dropped) > 0 {
				fmt.Fprintf(out, "%s %s\n", warnStyle.Render("no current through:"), strings.Join(rep.Dropped, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&nested, "nested", false, "keep each merge in its own brackets instead of flattening same-kind chains")
	return cmd
}

func buildReduceReport(name string, res *reduce.Result) reduceReport {
	rep := reduceReport{Circuit: name, State: res.State.String(), Dropped: res.Dropped}
	if !res.OK {
		return rep
	}
	rep.Expression = res.Expression
	rep.Resistance = res.Resistance.String()
	if v, err := symbolic.Evaluate(res.Resistance, nil); err == nil {
		rep.Decimal = &v
	}

	names := make([]string, 0, len(res.Composites))
	for k := range res.Composites {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return compositeIndex(names[i]) < compositeIndex(names[j]) })
	for _, k := range names {
		cp := res.Composites[k]
		rep.Composites = append(rep.Composites, compositeRow{
			Name:       cp.Name,
			Kind:       cp.Kind.String(),
			Members:    cp.Members,
			Resistance: cp.Resistance.String(),
		})
	}
	return rep
}

// compositeIndex parses the counter of a "$k" composite name.
func compositeIndex(name string) int {
	k, _ := strconv.Atoi(strings.TrimPrefix(name, "$"))
	return k
}
