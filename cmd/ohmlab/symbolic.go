// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ohmlab/result"
	"github.com/katalvlaran/ohmlab/symbolic"
)

type symbolicReport struct {
	Circuit    string            `yaml:"circuit,omitempty"`
	Potentials map[int]string    `yaml:"potentials"`
	Components []componentRow    `yaml:"components"`
	Params     map[string]string `yaml:"params,omitempty"`
}

func (a *app) symbolicCmd() *cobra.Command {
	var bind bool
	cmd := &cobra.Command{
		Use:   "symbolic <netlist.yaml>",
		Short: "Symbolic MNA: results as expressions over the netlist params",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			c, err := n.SymbolicCircuit(a.opts...)
			if err != nil {
				return err
			}
			res, err := c.SolveSymbolic()
			if err != nil {
				return err
			}

			show := func(e symbolic.Expr) string { return e.String() }
			if bind && len(n.Params) > 0 {
				b, err := symbolic.Bind(n.Params)
				if err != nil {
					return err
				}
				show = func(e symbolic.Expr) string { return symbolic.Apply(e, b).String() }
			}

			rep := symbolicReport{Circuit: n.Name, Potentials: make(map[int]string, len(res.Potentials))}
			for _, key := range result.SortedKeys(res.Potentials) {
				rep.Potentials[key] = show(res.Potentials[key])
			}
			for _, comp := range c.Components() {
				rep.Components = append(rep.Components, componentRow{
					Name:    comp.Name,
					Kind:    comp.Kind.String(),
					Voltage: show(res.Volts[comp.Name]),
					Current: show(res.Currents[comp.Name]),
				})
			}
			if bind {
				rep.Params = make(map[string]string, len(n.Params))
				for _, k := range result.SortedKeys(n.Params) {
					rep.Params[k] = strconv.FormatFloat(n.Params[k], 'g', -1, 64)
				}
			}

			if a.cfg.Output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), rep)
			}
			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(rep.Potentials))
			for _, key := range result.SortedKeys(rep.Potentials) {
				rows = append(rows, []string{strconv.Itoa(key), rep.Potentials[key]})
			}
			writeSection(out, "Nodes", []string{"Key", "Potential"}, rows)
			writeSection(out, "Components", []string{"Name", "Kind", "Voltage", "Current"}, componentRows(rep.Components))
			return nil
		},
	}
	cmd.Flags().BoolVar(&bind, "bind", false, "substitute netlist params into the expressions")
	return cmd
}
