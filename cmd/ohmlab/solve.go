// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/result"
	"github.com/katalvlaran/ohmlab/topology"
)

type nodeRow struct {
	Key       int    `yaml:"key"`
	Terminals []int  `yaml:"terminals"`
	Potential string `yaml:"potential"`
}

type componentRow struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Voltage string `yaml:"voltage"`
	Current string `yaml:"current"`
}

type solveReport struct {
	Circuit    string         `yaml:"circuit,omitempty"`
	Ground     string         `yaml:"ground"`
	Nodes      []nodeRow      `yaml:"nodes"`
	Components []componentRow `yaml:"components"`
}

func (a *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <netlist.yaml>",
		Short: "Numeric MNA: node potentials, branch voltages and currents",
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
			res, err := c.Solve()
			if err != nil {
				return err
			}
			report := buildSolveReport(n.Name, c.Components(), res)
			report.Ground = groundLabel(c.Rule())
			if a.cfg.Output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ground: %s\n", report.Ground)
			writeSection(out, "Nodes", []string{"Key", "Terminals", "Potential (V)"}, nodeRows(report.Nodes))
			writeSection(out, "Components", []string{"Name", "Kind", "Voltage (V)", "Current (A)"}, componentRows(report.Components))
			return nil
		},
	}
}

func buildSolveReport(name string, cs []component.Component, res *result.Result) solveReport {
	rep := solveReport{Circuit: name}
	for _, key := range result.SortedKeys(res.Connections) {
		conn := res.Connections[key]
		rep.Nodes = append(rep.Nodes, nodeRow{
			Key:       key,
			Terminals: terminalInts(conn.Terminals),
			Potential: conn.Potential.String(),
		})
	}
	for _, c := range cs {
		rep.Components = append(rep.Components, componentRow{
			Name:    c.Name,
			Kind:    c.Kind.String(),
			Voltage: res.Volts[c.Name].String(),
			Current: res.Currents[c.Name].String(),
		})
	}
	return rep
}

func terminalInts(ts []component.Terminal) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = int(t)
	}
	return out
}

func nodeRows(ns []nodeRow) [][]string {
	rows := make([][]string, len(ns))
	for i, n := range ns {
		rows[i] = []string{strconv.Itoa(n.Key), joinInts(n.Terminals), n.Potential}
	}
	return rows
}

func componentRows(cs []componentRow) [][]string {
	rows := make([][]string, len(cs))
	for i, c := range cs {
		rows[i] = []string{c.Name, c.Kind, c.Voltage, c.Current}
	}
	return rows
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

func groundLabel(rule *topology.NodeRule) string {
	if !rule.HasGround() {
		return "none"
	}
	return fmt.Sprintf("%s.next", rule.GroundSource())
}
