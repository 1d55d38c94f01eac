// SPDX-License-Identifier: MIT

// Command ohmlab solves resistive circuits described by YAML netlists.
//
//	ohmlab solve    circuit.yaml   # node potentials, branch volts and currents
//	ohmlab symbolic circuit.yaml   # the same as expressions over netlist params
//	ohmlab reduce   circuit.yaml   # series/parallel equivalent seen by the source
//
// Settings come from ohmlab.yaml in the working directory (or --config) and
// are overridden by flags.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
