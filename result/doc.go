// SPDX-License-Identifier: MIT

// Package result turns a raw MNA solution vector into named quantities.
//
// Compile maps every supernode key to its potential and every component name
// to its voltage and current. Each number carries a display form: an exact
// fraction when one short enough exists, otherwise a rounded decimal.
//
//	res, _ := result.Compile(cs, rule, x)
//	fmt.Println(res.Currents["R1"]) // "6"
//
// CompileSymbolic does the same for the expression-valued solution produced
// by mna.SolveSymbolic.
package result
