// SPDX-License-Identifier: MIT

// Package component defines circuit elements and their terminal identity.
//
// A Component is a tagged variant over four kinds:
//
//	Resistor       Value = resistance
//	VoltageSource  Value = potential difference, Prev is the + terminal
//	Wire           ideal zero-impedance connection
//	Switch         a wire that conducts only while Closed
//
// Capability queries (IsMNASource, IsBridge, IsReference, IsOpen, IsResistor)
// replace type switches in the solvers.
//
// Terminal ids are assigned in creation order: the k-th component owns
// 2k-1 and 2k. They come from a caller-owned Allocator or from descriptor
// position in Build; there is no process-wide counter.
package component
