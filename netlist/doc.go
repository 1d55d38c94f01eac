// SPDX-License-Identifier: MIT

// Package netlist reads circuits from YAML documents.
//
// A document lists components in order (their position fixes their terminal
// ids) and the supernodes as groups of terminal references such as
// "R1.prev". Params bind symbols used in component values; they can be
// substituted for a numeric solve or kept for a symbolic one.
//
// Documents are decoded with gopkg.in/yaml.v3 (unknown fields rejected) and
// checked with go-playground/validator; every violation is reported in one
// ErrInvalidNetlist error.
package netlist
