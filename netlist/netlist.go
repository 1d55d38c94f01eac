// SPDX-License-Identifier: MIT
// Package: ohmlab/netlist
//
// netlist.go — the YAML circuit document, its validation and its conversion
// into components and a raw node rule.

package netlist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/symbolic"
)

// Netlist is one circuit document:
//
//	name: divider
//	params: {R: 2}
//	components:
//	  - {name: V,  kind: voltage,  value: "12"}
//	  - {name: R1, kind: resistor, value: R}
//	  - {name: R2, kind: resistor, value: "2*R"}
//	nodes:
//	  - [V.prev, R1.prev]
//	  - [R1.next, R2.prev]
//	  - [R2.next, V.next]
//
// A node entry is either "<component>.prev", "<component>.next" or a raw
// terminal id.
type Netlist struct {
	Name       string             `yaml:"name,omitempty"`
	Ground     string             `yaml:"ground,omitempty" validate:"omitempty,identifier"`
	Params     map[string]float64 `yaml:"params,omitempty" validate:"omitempty,dive,keys,identifier,endkeys"`
	Components []Entry            `yaml:"components" validate:"required,min=1,dive"`
	Nodes      [][]string         `yaml:"nodes" validate:"required,min=1,dive,min=1,dive,required"`
}

// Entry describes one component.
type Entry struct {
	Name   string `yaml:"name" validate:"required,identifier"`
	Kind   string `yaml:"kind" validate:"required,kind"`
	Value  string `yaml:"value,omitempty"`
	Closed bool   `yaml:"closed,omitempty"`
}

var (
	validate  *validator.Validate
	identRE   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	terminals = map[string]bool{"prev": true, "next": true}
)

func init() {
	validate = validator.New()
	rules := map[string]validator.Func{
		"identifier": func(fl validator.FieldLevel) bool {
			return identRE.MatchString(fl.Field().String())
		},
		"kind": func(fl validator.FieldLevel) bool {
			_, err := component.ParseKind(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("netlist: register %s: %v", tag, err))
		}
	}
}

// Load decodes and validates a netlist. Unknown fields are rejected.
func Load(r io.Reader) (*Netlist, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var n Netlist
	if err := dec.Decode(&n); err != nil {
		return nil, netlistErrorf("Load", fmt.Errorf("%w: %v", ErrDecode, err))
	}
	if err := n.Validate(); err != nil {
		return nil, netlistErrorf("Load", err)
	}
	return &n, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, netlistErrorf("LoadFile", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks field shapes and reports every violation in one error.
func (n *Netlist) Validate() error {
	err := validate.Struct(n)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidNetlist, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("%w: %s", ErrInvalidNetlist, strings.Join(msgs, "; "))
}

// Descriptors parses every entry. With bind set, params are substituted
// into the parsed values.
func (n *Netlist) Descriptors(bind bool) ([]component.Descriptor, error) {
	var b symbolic.Bindings
	if bind && len(n.Params) > 0 {
		var err error
		if b, err = symbolic.Bind(n.Params); err != nil {
			return nil, netlistErrorf("Descriptors", err)
		}
	}
	out := make([]component.Descriptor, len(n.Components))
	for i, e := range n.Components {
		kind, err := component.ParseKind(e.Kind)
		if err != nil {
			return nil, netlistErrorf("Descriptors", fmt.Errorf("component %q: %w", e.Name, err))
		}
		d := component.Descriptor{Kind: kind, Name: e.Name, Closed: e.Closed}
		if strings.TrimSpace(e.Value) != "" {
			v, err := symbolic.Parse(e.Value)
			if err != nil {
				return nil, netlistErrorf("Descriptors", fmt.Errorf("component %q: %w", e.Name, err))
			}
			if b != nil {
				v = symbolic.Apply(v, b)
			}
			d.Value = v
		}
		out[i] = d
	}
	return out, nil
}

// BoundComponents builds components with params substituted for their symbols.
func (n *Netlist) BoundComponents() ([]component.Component, error) {
	return n.build(true)
}

// SymbolicComponents builds components with params left as symbols.
func (n *Netlist) SymbolicComponents() ([]component.Component, error) {
	return n.build(false)
}

func (n *Netlist) build(bind bool) ([]component.Component, error) {
	descs, err := n.Descriptors(bind)
	if err != nil {
		return nil, err
	}
	cs, err := component.Build(descs)
	if err != nil {
		return nil, netlistErrorf("Components", err)
	}
	return cs, nil
}

// Rule translates node entries into raw terminal groups for topology.Resolve.
func (n *Netlist) Rule(cs []component.Component) ([][]int, error) {
	byName := component.ByName(cs)
	out := make([][]int, len(n.Nodes))
	for i, group := range n.Nodes {
		ids := make([]int, len(group))
		for j, ref := range group {
			id, err := terminalID(byName, ref)
			if err != nil {
				return nil, netlistErrorf("Rule", fmt.Errorf("node %d: %w", i, err))
			}
			ids[j] = id
		}
		out[i] = ids
	}
	return out, nil
}

func terminalID(byName map[string]component.Component, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return id, nil
	}
	name, end, ok := strings.Cut(ref, ".")
	if !ok || !terminals[end] {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTerminal, ref)
	}
	c, found := byName[name]
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTerminal, ref)
	}
	if end == "prev" {
		return int(c.Prev), nil
	}
	return int(c.Next), nil
}
