// SPDX-License-Identifier: MIT

// Package topology resolves a raw node rule (groups of terminal ids that are
// wired together) into keyed supernodes.
//
// Rules applied by Resolve:
//
//   - every component terminal appears in exactly one group, and every listed
//     terminal belongs to a component;
//   - terminals of open switches are removed (un-merged, not grounded);
//     groups left empty disappear;
//   - ground is the group holding the negative terminal of the unique
//     reference voltage source (WithGroundSource picks one when there are
//     several); without a reference source key 0 is empty;
//   - remaining groups get keys 1..n in input order.
//
// A component whose two terminals land in the same supernode is "shorted"
// (NodeRule.Shorted). Both MNA assemblers consult this one resolver, so the
// numeric and symbolic paths agree on it.
package topology
