// SPDX-License-Identifier: MIT

// Package core provides the undirected, thread-safe multigraph the reducer
// works on: supernodes are vertices, two-terminal elements are edges.
//
// Options:
//
//	– WithMultiEdges()  parallel edges between the same endpoints
//	– WithLoops()       edges whose ends coincide
//
// Edge IDs come from a monotonic sequence ("e1", "e2", ...); Edges and
// Neighbors return edges in that order, Vertices and NeighborIDs sort lex
// asc. A merge is RemoveEdge of the members followed by AddEdge of the
// replacement.
package core
