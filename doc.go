// Package mstree computes minimum spanning trees of weighted undirected
// graphs by repeatedly merging partial trees.
//
// What is inside?
//
//	core/        — Graph, Vertex, Neighbor, Edge; Forest (union-find root table)
//	minheap/     — generic stable binary min-heap (ties pop in insertion order)
//	partialtree/ — Arc, Tree, circular List, Solver and the MST entry point
//	spanning/    — reference Kruskal and Prim, spanning-tree verification
//	builder/     — deterministic graph fixtures (path, grid, random, ...)
//	graphio/     — text and YAML graph loaders, MST writers
//	cmd/mstree/  — command line: solve, generate, version
//
// How it works:
//
//	every vertex starts as its own partial tree with a heap of its arcs;
//	the front tree of a circular list takes its cheapest arc leaving the
//	component, absorbs the tree on the other side and goes to the back;
//	when one tree remains, the arcs taken are the MST.
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     3
//	    │     │
//	    D──2──C
//
//	MST: A-B(1), C-D(2), B-C(3); total weight 6.
//
//	go install github.com/katalvlaran/mstree/cmd/mstree@latest
package mstree
