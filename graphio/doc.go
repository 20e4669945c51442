// Package graphio loads weighted undirected graphs into *core.Graph and writes
// graphs and MST results back out.
//
// Text format
//
//	4          vertex count N (first non-blank line)
//	A          N vertex names, one per line
//	B
//	C
//	D
//	A B 3      remaining lines: from to weight
//	B C 1
//
// Blank lines and lines starting with '#' are ignored anywhere. Vertex names
// are single whitespace-free tokens; weights are non-negative integers.
//
// YAML format
//
//	vertices: [A, B, C, D]
//	edges:
//	  - {from: A, to: B, weight: 3}
//	  - {from: B, to: C, weight: 1}
//
// When vertices is present it fixes vertex order and every edge endpoint must
// be declared; when absent, endpoints are created in order of appearance.
//
// Errors
//
// Parse failures wrap one of ErrSyntax, ErrUnknownVertex or ErrVertexCount
// (or a core error such as core.ErrBadWeight) with the line number, using
// github.com/pkg/errors. Branch with errors.Is.
package graphio
