// Package builder provides deterministic, functional-options style graph
// fixtures for tests, benchmarks and the mstree generate command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new core.Graph, resolved config,
//     constructors applied in order.
//     – BuilderOption: a function that mutates builderConfig before use.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Star, Wheel, Complete, Grid.
//     – RandomSparse (G(n,p), may be disconnected).
//     – RandomConnected (random spanning tree plus extra edges).
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:     decimal strings ("0","1",…).
//     – SymbolIDFn:      single letters ("A".."Z").
//     – ExcelColumnIDFn: spreadsheet columns ("A","Z","AA",…).
//     – PrefixIDFn:      prefix plus decimal ("v0","v1",…).
//   - Edge-weight generators (WeightFn implementations, int64):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, From1To100WeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical graphs, down to
//     vertex order and adjacency order.
//   - Option constructors panic on meaningless input (nil functions, negative
//     weights); constructors return wrapped sentinel errors and never panic.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, plus core errors surfaced from AddVertex/AddEdge.
package builder
