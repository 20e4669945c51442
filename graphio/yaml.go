package graphio

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstree/core"
)

// Document is the YAML shape of a graph.
type Document struct {
	Vertices []string  `yaml:"vertices,omitempty"`
	Edges    []EdgeDoc `yaml:"edges"`
}

// EdgeDoc is one YAML edge entry.
type EdgeDoc struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// ReadYAML decodes a Document from r into a new graph built with opts.
// Unknown keys are rejected.
func ReadYAML(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrapf(ErrSyntax, "yaml: %v", err)
	}

	return doc.Graph(opts...)
}

// Graph builds a graph from d.
func (d Document) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for i, name := range d.Vertices {
		if g.HasVertex(name) {
			return nil, errors.Wrapf(ErrVertexCount, "vertices[%d]: duplicate vertex %s", i, name)
		}
		if _, err := g.AddVertex(name); err != nil {
			return nil, errors.Wrapf(err, "vertices[%d]", i)
		}
	}
	strict := len(d.Vertices) > 0
	for i, e := range d.Edges {
		if strict {
			for _, name := range []string{e.From, e.To} {
				if !g.HasVertex(name) {
					return nil, errors.Wrapf(ErrUnknownVertex, "edges[%d]: %q", i, name)
				}
			}
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "edges[%d]: edge %s-%s", i, e.From, e.To)
		}
	}

	return g, nil
}

// DocumentOf captures g as a Document with every vertex listed.
func DocumentOf(g *core.Graph) Document {
	doc := Document{
		Vertices: make([]string, 0, g.Order()),
		Edges:    make([]EdgeDoc, 0, g.Size()),
	}
	for _, v := range g.Vertices() {
		doc.Vertices = append(doc.Vertices, v.Name)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From.Name, To: e.To.Name, Weight: e.Weight})
	}

	return doc
}
