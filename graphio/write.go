package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/partialtree"
)

// Result is the YAML shape of an MST.
type Result struct {
	Arcs  []EdgeDoc `yaml:"arcs"`
	Total int64     `yaml:"total"`
}

// ResultOf captures arcs and their total weight.
func ResultOf(arcs []partialtree.Arc) Result {
	res := Result{Arcs: make([]EdgeDoc, 0, len(arcs)), Total: partialtree.TotalWeight(arcs)}
	for _, a := range arcs {
		res.Arcs = append(res.Arcs, EdgeDoc{From: a.From.Name, To: a.To.Name, Weight: a.Weight})
	}

	return res
}

// WriteText writes one "from to weight" line per arc followed by a
// "# total weight N" trailer.
func WriteText(w io.Writer, arcs []partialtree.Arc) error {
	bw := bufio.NewWriter(w)
	for _, a := range arcs {
		fmt.Fprintf(bw, "%s %s %d\n", a.From, a.To, a.Weight)
	}
	fmt.Fprintf(bw, "# total weight %d\n", partialtree.TotalWeight(arcs))

	return errors.Wrap(bw.Flush(), "graphio: write mst")
}

// WriteYAML writes arcs as a Result document.
func WriteYAML(w io.Writer, arcs []partialtree.Arc) error {
	return encodeYAML(w, ResultOf(arcs))
}

// WriteGraphText writes g in the text graph format, vertices and edges in
// insertion order. The output reads back with ReadText.
func WriteGraphText(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.Order())
	for _, v := range g.Vertices() {
		fmt.Fprintln(bw, v.Name)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Weight)
	}

	return errors.Wrap(bw.Flush(), "graphio: write graph")
}

// WriteGraphYAML writes g as a Document.
func WriteGraphYAML(w io.Writer, g *core.Graph) error {
	return encodeYAML(w, DocumentOf(g))
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "graphio: encode yaml")
	}

	return errors.Wrap(enc.Close(), "graphio: encode yaml")
}
