package graphio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mstree/core"
)

var (
	// ErrSyntax indicates a malformed line.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnknownVertex indicates an edge endpoint that was not declared.
	ErrUnknownVertex = errors.New("graphio: unknown vertex")

	// ErrVertexCount indicates a vertex section that does not match its
	// declared count, or a duplicate vertex name.
	ErrVertexCount = errors.New("graphio: vertex count mismatch")
)

// phase of the text reader.
const (
	wantCount = iota
	wantVertex
	wantEdge
)

// ReadText parses the text graph format from r into a new graph built with
// opts.
func ReadText(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	sc := bufio.NewScanner(r)

	var (
		phase    = wantCount
		declared int
		lineNo   int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch phase {
		case wantCount:
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, errors.Wrapf(ErrSyntax, "line %d: vertex count %q", lineNo, line)
			}
			declared = n
			phase = wantVertex
			if n == 0 {
				phase = wantEdge
			}

		case wantVertex:
			if len(fields) != 1 {
				return nil, errors.Wrapf(ErrSyntax, "line %d: want one vertex name, got %q", lineNo, line)
			}
			if g.HasVertex(fields[0]) {
				return nil, errors.Wrapf(ErrVertexCount, "line %d: duplicate vertex %s", lineNo, fields[0])
			}
			if _, err := g.AddVertex(fields[0]); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			if g.Order() == declared {
				phase = wantEdge
			}

		case wantEdge:
			if err := readEdge(g, fields, lineNo); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "graphio: read")
	}

	switch {
	case phase == wantCount:
		return nil, errors.Wrap(ErrSyntax, "missing vertex count")
	case g.Order() != declared:
		return nil, errors.Wrapf(ErrVertexCount, "declared %d vertices, found %d", declared, g.Order())
	}

	return g, nil
}

// readEdge parses "from to weight" and adds the edge to g.
func readEdge(g *core.Graph, fields []string, lineNo int) error {
	if len(fields) != 3 {
		return errors.Wrapf(ErrSyntax, "line %d: want \"from to weight\", got %d fields", lineNo, len(fields))
	}
	for _, name := range fields[:2] {
		if !g.HasVertex(name) {
			return errors.Wrapf(ErrUnknownVertex, "line %d: %s", lineNo, name)
		}
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return errors.Wrapf(ErrSyntax, "line %d: weight %q", lineNo, fields[2])
	}
	if err = g.AddEdge(fields[0], fields[1], w); err != nil {
		return errors.Wrapf(err, "line %d: edge %s-%s", lineNo, fields[0], fields[1])
	}

	return nil
}

// Load reads the graph stored at path: YAML for .yaml and .yml files, the
// text format otherwise.
func Load(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "graphio: open %s", path)
	}
	defer f.Close()

	var g *core.Graph
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		g, err = ReadYAML(f, opts...)
	default:
		g, err = ReadText(f, opts...)
	}
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return g, nil
}
