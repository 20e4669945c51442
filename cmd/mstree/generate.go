package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mstree/builder"
	"github.com/katalvlaran/mstree/graphio"
)

type generateOptions struct {
	topology  string
	n         int
	rows      int
	cols      int
	p         float64
	extra     int
	seed      int64
	minWeight int64
	maxWeight int64
	ids       string
	output    string
}

var topologies = []string{"path", "cycle", "star", "wheel", "complete", "grid", "sparse", "connected"}

func newGenerateCommand(a *app) *cobra.Command {
	var o generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph in the text (or YAML) graph format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if o.output == "" {
				return a.generate(cmd.OutOrStdout(), o)
			}
			f, err := os.Create(o.output)
			if err != nil {
				return errors.WithMessage(err, "generate")
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = errors.WithMessage(cerr, "generate")
				}
			}()

			return a.generate(f, o)
		},
	}
	bindGenerateFlags(cmd.Flags(), &o)
	cmd.Flags().StringVar(&a.flags.Format, "format", formatText, "output format: text or yaml")

	return cmd
}

func bindGenerateFlags(fs *pflag.FlagSet, o *generateOptions) {
	fs.StringVarP(&o.topology, "topology", "t", "connected", "one of "+strings.Join(topologies, ", "))
	fs.IntVarP(&o.n, "vertices", "n", 10, "number of vertices")
	fs.IntVar(&o.rows, "rows", 3, "grid rows")
	fs.IntVar(&o.cols, "cols", 3, "grid columns")
	fs.Float64VarP(&o.p, "probability", "p", 0.3, "edge probability for sparse")
	fs.IntVar(&o.extra, "extra", 10, "edges beyond the spanning tree for connected")
	fs.Int64Var(&o.seed, "seed", 1, "random seed")
	fs.Int64Var(&o.minWeight, "min-weight", 1, "smallest edge weight")
	fs.Int64Var(&o.maxWeight, "max-weight", 100, "largest edge weight")
	fs.StringVar(&o.ids, "ids", "decimal", "vertex IDs: decimal, letters, or a name prefix")
	fs.StringVarP(&o.output, "output", "o", "", "write to this file instead of stdout")
}

// constructor maps the topology name onto a builder constructor.
func (o generateOptions) constructor() (builder.Constructor, error) {
	switch o.topology {
	case "path":
		return builder.Path(o.n), nil
	case "cycle":
		return builder.Cycle(o.n), nil
	case "star":
		return builder.Star(o.n), nil
	case "wheel":
		return builder.Wheel(o.n), nil
	case "complete":
		return builder.Complete(o.n), nil
	case "grid":
		return builder.Grid(o.rows, o.cols), nil
	case "sparse":
		return builder.RandomSparse(o.n, o.p), nil
	case "connected":
		return builder.RandomConnected(o.n, o.extra), nil
	default:
		return nil, fmt.Errorf("unknown topology %q (want one of %s)", o.topology, strings.Join(topologies, ", "))
	}
}

func (a *app) generate(out io.Writer, o generateOptions) error {
	if o.minWeight < 0 || o.maxWeight < o.minWeight {
		return fmt.Errorf("invalid weight range [%d, %d]", o.minWeight, o.maxWeight)
	}
	ctor, err := o.constructor()
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(o.seed),
		builder.WithIDScheme(builder.IDScheme(o.ids)),
		builder.WithUniformWeight(o.minWeight, o.maxWeight),
	}, ctor)
	if err != nil {
		return err
	}
	a.log.WithField("topology", o.topology).Debugf("generated %d vertices, %d edges", g.Order(), g.Size())

	if a.cfg.Format == formatYAML {
		return graphio.WriteGraphYAML(out, g)
	}

	return graphio.WriteGraphText(out, g)
}
