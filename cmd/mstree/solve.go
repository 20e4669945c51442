package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/graphio"
	"github.com/katalvlaran/mstree/partialtree"
	"github.com/katalvlaran/mstree/spanning"
)

// ErrVerifyFailed reports a result that disagrees with the reference MST.
var ErrVerifyFailed = errors.New("mstree: verification failed")

type solveOptions struct {
	file       string
	allowLoops bool
	allowMulti bool
}

func newSolveCommand(a *app) *cobra.Command {
	var o solveOptions
	cmd := &cobra.Command{
		Use:   "solve [graph file]",
		Short: "Compute the MST of a graph file (text, or YAML for .yaml/.yml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.file = args[0]
			}
			if o.file == "" {
				return errors.New("no graph file given (use -f or an argument)")
			}
			return a.solve(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "path to the graph file")
	cmd.Flags().BoolVar(&o.allowLoops, "allow-loops", false, "accept self-loops in the input")
	cmd.Flags().BoolVar(&o.allowMulti, "allow-multi", false, "accept parallel edges in the input")
	bindSolveFlags(cmd.Flags(), &a.flags)

	return cmd
}

func (a *app) solve(out io.Writer, o solveOptions) error {
	var gopts []core.GraphOption
	if o.allowLoops {
		gopts = append(gopts, core.WithLoops())
	}
	if o.allowMulti {
		gopts = append(gopts, core.WithMultiEdges())
	}

	g, err := graphio.Load(o.file, gopts...)
	if err != nil {
		return err
	}
	logger := a.log.WithField("file", o.file)
	logger.WithFields(log.Fields{"vertices": g.Order(), "edges": g.Size()}).Debug("loaded graph")

	s, err := partialtree.NewSolver(g, a.solverOptions(logger)...)
	if err != nil {
		return err
	}
	arcs, err := s.Run()
	if err != nil {
		return errors.WithMessage(err, o.file)
	}
	st := s.Stats()
	logger.WithFields(log.Fields{
		"steps":     st.Steps,
		"discarded": st.Discarded,
		"maxDepth":  st.MaxRootDepth,
	}).Debug("solved")

	if a.cfg.Verify {
		if err = verify(g, arcs); err != nil {
			return err
		}
		logger.Info("result matches Kruskal")
	}

	if a.cfg.Format == formatYAML {
		return graphio.WriteYAML(out, arcs)
	}

	return graphio.WriteText(out, arcs)
}

// solverOptions maps the resolved config onto partialtree options. The
// OnMerge hook stops the run once the command context is cancelled.
func (a *app) solverOptions(logger log.FieldLogger) []partialtree.Option {
	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []partialtree.Option{
		partialtree.WithOnMerge(func(int, partialtree.Arc) error { return ctx.Err() }),
	}
	if a.cfg.PathCompression {
		opts = append(opts, partialtree.WithPathCompression())
	}
	if a.cfg.Trace {
		opts = append(opts, partialtree.WithLogger(logger))
	}

	return opts
}

// verify checks arcs structurally and compares their weight with Kruskal's.
func verify(g *core.Graph, arcs []partialtree.Arc) error {
	edges := make([]core.Edge, len(arcs))
	for i, a := range arcs {
		edges[i] = core.Edge{From: a.From, To: a.To, Weight: a.Weight}
	}
	if err := spanning.Verify(g, edges); err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}
	_, want, err := spanning.Kruskal(g)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}
	if got := partialtree.TotalWeight(arcs); got != want {
		return fmt.Errorf("%w: weight %d, Kruskal %d", ErrVerifyFailed, got, want)
	}

	return nil
}
