package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	ctx        context.Context
	log        *log.Logger
	configPath string
	verbose    bool
	flags      Config // values bound to flags
	cfg        Config // file config with explicit flags applied
}

// newRootCommand assembles the mstree command tree.
func newRootCommand(ctx context.Context, version string) *cobra.Command {
	a := &app{ctx: ctx, log: log.New()}
	a.log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:               "mstree",
		Short:             "Compute minimum spanning trees by merging partial trees.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", log.InfoLevel.String(), "log level (panic..trace)")

	rootCmd.AddCommand(
		newSolveCommand(a),
		newGenerateCommand(a),
		newVersionCommand(version),
	)

	return rootCmd
}

// setup resolves the configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	overrideFromFlags(cmd.Flags(), &cfg, a.flags)

	switch cfg.Format {
	case formatText, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", cfg.Format, formatText, formatYAML)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose || cfg.Trace {
		level = log.DebugLevel
	}
	a.log.SetLevel(level)
	a.cfg = cfg
	a.log.WithField("config", a.configPath).Debugf("resolved config %+v", cfg)

	return nil
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mstree version %s\n", version)
		},
	}
}
