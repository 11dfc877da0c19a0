package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-netcentrality/pkg/config"
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
	"github.com/dd0wney/cluso-netcentrality/pkg/ingest"
	"github.com/dd0wney/cluso-netcentrality/pkg/logging"
	"github.com/dd0wney/cluso-netcentrality/pkg/metrics"
)

var version = "dev"

// app carries state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string

	cfg     config.Config
	logger  logging.Logger
	metrics *metrics.Registry
	stdin   io.Reader
}

func newApp() *app {
	return &app{
		metrics: metrics.NewRegistry(),
		stdin:   os.Stdin,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "netcentrality",
		Short:         "Centrality and shortest-path analysis for undirected networks",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = a.logLevel
			}
			a.cfg = cfg

			logger := logging.NewJSONLogger(cmd.ErrOrStderr(), logging.ParseLevel(cfg.Log.Level))
			logging.SetDefaultLogger(logger)
			a.logger = logger.With(logging.String("command", cmd.Name()))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().Bool("lenient", false, "skip malformed input lines instead of failing")
	root.PersistentFlags().String("s3-region", "", "AWS region for s3:// sources")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newBFSCmd(a))
	root.AddCommand(newSummaryCmd(a))

	return root
}

// applyInputFlags copies explicitly set input flags over the config.
func (a *app) applyInputFlags(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	if flags.Changed("lenient") {
		a.cfg.Input.Lenient, _ = flags.GetBool("lenient")
	}
	if flags.Changed("s3-region") {
		a.cfg.Input.S3Region, _ = flags.GetString("s3-region")
	}
	if len(args) > 0 {
		a.cfg.Input.Source = args[0]
	}
}

// loadEdges reads the configured source.
func (a *app) loadEdges(ctx context.Context) ([]graph.Edge, error) {
	loader := ingest.NewLoader(ingest.Options{
		Lenient:  a.cfg.Input.Lenient,
		S3Region: a.cfg.Input.S3Region,
	}, a.logger, a.metrics)
	loader.SetStdin(a.stdin)

	res, err := loader.Load(ctx, a.cfg.Input.Source)
	if err != nil {
		return nil, err
	}
	return res.Edges, nil
}
