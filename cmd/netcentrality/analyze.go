package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-netcentrality/pkg/analysis"
	"github.com/dd0wney/cluso-netcentrality/pkg/logging"
	"github.com/dd0wney/cluso-netcentrality/pkg/report"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [source]",
		Short: "Run the full centrality pipeline",
		Long: `Reads an edge list from a file, "-" for stdin, or s3://bucket/key
(".sz" and ".snappy" inputs are decompressed), then computes degree,
betweenness and closeness centrality, path statistics and the six-degrees
verdict. The JSON result goes to --output or stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyInputFlags(cmd, args)
			if err := a.applyAnalyzeFlags(cmd); err != nil {
				return err
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			edges, err := a.loadEdges(cmd.Context())
			if err != nil {
				return err
			}

			analyzer := analysis.New(analysis.Options{
				Workers:             a.cfg.Analysis.Workers,
				Normalize:           a.cfg.Analysis.Normalize,
				TopN:                a.cfg.Analysis.TopN,
				SeparationThreshold: a.cfg.Analysis.SeparationThreshold,
			}, a.logger, a.metrics)

			res, err := analyzer.Run(cmd.Context(), edges)
			if err != nil {
				return err
			}

			summaryOut := cmd.ErrOrStderr()
			if a.cfg.Output.Path == "" {
				if err := report.WriteJSON(cmd.OutOrStdout(), res, false); err != nil {
					return err
				}
			} else {
				if err := report.WriteFile(a.cfg.Output.Path, res, a.cfg.Output.Compress); err != nil {
					return err
				}
				a.logger.Info("result written", logging.String("path", a.cfg.Output.Path), logging.RunID(res.RunID))
				summaryOut = cmd.OutOrStdout()
			}

			if a.cfg.Output.Summary {
				fmt.Fprint(summaryOut, report.RenderSummary(res))
			}

			if a.cfg.Output.MetricsFile != "" {
				if err := a.metrics.WriteTextfile(a.cfg.Output.MetricsFile); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntP("workers", "w", 0, "parallel BFS partitions (0 = one per CPU)")
	flags.IntP("top", "n", 10, "size of the ranked top-node lists")
	flags.Bool("normalize", false, "scale betweenness by 2/((N-1)(N-2))")
	flags.Float64("threshold", 6.0, "separation threshold for the six-degrees verdict")
	flags.StringP("output", "o", "", "write the JSON result to this file instead of stdout")
	flags.Bool("compress", false, "snappy-compress the JSON result file")
	flags.String("metrics-file", "", "write Prometheus metrics in textfile format")
	flags.Bool("summary", true, "print the styled console summary")

	return cmd
}

func (a *app) applyAnalyzeFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("workers") {
		if a.cfg.Analysis.Workers, err = flags.GetInt("workers"); err != nil {
			return err
		}
	}
	if flags.Changed("top") {
		if a.cfg.Analysis.TopN, err = flags.GetInt("top"); err != nil {
			return err
		}
	}
	if flags.Changed("normalize") {
		if a.cfg.Analysis.Normalize, err = flags.GetBool("normalize"); err != nil {
			return err
		}
	}
	if flags.Changed("threshold") {
		if a.cfg.Analysis.SeparationThreshold, err = flags.GetFloat64("threshold"); err != nil {
			return err
		}
	}
	if flags.Changed("output") {
		if a.cfg.Output.Path, err = flags.GetString("output"); err != nil {
			return err
		}
	}
	if flags.Changed("compress") {
		if a.cfg.Output.Compress, err = flags.GetBool("compress"); err != nil {
			return err
		}
	}
	if flags.Changed("metrics-file") {
		if a.cfg.Output.MetricsFile, err = flags.GetString("metrics-file"); err != nil {
			return err
		}
	}
	if flags.Changed("summary") {
		if a.cfg.Output.Summary, err = flags.GetBool("summary"); err != nil {
			return err
		}
	}
	return nil
}
