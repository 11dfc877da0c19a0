package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-netcentrality/pkg/analysis"
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
	"github.com/dd0wney/cluso-netcentrality/pkg/report"
)

func newSummaryCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary [source]",
		Short: "Print node, edge, density and component counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyInputFlags(cmd, args)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			edges, err := a.loadEdges(cmd.Context())
			if err != nil {
				return err
			}

			summary := analysis.Summarize(graph.Build(edges))
			if asJSON {
				return report.WriteJSON(cmd.OutOrStdout(), summary, false)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderGraphSummary(a.cfg.Input.Source, summary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}
