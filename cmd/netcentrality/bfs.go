package main

import (
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-netcentrality/pkg/algorithms"
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
	"github.com/dd0wney/cluso-netcentrality/pkg/logging"
	"github.com/dd0wney/cluso-netcentrality/pkg/report"
)

func newBFSCmd(a *app) *cobra.Command {
	var (
		from    uint64
		maxHops int
	)

	cmd := &cobra.Command{
		Use:   "bfs [source] --from NODE",
		Short: "Print hop distances from one node",
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

			g := graph.Build(edges)
			if maxHops > 0 {
				hood, err := algorithms.KHopNeighbours(g, from, algorithms.KHopOptions{MaxHops: maxHops})
				if err != nil {
					return err
				}
				a.logger.Info("bfs finished",
					logging.NodeID(from),
					logging.Int("max_hops", maxHops),
					logging.Int("reached", hood.TotalReachable),
					logging.Bool("truncated", hood.Truncated))
				return report.WriteDistances(cmd.OutOrStdout(), hood.Distances)
			}

			dist, err := algorithms.ShortestPaths(g, from)
			if err != nil {
				return err
			}
			a.logger.Info("bfs finished", logging.NodeID(from), logging.Int("reached", len(dist)-1))
			return report.WriteDistances(cmd.OutOrStdout(), dist)
		},
	}

	cmd.Flags().Uint64Var(&from, "from", 0, "BFS source node identifier")
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "only list nodes within this many hops, excluding the source (0 = unlimited)")
	cmd.MarkFlagRequired("from")

	return cmd
}
