package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dd0wney/cluso-netcentrality/pkg/algorithms"
	"github.com/dd0wney/cluso-netcentrality/pkg/analysis"
)

// RenderSummary renders a styled overview of a full analysis run.
func RenderSummary(res *analysis.Result) string {
	header := titleStyle.Render("Network centrality report") +
		subtleStyle.Render(" run "+res.RunID)

	paths := box("Shortest paths", [][2]string{
		{"Average path length", humanize.FtoaWithDigits(res.Paths.AveragePathLength, 4)},
		{"Avg degrees of separation", humanize.FtoaWithDigits(res.Paths.AverageDegreesOfSeparation, 4)},
		{"Reachable pairs", commaUint(res.Paths.ReachablePairs, res.Paths.Overflowed)},
		{"Total path length", commaUint(res.Paths.TotalPathLength, res.Paths.Overflowed)},
		{"Six degrees (≤ " + humanize.Ftoa(res.SixDegrees.Threshold) + ")", verdict(res.SixDegrees.Holds)},
	})

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		graphBox(res.Graph),
		paths,
	)

	ranks := lipgloss.JoinHorizontal(lipgloss.Top,
		rankingBox("Top degree", res.TopDegree),
		rankingBox("Top betweenness", res.TopBetweenness),
	)

	var timings []string
	for _, s := range res.Stages {
		timings = append(timings, fmt.Sprintf("%s %s", s.Name, formatDuration(s.Duration)))
	}
	footer := subtleStyle.Render(fmt.Sprintf("%d workers · %s · total %s",
		res.Workers, strings.Join(timings, ", "), formatDuration(res.Elapsed())))

	return lipgloss.JoinVertical(lipgloss.Left, header, top, ranks, footer) + "\n"
}

// RenderGraphSummary renders only the graph summary box.
func RenderGraphSummary(source string, summary analysis.GraphSummary) string {
	header := titleStyle.Render("Graph summary") + subtleStyle.Render(" "+source)
	return lipgloss.JoinVertical(lipgloss.Left, header, graphBox(summary)) + "\n"
}

// WriteDistances prints "node<TAB>distance" lines ordered by distance, then
// by node identifier.
func WriteDistances(w io.Writer, dist algorithms.DistanceMap) error {
	ids := make([]uint64, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if dist[ids[i]] != dist[ids[j]] {
			return dist[ids[i]] < dist[ids[j]]
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", id, dist[id]); err != nil {
			return err
		}
	}
	return nil
}

func graphBox(s analysis.GraphSummary) string {
	rows := [][2]string{
		{"Nodes", humanize.Comma(int64(s.Nodes))},
		{"Edges", humanize.Comma(int64(s.Edges))},
		{"Density", humanize.FtoaWithDigits(s.Density, 6)},
		{"Components", humanize.Comma(int64(s.Components))},
		{"Largest component", humanize.Comma(int64(s.LargestComponent))},
		{"Triangles", humanize.Comma(int64(s.Triangles))},
		{"Avg clustering", humanize.FtoaWithDigits(s.AverageClustering, 4)},
	}
	if s.MinDegree != nil {
		rows = append(rows, [2]string{"Min degree", fmt.Sprintf("%d (node %d)", s.MinDegree.Degree, s.MinDegree.NodeID)})
	}
	if s.MaxDegree != nil {
		rows = append(rows, [2]string{"Max degree", fmt.Sprintf("%d (node %d)", s.MaxDegree.Degree, s.MaxDegree.NodeID)})
	}
	if s.SelfLoopsDropped > 0 || s.DuplicateEdges > 0 {
		rows = append(rows, [2]string{"Dropped", fmt.Sprintf("%s self-loops, %s duplicates",
			humanize.Comma(int64(s.SelfLoopsDropped)), humanize.Comma(int64(s.DuplicateEdges)))})
	}
	return box("Graph", rows)
}

func rankingBox(title string, nodes []algorithms.RankedNode) string {
	if len(nodes) == 0 {
		return box(title, [][2]string{{"(none)", ""}})
	}
	rows := make([][2]string, 0, len(nodes))
	for i, n := range nodes {
		rows = append(rows, [2]string{
			fmt.Sprintf("%2d. node %d", i+1, n.NodeID),
			humanize.FtoaWithDigits(n.Score, 4),
		})
	}
	return box(title, rows)
}

func box(title string, rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}

	lines := []string{titleStyle.Render(title)}
	for _, r := range rows {
		label := labelStyle.Render(r[0] + strings.Repeat(" ", width-lipgloss.Width(r[0])))
		lines = append(lines, label+"  "+r[1])
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func verdict(holds bool) string {
	if holds {
		return passStyle.Render("holds")
	}
	return failStyle.Render("rejected")
}

func commaUint(v uint64, saturated bool) string {
	if v > math.MaxInt64 {
		return humanize.Comma(math.MaxInt64) + "+"
	}
	s := humanize.Comma(int64(v))
	if saturated {
		s += " (saturated)"
	}
	return s
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(100 * time.Microsecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}
