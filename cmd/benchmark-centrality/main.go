package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dd0wney/cluso-netcentrality/pkg/algorithms"
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
)

func main() {
	nodes := flag.Int("nodes", 1000, "Number of nodes to create")
	edges := flag.Int("edges", 3000, "Number of edges to create")
	workerList := flag.String("workers", "1,2,4,8", "Comma-separated worker counts to compare")
	seed := flag.Int64("seed", 42, "Random seed for the generated graph")
	flag.Parse()

	workers, err := parseWorkers(*workerList)
	if err != nil {
		log.Fatalf("Invalid -workers: %v", err)
	}

	fmt.Printf("🔥 Network Centrality Benchmark\n")
	fmt.Printf("===============================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Nodes: %s\n", humanize.Comma(int64(*nodes)))
	fmt.Printf("  Edges: %s\n", humanize.Comma(int64(*edges)))
	fmt.Printf("  Workers: %v\n\n", workers)

	fmt.Printf("🔗 Generating random graph...\n")
	start := time.Now()
	g := graph.Build(randomEdges(rand.New(rand.NewSource(*seed)), *nodes, *edges))
	stats := g.Stats()
	fmt.Printf("✅ Built graph in %v\n", time.Since(start))
	fmt.Printf("  Nodes: %d, distinct edges: %d, duplicates collapsed: %d\n",
		g.NodeCount(), g.EdgeCount(), stats.DuplicateEdges)

	fmt.Printf("\n📊 Benchmark 1: Degree Centrality\n")
	start = time.Now()
	degree := algorithms.DegreeCentrality(g)
	fmt.Printf("✅ Degree Centrality completed in %v\n", time.Since(start))
	printTop("Degree", algorithms.TopNodes(degree, 5))

	fmt.Printf("\n📊 Benchmark 2: Betweenness Centrality\n")
	var baseline time.Duration
	var betweenness map[uint64]float64
	for _, w := range workers {
		start = time.Now()
		betweenness, err = algorithms.BetweennessCentrality(g, algorithms.BetweennessOptions{Workers: w})
		if err != nil {
			log.Fatalf("Betweenness Centrality failed: %v", err)
		}
		elapsed := time.Since(start)
		if baseline == 0 {
			baseline = elapsed
		}
		fmt.Printf("  %2d workers: %-14v speedup %.2fx\n", w, elapsed, float64(baseline)/float64(elapsed))
	}
	printTop("Betweenness", algorithms.TopNodes(betweenness, 5))

	fmt.Printf("\n📊 Benchmark 3: Path Statistics\n")
	baseline = 0
	var profile *algorithms.PathProfile
	for _, w := range workers {
		start = time.Now()
		profile, err = algorithms.ProfilePaths(g, algorithms.PathOptions{Workers: w})
		if err != nil {
			log.Fatalf("Path statistics failed: %v", err)
		}
		elapsed := time.Since(start)
		if baseline == 0 {
			baseline = elapsed
		}
		fmt.Printf("  %2d workers: %-14v speedup %.2fx\n", w, elapsed, float64(baseline)/float64(elapsed))
	}

	fmt.Printf("\n📊 Benchmark 4: Connected Components\n")
	start = time.Now()
	components := algorithms.ConnectedComponents(g)
	fmt.Printf("✅ Connected Components completed in %v\n", time.Since(start))

	fmt.Printf("\n🎯 Summary\n")
	fmt.Printf("==========\n")
	fmt.Printf("  Components: %d (largest %d nodes)\n", components.Count(), components.LargestSize())
	fmt.Printf("  Reachable pairs: %s\n", humanize.Comma(int64(profile.Stats.ReachablePairs)))
	fmt.Printf("  Average path length: %.4f\n", profile.Stats.AveragePathLength)
	fmt.Printf("  Average degrees of separation: %.4f\n", profile.Stats.AverageDegreesOfSeparation)
	fmt.Printf("  Six degrees: %v\n", algorithms.ValidateSixDegrees(profile.Stats.AveragePathLength))

	fmt.Printf("\n✅ Benchmark complete!\n")
}

// randomEdges draws edges uniformly between nodes 0..n-1, avoiding self-loops.
func randomEdges(rng *rand.Rand, n, m int) []graph.Edge {
	if n < 2 {
		return nil
	}
	edges := make([]graph.Edge, 0, m)
	for i := 0; i < m; i++ {
		from := rng.Intn(n)
		to := rng.Intn(n)
		if from == to {
			to = (to + 1) % n
		}
		edges = append(edges, graph.Edge{From: uint64(from), To: uint64(to)})
	}
	return edges
}

func parseWorkers(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if w <= 0 {
			return nil, fmt.Errorf("worker count %d must be positive", w)
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no worker counts given")
	}
	return out, nil
}

func printTop(label string, nodes []algorithms.RankedNode) {
	fmt.Printf("  Top %d nodes by %s:\n", len(nodes), label)
	for i, node := range nodes {
		fmt.Printf("    %d. Node %d (score: %.6f)\n", i+1, node.NodeID, node.Score)
	}
}
