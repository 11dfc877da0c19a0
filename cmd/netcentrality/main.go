// Command netcentrality computes degree and betweenness centrality, average
// path length and the six-degrees verdict for an undirected edge list.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-netcentrality/pkg/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, newRootCmd(newApp())))
}

// run executes the command tree and maps its error to an exit code. Failures
// go through the default logger, which PersistentPreRunE points at the
// configured one.
func run(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		logging.Warn("command cancelled")
		return 130
	default:
		logging.ErrorLog("command failed", logging.Error(err))
		return 1
	}
}
