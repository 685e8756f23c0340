package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparsegraph/sparsegraph/core"
	"github.com/sparsegraph/sparsegraph/dijkstra"
)

// routeOpts holds the flags of the route command.
type routeOpts struct {
	graphPath string
	from      int
	to        int
	algo      string
}

// routeOutput is the JSON document printed on success.
type routeOutput struct {
	Path   []int   `json:"path"`
	Length float64 `json:"length"`
}

func newRouteCmd() *cobra.Command {
	opts := routeOpts{}

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute the shortest path between two nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := loadGraph(opts.graphPath)
			if err != nil {
				return err
			}
			logger.Debugf("loaded graph with %d nodes", g.Order())

			var run func(core.Graph, int, int) (dijkstra.PathResult, error)
			switch opts.algo {
			case "heap":
				run = dijkstra.ShortestPathHeap
			case "linear":
				run = dijkstra.ShortestPathLinear
			default:
				return fmt.Errorf("unknown algorithm %q (want heap or linear)", opts.algo)
			}

			res, err := run(g, opts.from, opts.to)
			if err != nil {
				return err
			}
			logger.Debugf("route %d→%d visits %d nodes", opts.from, opts.to, len(res.Path))

			out, err := json.Marshal(routeOutput{Path: res.Path, Length: res.Length})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.graphPath, "graph", "g", "", "graph file (.json adjacency or .toml manifest)")
	cmd.Flags().IntVar(&opts.from, "from", 0, "origin node index")
	cmd.Flags().IntVar(&opts.to, "to", 0, "destination node index")
	cmd.Flags().StringVar(&opts.algo, "algo", "heap", "algorithm: heap or linear")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
