package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/sparsegraph/sparsegraph/render"
	"github.com/sparsegraph/sparsegraph/spanning"
)

// treeOpts holds the flags of the tree command.
type treeOpts struct {
	graphPath string
	root      int
	dot       bool
	svgPath   string
}

// treeOutput is the JSON document printed on success. Unreachable nodes
// carry null distances, since JSON has no +Inf.
type treeOutput struct {
	Root         int        `json:"root"`
	Predecessors []int      `json:"predecessors"`
	Distances    []*float64 `json:"distances"`
}

func newTreeCmd() *cobra.Command {
	opts := treeOpts{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow the shortest-path spanning tree from a root node",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := loadGraph(opts.graphPath)
			if err != nil {
				return err
			}

			tree, err := spanning.Tree(g, opts.root)
			if err != nil {
				return err
			}
			reached := 0
			for id := range tree.Distances {
				if tree.Reaches(id) {
					reached++
				}
			}
			logger.Debugf("tree from %d reaches %d/%d nodes", opts.root, reached, g.Order())

			if opts.dot || opts.svgPath != "" {
				dot := render.ToDOT(g, render.Options{Tree: &tree, ShowWeights: true})
				if opts.svgPath != "" {
					svg, err := render.SVG(dot)
					if err != nil {
						return err
					}
					if err := os.WriteFile(opts.svgPath, svg, 0o644); err != nil {
						return fmt.Errorf("write svg: %w", err)
					}
					logger.Infof("wrote %s", opts.svgPath)
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), dot)
				return nil
			}

			out := treeOutput{
				Root:         tree.Root,
				Predecessors: tree.Predecessors,
				Distances:    make([]*float64, len(tree.Distances)),
			}
			for i, d := range tree.Distances {
				if !math.IsInf(d, 1) {
					v := d
					out.Distances[i] = &v
				}
			}
			encoded, err := json.Marshal(out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.graphPath, "graph", "g", "", "graph file (.json adjacency or .toml manifest)")
	cmd.Flags().IntVar(&opts.root, "root", 0, "root node index")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "print Graphviz DOT instead of JSON")
	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "render the tree to an SVG file")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
