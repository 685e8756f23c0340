package render

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-graphviz"

	"github.com/sparsegraph/sparsegraph/core"
	"github.com/sparsegraph/sparsegraph/spanning"
)

// Options configures DOT generation.
type Options struct {
	// Tree, when non-nil, highlights the spanning tree's arcs
	// (predecessor → node) in bold and annotates nodes with their
	// distance from the root.
	Tree *spanning.TreeResult

	// ShowWeights labels every arc with its weight.
	ShowWeights bool
}

// ToDOT renders g as Graphviz DOT text. Output is deterministic: nodes in
// index order, arcs sorted by target.
func ToDOT(g core.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("\n")

	for id := 0; id < g.Order(); id++ {
		label := fmt.Sprintf("%d", id)
		if opts.Tree != nil {
			if id == opts.Tree.Root {
				label += "\\nroot"
			} else if opts.Tree.Reaches(id) {
				label += fmt.Sprintf("\\n%g", opts.Tree.Distances[id])
			}
		}
		fmt.Fprintf(&buf, "  %d [label=\"%s\"];\n", id, label)
	}

	buf.WriteString("\n")
	for from := 0; from < g.Order(); from++ {
		targets := make([]int, 0, len(g.Neighbors(from)))
		for to := range g.Neighbors(from) {
			targets = append(targets, to)
		}
		sort.Ints(targets)
		for _, to := range targets {
			attrs := []string{}
			if opts.ShowWeights {
				attrs = append(attrs, fmt.Sprintf("label=\"%g\"", g.Neighbors(from)[to]))
			}
			if opts.Tree != nil && opts.Tree.Predecessors[to] == from {
				attrs = append(attrs, "penwidth=2.5")
			}
			if len(attrs) == 0 {
				fmt.Fprintf(&buf, "  %d -> %d;\n", from, to)
				continue
			}
			fmt.Fprintf(&buf, "  %d -> %d [", from, to)
			for i, a := range attrs {
				if i > 0 {
					buf.WriteString(", ")
				}
				buf.WriteString(a)
			}
			buf.WriteString("];\n")
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

// SVG lays out a DOT document with the embedded Graphviz engine and
// returns the rendered SVG bytes.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
