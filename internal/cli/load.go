package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sparsegraph/sparsegraph/core"
)

// manifest is the TOML graph format: an explicit node count plus an edge
// list. symmetric=true mirrors every edge.
//
//	nodes = 4
//	symmetric = true
//
//	[[edges]]
//	from = 0
//	to = 1
//	weight = 1.0
type manifest struct {
	Nodes     int            `toml:"nodes"`
	Symmetric bool           `toml:"symmetric"`
	Edges     []manifestEdge `toml:"edges"`
}

type manifestEdge struct {
	From   int     `toml:"from"`
	To     int     `toml:"to"`
	Weight float64 `toml:"weight"`
}

// loadGraph reads a graph file, dispatching on the extension:
// .json for adjacency arrays, .toml for edge manifests. The parsed graph
// is bounds- and weight-validated before it is handed to any algorithm.
func loadGraph(path string) (core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	var g core.Graph
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		g, err = parseAdjacencyJSON(data)
	case ".toml":
		g, err = parseManifestTOML(data)
	default:
		return nil, fmt.Errorf("unsupported graph format %q (want .json or .toml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("invalid graph in %s: %w", filepath.Base(path), err)
	}

	return g, nil
}

// parseAdjacencyJSON decodes the adjacency-array format: element i is the
// edge map of node i, keyed by neighbor index.
//
//	[
//	  {"1": 1.0, "2": 4.0},
//	  {"0": 1.0, "2": 2.0, "3": 5.0},
//	  {"0": 4.0, "1": 2.0, "3": 1.0},
//	  {"1": 5.0, "2": 1.0}
//	]
func parseAdjacencyJSON(data []byte) (core.Graph, error) {
	var raw []map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	g := make(core.Graph, len(raw))
	for from, edges := range raw {
		if len(edges) == 0 {
			continue
		}
		g[from] = make(map[int]float64, len(edges))
		for key, weight := range edges {
			to, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("node %d: neighbor key %q is not an integer", from, key)
			}
			g[from][to] = weight
		}
	}

	return g, nil
}

// parseManifestTOML decodes the edge-manifest format.
func parseManifestTOML(data []byte) (core.Graph, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Nodes <= 0 {
		return nil, fmt.Errorf("manifest must declare a positive node count, got %d", m.Nodes)
	}

	g := make(core.Graph, m.Nodes)
	for i, e := range m.Edges {
		if e.From < 0 || e.From >= m.Nodes || e.To < 0 || e.To >= m.Nodes {
			return nil, fmt.Errorf("edge %d (%d→%d) outside node range [0,%d)", i, e.From, e.To, m.Nodes)
		}
		if g[e.From] == nil {
			g[e.From] = make(map[int]float64)
		}
		g[e.From][e.To] = e.Weight
		if m.Symmetric {
			if g[e.To] == nil {
				g[e.To] = make(map[int]float64)
			}
			g[e.To][e.From] = e.Weight
		}
	}

	return g, nil
}
