package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sparsegraph/sparsegraph/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGraph_JSON(t *testing.T) {
	path := writeFile(t, "g.json", `[
		{"1": 1.0, "2": 4.0},
		{"0": 1.0, "2": 2.0, "3": 5.0},
		{"0": 4.0, "1": 2.0, "3": 1.0},
		{"1": 5.0, "2": 1.0}
	]`)

	g, err := loadGraph(path)
	if err != nil {
		t.Fatal(err)
	}

	want := core.Graph{
		{1: 1.0, 2: 4.0},
		{0: 1.0, 2: 2.0, 3: 5.0},
		{0: 4.0, 1: 2.0, 3: 1.0},
		{1: 5.0, 2: 1.0},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("graph mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadGraph_JSONEdgelessNode(t *testing.T) {
	path := writeFile(t, "g.json", `[{}, {"0": 2.0}]`)
	g, err := loadGraph(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.Order() != 2 || g.Neighbors(0) != nil {
		t.Errorf("want 2 nodes with an edgeless node 0, got %v", g)
	}
}

func TestLoadGraph_TOMLSymmetric(t *testing.T) {
	path := writeFile(t, "g.toml", `
nodes = 3
symmetric = true

[[edges]]
from = 0
to = 1
weight = 2.0

[[edges]]
from = 1
to = 2
weight = 1.0
`)

	g, err := loadGraph(path)
	if err != nil {
		t.Fatal(err)
	}

	want := core.Graph{
		{1: 2.0},
		{0: 2.0, 2: 1.0},
		{1: 1.0},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("graph mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadGraph_TOMLDirected(t *testing.T) {
	path := writeFile(t, "g.toml", `
nodes = 2

[[edges]]
from = 0
to = 1
weight = 3.0
`)

	g, err := loadGraph(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Neighbors(1)[0]; ok {
		t.Error("directed manifest must not mirror edges")
	}
}

func TestLoadGraph_Failures(t *testing.T) {
	cases := []struct {
		name, file, content string
	}{
		{"bad extension", "g.yaml", "nodes = 1"},
		{"bad json", "g.json", `{"not": "an array"}`},
		{"non-integer key", "g.json", `[{"x": 1.0}]`},
		{"neighbor out of range", "g.json", `[{"5": 1.0}]`},
		{"negative weight", "g.json", `[{"1": -1.0}, {}]`},
		{"zero nodes", "g.toml", "nodes = 0"},
		{"edge out of range", "g.toml", "nodes = 1\n[[edges]]\nfrom = 0\nto = 3\nweight = 1.0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadGraph(writeFile(t, tc.file, tc.content)); err == nil {
				t.Errorf("loadGraph accepted %s", tc.name)
			}
		})
	}
}

func TestLoadGraph_MissingFile(t *testing.T) {
	if _, err := loadGraph(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("loadGraph accepted a missing file")
	}
}
