package main

import (
	"testing"

	"github.com/halvard/graphgram/builder"
	"github.com/halvard/graphgram/graph"
)

func buildForTest(ctor builder.Constructor) (*graph.Graph, error) {
	return builder.BuildGraph(false, nil, ctor)
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes([]string{"4", "7"})
	if err != nil {
		t.Fatalf("parseSizes: %v", err)
	}
	if len(sizes) != 2 || sizes[0] != 4 || sizes[1] != 7 {
		t.Errorf("parseSizes = %v, want [4 7]", sizes)
	}

	if _, err := parseSizes([]string{"not-a-number"}); err == nil {
		t.Error("expected an error for a non-numeric size")
	}
}

func TestShapeConstructorKnownShapes(t *testing.T) {
	for _, shape := range []string{"cycle", "path", "star", "wheel", "complete", "bipartite", "grid", "random"} {
		if _, err := shapeConstructor(shape, nil, 0.5); err != nil {
			t.Errorf("shapeConstructor(%q): %v", shape, err)
		}
	}
}

func TestShapeConstructorUnknownShape(t *testing.T) {
	if _, err := shapeConstructor("nonagon", nil, 0.5); err == nil {
		t.Error("expected an error for an unknown shape")
	}
}

func TestShapeConstructorUsesSizes(t *testing.T) {
	ctor, err := shapeConstructor("cycle", []int{6}, 0.5)
	if err != nil {
		t.Fatalf("shapeConstructor: %v", err)
	}
	g, err := buildForTest(ctor)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if g.NumNodes() != 6 {
		t.Errorf("Cycle size override: got %d nodes, want 6", g.NumNodes())
	}
}

func TestIDSchemeOptionKnownSchemes(t *testing.T) {
	for _, scheme := range []string{"decimal", "symbol", "excel", "hex", "alphanumeric", "none"} {
		if _, err := idSchemeOption(scheme); err != nil {
			t.Errorf("idSchemeOption(%q): %v", scheme, err)
		}
	}
}

func TestIDSchemeOptionUnknownScheme(t *testing.T) {
	if _, err := idSchemeOption("roman-numerals"); err == nil {
		t.Error("expected an error for an unknown tag scheme")
	}
}

// The default --tags scheme must actually tag every generated node: an
// untagged host graph can never match a grammar rule whose left side
// names a tag.
func TestGenerateDefaultSchemeTagsEveryNode(t *testing.T) {
	ctor, err := shapeConstructor("cycle", []int{4}, 0.5)
	if err != nil {
		t.Fatalf("shapeConstructor: %v", err)
	}
	idOpt, err := idSchemeOption("decimal")
	if err != nil {
		t.Fatalf("idSchemeOption: %v", err)
	}
	g, err := builder.BuildGraph(false, []builder.BuilderOption{idOpt}, ctor)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	for _, id := range g.Nodes() {
		tag, _ := g.NodeTag(id)
		if tag == nil {
			t.Errorf("node %d: expected a tag under the decimal scheme, got none", id)
		}
	}
}
