package network

import (
	"slices"
	"testing"

	errs "github.com/matzehuels/genomeviz/pkg/errors"
)

func TestNeuronTypeColor(t *testing.T) {
	tests := []struct {
		typ  NeuronType
		want string
	}{
		{Hidden, "white"},
		{Input, "blue"},
		{Output, "red"},
		{Bias, "yellow"},
		{NeuronType(7), "yellow"},
		{NeuronType(-1), "yellow"},
	}

	for _, tt := range tests {
		if got := tt.typ.Color(); got != tt.want {
			t.Errorf("NeuronType(%d).Color() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestNeuronTypeString(t *testing.T) {
	if got := Output.String(); got != "output" {
		t.Errorf("Output.String() = %q, want %q", got, "output")
	}
	if got := NeuronType(9).String(); got != "unknown(9)" {
		t.Errorf("NeuronType(9).String() = %q, want %q", got, "unknown(9)")
	}
}

func TestAddNodeKeepsDeclarationOrder(t *testing.T) {
	net := New()
	net.AddNode(3, Input)
	net.AddNode(1, Bias)
	net.AddNode(2, Output)
	net.AddNode(1, Hidden) // redeclared: replaced in place

	var ids []int
	for _, n := range net.Nodes() {
		ids = append(ids, n.ID)
	}
	if want := []int{3, 1, 2}; !slices.Equal(ids, want) {
		t.Errorf("node order = %v, want %v", ids, want)
	}

	n, ok := net.Node(1)
	if !ok {
		t.Fatal("Node(1) not found")
	}
	if n.Type != Hidden {
		t.Errorf("Node(1).Type = %v, want %v", n.Type, Hidden)
	}
	if net.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", net.NodeCount())
	}
}

func TestAddLinkKeepsDuplicates(t *testing.T) {
	net := New()
	net.AddLink(1, 2, 0.5)
	net.AddLink(1, 2, -0.5)
	net.AddLink(9, 9, 1.0)

	links := net.Links()
	if len(links) != 3 {
		t.Fatalf("LinkCount = %d, want 3", len(links))
	}
	if links[1].Weight != -0.5 {
		t.Errorf("links[1].Weight = %v, want -0.5", links[1].Weight)
	}
	if !links[2].IsSelfLink() {
		t.Error("links[2] should be a self-link")
	}

	// Links returns a copy.
	links[0].Weight = 100
	if net.Links()[0].Weight != 0.5 {
		t.Error("Links() should not expose internal storage")
	}
}

func TestBuildGraphEndToEnd(t *testing.T) {
	net := New()
	net.AddNode(1, Input)
	net.AddNode(2, Output)
	net.AddLink(1, 2, 3.0)

	g, err := net.BuildGraph()
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("graph has %d nodes, %d edges; want 2, 1", g.NodeCount(), g.EdgeCount())
	}
	e, ok := g.Edge(1, 2)
	if !ok {
		t.Fatal("edge 1 -> 2 missing")
	}
	if e.Attrs[AttrWeight] != 1.5 {
		t.Errorf("weight = %v, want 1.5", e.Attrs[AttrWeight])
	}

	for id, want := range map[int]string{1: "blue", 2: "red"} {
		n, ok := g.Node(id)
		if !ok {
			t.Fatalf("vertex %d missing", id)
		}
		if n.Attrs[AttrColor] != want {
			t.Errorf("vertex %d color = %v, want %v", id, n.Attrs[AttrColor], want)
		}
	}
}

func TestBuildGraphSelfLink(t *testing.T) {
	net := New()
	net.AddNode(4, Hidden)
	net.AddLink(4, 4, 2.0)

	g, err := net.BuildGraph()
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	edges := g.EdgesBetween(4, 4)
	if len(edges) != 2 {
		t.Fatalf("self-link produced %d edges, want a 2-edge cycle", len(edges))
	}
	for _, e := range edges {
		if e.Attrs[AttrWeight] != 1.5 {
			t.Errorf("cycle edge weight = %v, want 1.5", e.Attrs[AttrWeight])
		}
	}
}

func TestBuildGraphDuplicateLinksLastWins(t *testing.T) {
	net := New()
	net.AddNode(1, Input)
	net.AddNode(2, Output)
	net.AddLink(1, 2, -1.0)
	net.AddLink(1, 2, 1.0)

	g, err := net.BuildGraph()
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	// minw=-1, maxw=1, span=2: the later link normalizes to 0.5 + 2/2.
	e, _ := g.Edge(1, 2)
	if e.Attrs[AttrWeight] != 1.5 {
		t.Errorf("weight = %v, want 1.5", e.Attrs[AttrWeight])
	}
}

func TestBuildGraphIncorrectLink(t *testing.T) {
	tests := []struct {
		name    string
		in, out int
	}{
		{"unknown source", 9, 2},
		{"unknown target", 1, 9},
		{"unknown self-link", 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := New()
			net.AddNode(1, Input)
			net.AddNode(2, Output)
			net.AddLink(1, 2, 1.0)
			net.AddLink(tt.in, tt.out, 1.0)

			g, err := net.BuildGraph()
			if g != nil {
				t.Error("BuildGraph should not return a partial graph")
			}
			if !errs.Is(err, errs.ErrCodeIncorrectLink) {
				t.Errorf("error = %v, want code %s", err, errs.ErrCodeIncorrectLink)
			}
		})
	}
}

func TestBuildGraphNormalizesOnce(t *testing.T) {
	net := New()
	net.AddNode(1, Input)
	net.AddNode(2, Output)
	net.AddNode(3, Output)
	net.AddLink(1, 2, 1.0)
	net.AddLink(1, 3, 3.0)

	first, err := net.BuildGraph()
	if err != nil {
		t.Fatalf("first BuildGraph: %v", err)
	}
	second, err := net.BuildGraph()
	if err != nil {
		t.Fatalf("second BuildGraph: %v", err)
	}

	for _, to := range []int{2, 3} {
		a, _ := first.Edge(1, to)
		b, _ := second.Edge(1, to)
		if a.Attrs[AttrWeight] != b.Attrs[AttrWeight] {
			t.Errorf("edge 1 -> %d weight changed between builds: %v then %v",
				to, a.Attrs[AttrWeight], b.Attrs[AttrWeight])
		}
	}
	if w := net.Links()[0].Weight; w != 1.0 {
		t.Errorf("weight after two builds = %v, want 1.0", w)
	}
}

func TestBuildGraphAfterExplicitNormalize(t *testing.T) {
	net := New()
	net.AddNode(1, Input)
	net.AddNode(2, Output)
	net.AddLink(1, 2, 3.0)

	if err := net.Normalize(1.0); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	g, err := net.BuildGraph()
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	e, _ := g.Edge(1, 2)
	if e.Attrs[AttrWeight] != 2.0 {
		t.Errorf("weight = %v, want 2.0 (offset from explicit Normalize)", e.Attrs[AttrWeight])
	}
}

func TestBuildGraphEmpty(t *testing.T) {
	g, err := New().BuildGraph()
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("empty network built %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestStats(t *testing.T) {
	net := New()
	net.AddNode(1, Input)
	net.AddNode(2, Input)
	net.AddNode(3, Bias)
	net.AddNode(4, Output)
	net.AddLink(1, 4, -2.5)
	net.AddLink(2, 4, 0.75)
	net.AddLink(4, 4, 1.25)

	s := net.Stats()
	if s.Nodes != 4 || s.Links != 3 || s.SelfLinks != 1 {
		t.Errorf("Stats = %+v, want 4 nodes, 3 links, 1 self-link", s)
	}
	if s.ByType[Input] != 2 || s.ByType[Bias] != 1 || s.ByType[Output] != 1 || s.ByType[Hidden] != 0 {
		t.Errorf("ByType = %v", s.ByType)
	}
	if s.MinWeight != -2.5 || s.MaxWeight != 1.25 {
		t.Errorf("weight range = [%v, %v], want [-2.5, 1.25]", s.MinWeight, s.MaxWeight)
	}

	if empty := New().Stats(); empty.MinWeight != 0 || empty.MaxWeight != 0 {
		t.Errorf("empty weight range = [%v, %v], want [0, 0]", empty.MinWeight, empty.MaxWeight)
	}
}
