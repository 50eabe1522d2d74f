package outline

import (
	"reflect"
	"testing"

	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/outline/numbering"
)

func node(id, label string, children ...model.OutlineNode) model.OutlineNode {
	return model.OutlineNode{ID: id, Label: label, Children: children}
}

func TestScanUsages(t *testing.T) {
	blocks := []model.OutlineBlock{
		{
			ID: "definitions",
			Tree: []model.OutlineNode{
				node("a", "Acme Corp means the Delaware corporation",
					node("a1", "Acme Corp includes its subsidiaries"),
					node("a2", "excluding third-party affiliates"),
				),
				node("b", "the Party shall notify Acme Corp"),
			},
		},
	}
	style := numbering.Legal()

	t.Run("zero-match nodes are omitted", func(t *testing.T) {
		usages := ScanUsages("Party", blocks, style)
		if len(usages) != 1 {
			t.Fatalf("got %d usages, want 1: %+v", len(usages), usages)
		}
		if usages[0].NodeID != "b" {
			t.Errorf("usage node = %s, want b", usages[0].NodeID)
		}
		if usages[0].Count != 1 {
			t.Errorf("count = %d, want 1", usages[0].Count)
		}
	})

	t.Run("count is per-node occurrences", func(t *testing.T) {
		single := []model.OutlineBlock{{
			ID:   "b1",
			Tree: []model.OutlineNode{node("n", "Acme Corp, Acme Corp, and Acme Corp")},
		}}
		usages := ScanUsages("Acme Corp", single, style)
		if len(usages) != 1 {
			t.Fatalf("got %d usages, want 1", len(usages))
		}
		if usages[0].Count != 3 {
			t.Errorf("count = %d, want 3", usages[0].Count)
		}
	})

	t.Run("traversal order equals reading order", func(t *testing.T) {
		usages := ScanUsages("Acme Corp", blocks, style)
		var order []string
		for _, u := range usages {
			order = append(order, u.NodeID)
		}
		want := []string{"a", "a1", "b"}
		if !reflect.DeepEqual(order, want) {
			t.Errorf("order = %v, want %v", order, want)
		}
	})

	t.Run("prefixes follow legal style", func(t *testing.T) {
		usages := ScanUsages("Acme Corp", blocks, style)
		want := map[string]string{"a": "1", "a1": "1.a", "b": "2"}
		for _, u := range usages {
			if u.NodePrefix != want[u.NodeID] {
				t.Errorf("node %s prefix = %q, want %q", u.NodeID, u.NodePrefix, want[u.NodeID])
			}
		}
	})

	t.Run("prefix determinism under fixed style", func(t *testing.T) {
		first := ScanUsages("Acme Corp", blocks, style)
		second := ScanUsages("Acme Corp", blocks, style)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeated scans differ:\n%+v\n%+v", first, second)
		}
	})

	t.Run("empty match text returns nothing", func(t *testing.T) {
		if usages := ScanUsages("   ", blocks, style); usages != nil {
			t.Errorf("got %+v, want nil", usages)
		}
	})

	t.Run("node label snapshot is kept", func(t *testing.T) {
		usages := ScanUsages("Party", blocks, style)
		if usages[0].NodeLabel != "the Party shall notify Acme Corp" {
			t.Errorf("label = %q", usages[0].NodeLabel)
		}
	})
}

func TestScanUsagesSiblingCountersReset(t *testing.T) {
	// Tree [A[A1, A2], B[B1]]: B1 is the first child of B, so its prefix
	// uses index 1 at its depth, not a continuation of A's children.
	blocks := []model.OutlineBlock{{
		ID: "main",
		Tree: []model.OutlineNode{
			node("A", "clause", node("A1", "clause"), node("A2", "clause")),
			node("B", "clause", node("B1", "clause")),
		},
	}}

	usages := ScanUsages("clause", blocks, numbering.Legal())
	prefixes := map[string]string{}
	for _, u := range usages {
		prefixes[u.NodeID] = u.NodePrefix
	}

	want := map[string]string{"A": "1", "A1": "1.a", "A2": "1.b", "B": "2", "B1": "2.a"}
	if !reflect.DeepEqual(prefixes, want) {
		t.Errorf("prefixes = %v, want %v", prefixes, want)
	}
}

func TestScanUsagesAddressingRestartsPerBlock(t *testing.T) {
	blocks := []model.OutlineBlock{
		{ID: "first", Tree: []model.OutlineNode{node("x", "Deposit")}},
		{ID: "second", Tree: []model.OutlineNode{node("y", "Deposit")}},
	}

	usages := ScanUsages("Deposit", blocks, numbering.Legal())
	if len(usages) != 2 {
		t.Fatalf("got %d usages, want 2", len(usages))
	}
	for _, u := range usages {
		if u.NodePrefix != "1" {
			t.Errorf("block %s prefix = %q, want %q (addresses restart per block)", u.BlockID, u.NodePrefix, "1")
		}
	}
	if usages[0].BlockID != "first" || usages[1].BlockID != "second" {
		t.Errorf("block order = %s, %s", usages[0].BlockID, usages[1].BlockID)
	}
}

func TestScanUsagesDeepNesting(t *testing.T) {
	blocks := []model.OutlineBlock{{
		ID: "main",
		Tree: []model.OutlineNode{
			node("1", "top",
				node("1a", "mid",
					node("1ai", "Closing Date occurs"),
					node("1aii", "filler"),
					node("1aiii", "Closing Date again"),
				),
			),
		},
	}}

	usages := ScanUsages("Closing Date", blocks, numbering.Legal())
	if len(usages) != 2 {
		t.Fatalf("got %d usages, want 2", len(usages))
	}
	if usages[0].NodePrefix != "1.a.i" {
		t.Errorf("first prefix = %q, want 1.a.i", usages[0].NodePrefix)
	}
	if usages[1].NodePrefix != "1.a.iii" {
		t.Errorf("second prefix = %q, want 1.a.iii", usages[1].NodePrefix)
	}
}
