package output

import (
	"strings"
	"testing"
)

func TestRenderTreeLines_Empty(t *testing.T) {
	if lines := RenderTreeLines(nil, TreeRenderOptions{}); len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderTreeLines_Connectors(t *testing.T) {
	nodes := []TreeNode{
		{ID: "fruits", Label: "fruits", Count: 2},
		{ID: "people", Label: "people", Count: 1},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "├── fruits [2]" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "└── people [1]" {
		t.Errorf("last line = %q", lines[1])
	}
}

func TestRenderTreeLines_WithChildren(t *testing.T) {
	nodes := []TreeNode{
		{
			Label: "fruits",
			Count: 2,
			Children: []TreeNode{
				{ID: "apple", Label: "Apple"},
				{ID: "banana", Label: "Banana", Marked: true},
			},
		},
		{
			Label:    "people",
			Count:    1,
			Children: []TreeNode{{ID: "ada-lovelace", Label: "Ada Lovelace"}},
		},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{ShowIDs: true})

	want := []string{
		"├── fruits [2]",
		"│   ├── Apple (apple)",
		"│   └── Banana (banana) ✓",
		"└── people [1]",
		"    └── Ada Lovelace (ada-lovelace)",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderTreeLines_MaxDepth(t *testing.T) {
	nodes := []TreeNode{
		{Label: "fruits", Children: []TreeNode{{Label: "Apple"}}},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{MaxDepth: 1})
	if len(lines) != 1 {
		t.Errorf("MaxDepth 1 should hide items, got %q", lines)
	}
}

func TestRenderTree_SkipsRoot(t *testing.T) {
	root := TreeNode{Label: "catalog", Children: []TreeNode{{Label: "fruits"}}}
	if got := RenderTree(root, TreeRenderOptions{}); got != "└── fruits" {
		t.Errorf("RenderTree() = %q", got)
	}
}
