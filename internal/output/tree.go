package output

import (
	"fmt"
	"strings"
)

// TreeNode is one line of a tree: a catalog list or one of its items.
type TreeNode struct {
	ID       string
	Label    string
	Count    int  // shown for lists
	Marked   bool // the last pick
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth int  // 0 = unlimited
	ShowIDs  bool // print item ids next to labels
}

const (
	branch = "\u251c\u2500\u2500 " // ├──
	last   = "\u2514\u2500\u2500 " // └──
	pipe   = "\u2502   "           // │
)

// RenderTree renders the children of root
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	return strings.Join(RenderTreeLines(root.Children, opts), "\n")
}

// RenderTreeLines renders several roots and returns individual lines
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string
	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := branch
		childPrefix := prefix + pipe
		if isLast {
			connector = last
			childPrefix = prefix + "    "
		}

		lines = append(lines, prefix+connector+nodeText(node, opts))
		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}
	return lines
}

func nodeText(node TreeNode, opts TreeRenderOptions) string {
	var sb strings.Builder
	sb.WriteString(node.Label)
	if opts.ShowIDs && node.ID != "" && node.ID != node.Label {
		fmt.Fprintf(&sb, " (%s)", node.ID)
	}
	if node.Count > 0 {
		fmt.Fprintf(&sb, " [%d]", node.Count)
	}
	if node.Marked {
		sb.WriteString(" \u2713") // ✓
	}
	return sb.String()
}
