package output

import (
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where leaf descriptions start.
	descriptionColumn = 30
)

// TreeNode represents a node in a rendered tree. Children are rendered in
// the order given.
type TreeNode struct {
	Name        string
	Description string
	Children    []*TreeNode
}

// Add appends a child node and returns it.
func (n *TreeNode) Add(name, description string) *TreeNode {
	child := &TreeNode{Name: name, Description: description}
	n.Children = append(n.Children, child)
	return child
}

// RenderTree renders a tree with descriptions aligned at column 30. The root
// name is rendered bold and child names are rendered as given, so callers
// may pre-style them.
func RenderTree(root *TreeNode) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleSummary.Render(node.Name))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		line := prefix + connector + node.Name
		if node.Description != "" {
			padding := descriptionColumn - visibleWidth(line)
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			line += StyleDim.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}
		renderNode(sb, child, childPrefix, false, i == len(node.Children)-1)
	}
}

// visibleWidth counts runes outside ANSI escape sequences.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}
