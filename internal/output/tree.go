package output

import (
	"slices"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 40
)

// TreeNode is a directory or file in a rendered tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

func (n *TreeNode) child(name string, isDir bool) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := &TreeNode{Name: name, IsDir: isDir}
	n.Children = append(n.Children, c)
	return c
}

// BuildTree arranges slash-separated paths under a root directory node.
// descriptions may be nil.
func BuildTree(rootName string, paths []string, descriptions map[string]string) *TreeNode {
	root := &TreeNode{Name: rootName, IsDir: true}

	for _, p := range paths {
		parts := strings.Split(p, "/")
		current := root
		for i, part := range parts {
			last := i == len(parts)-1
			current = current.child(part, !last)
			if last {
				current.Description = descriptions[p]
			}
		}
	}

	sortTree(root)
	return root
}

// sortTree orders children directories first, then alphabetically.
func sortTree(node *TreeNode) {
	slices.SortFunc(node.Children, func(a, b *TreeNode) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	for _, c := range node.Children {
		sortTree(c)
	}
}

// RenderFileTree renders paths as a tree with descriptions aligned in a column.
func RenderFileTree(rootName string, paths []string, descriptions map[string]string) string {
	if len(paths) == 0 {
		return ""
	}

	var sb strings.Builder
	styles := GetStyles()

	root := BuildTree(rootName, paths, descriptions)
	sb.WriteString(styles.Bold.Render(root.Name + "/"))
	sb.WriteString("\n")

	for i, c := range root.Children {
		renderNode(&sb, styles, c, "", i == len(root.Children)-1)
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, styles Styles, node *TreeNode, prefix string, isLast bool) {
	connector, childPrefix := treeEdge, prefix+treeVert
	if isLast {
		connector, childPrefix = treeLast, prefix+treeSpace
	}

	name := node.Name
	if node.IsDir {
		name += "/"
	}
	line := prefix + connector + name

	if node.Description != "" {
		// Box-drawing runes are multi-byte; pad on rune count.
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + styles.Muted.Render(node.Description)
	}

	sb.WriteString(line)
	sb.WriteString("\n")

	for i, c := range node.Children {
		renderNode(sb, styles, c, childPrefix, i == len(node.Children)-1)
	}
}
