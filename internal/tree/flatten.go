package tree

import "kreator-projektow/internal/models"

// Entry is a single flattened file: a /-joined path relative to the
// project root (no leading slash) and its content.
type Entry struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Flatten walks the forest depth-first in pre-order and returns one entry
// per file. An empty folder yields a single "<path>/.gitkeep" entry with
// empty content, since path-addressed remote stores cannot represent an
// empty directory.
func Flatten(forest []*models.Node) []Entry {
	var entries []Entry
	for _, n := range forest {
		entries = flattenNode(n, "", entries)
	}
	return entries
}

func flattenNode(n *models.Node, prefix string, entries []Entry) []Entry {
	path := n.Name
	if prefix != "" {
		path = prefix + "/" + n.Name
	}

	if !n.IsFolder() {
		content := ""
		if n.Content != nil {
			content = *n.Content
		}
		return append(entries, Entry{Path: path, Content: content})
	}

	if len(n.Children) == 0 {
		return append(entries, Entry{Path: path + "/.gitkeep", Content: ""})
	}

	for _, child := range n.Children {
		entries = flattenNode(child, path, entries)
	}
	return entries
}
