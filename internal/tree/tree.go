package tree

import "kreator-projektow/internal/models"

// The mutation helpers below are pure: they never modify nodes in place,
// so callers can diff the old and new forest directly. Untouched subtrees
// are shared between the input and the result.

// InsertRoot appends node as a new forest root.
func InsertRoot(forest []*models.Node, node *models.Node) []*models.Node {
	out := make([]*models.Node, 0, len(forest)+1)
	out = append(out, forest...)
	return append(out, node)
}

// DeleteByID removes the node with the given id from every level of the
// forest. The second return value reports whether anything was removed.
func DeleteByID(forest []*models.Node, id string) ([]*models.Node, bool) {
	removed := false
	out := make([]*models.Node, 0, len(forest))
	for _, n := range forest {
		if n.ID == id {
			removed = true
			continue
		}
		if n.IsFolder() {
			children, childRemoved := DeleteByID(n.Children, id)
			if childRemoved {
				clone := *n
				clone.Children = children
				out = append(out, &clone)
				removed = true
				continue
			}
		}
		out = append(out, n)
	}
	return out, removed
}

// UpdateContent replaces the content of the file node with the given id.
// Sibling order and unrelated subtrees are preserved; a missing id is a
// no-op and the second return value is false.
func UpdateContent(forest []*models.Node, id string, content string) ([]*models.Node, bool) {
	updated := false
	out := make([]*models.Node, 0, len(forest))
	for _, n := range forest {
		switch {
		case n.ID == id && !n.IsFolder():
			clone := *n
			c := content
			clone.Content = &c
			out = append(out, &clone)
			updated = true
		case n.IsFolder():
			children, childUpdated := UpdateContent(n.Children, id, content)
			if childUpdated {
				clone := *n
				clone.Children = children
				out = append(out, &clone)
				updated = true
			} else {
				out = append(out, n)
			}
		default:
			out = append(out, n)
		}
	}
	return out, updated
}

// FindByID returns the node with the given id, searching recursively.
func FindByID(forest []*models.Node, id string) *models.Node {
	for _, n := range forest {
		if n.ID == id {
			return n
		}
		if found := FindByID(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// CountNodes counts all nodes in the forest.
func CountNodes(forest []*models.Node) int {
	count := 0
	for _, n := range forest {
		count += 1 + CountNodes(n.Children)
	}
	return count
}
