package tree

import (
	"strings"

	"kreator-projektow/internal/models"

	"github.com/jaevor/go-nanoid"
)

// Connector glyphs produced by `tree` and friends.
const boxGlyphs = "├└│─"

// frame pairs an open folder with the indentation depth it was found at.
type frame struct {
	node  *models.Node
	depth int
}

// ParseListing converts a pasted tree listing (the output of `tree`, or a
// hand-written indented list) into a forest of nodes. The format has no
// grammar, so parsing is best-effort: every line either contributes a node
// or is skipped, and there is no error case. Root nodes are returned in
// the order they were encountered.
func ParseListing(text string) []*models.Node {
	generateID, _ := nanoid.Standard(21)

	var forest []*models.Node
	var stack []frame

	for _, rawLine := range strings.Split(text, "\n") {
		if strings.TrimSpace(rawLine) == "" {
			continue
		}
		if isRootLabel(rawLine) {
			continue
		}

		cleaned := blankGlyphs(rawLine)
		depth := (len(cleaned) - len(strings.TrimLeft(cleaned, " "))) / 4

		name := strings.TrimSpace(cleaned)
		// A trailing slash marks a folder explicitly; a slash anywhere else
		// in the line is treated as a folder hint too. A file whose name
		// contains a slash is therefore misclassified - known limit.
		isFolder := strings.Contains(rawLine, "/")
		name = strings.TrimSuffix(name, "/")
		if name == "" {
			continue
		}

		node := &models.Node{
			ID:   generateID(),
			Name: name,
		}
		if isFolder {
			node.NodeType = models.NodeTypeFolder
		} else {
			node.NodeType = models.NodeTypeFile
			content := DefaultContent(name)
			node.Content = &content
		}

		// Close every open folder at the same or deeper level. The >= is
		// deliberate: a folder at the same depth ends the previous folder's
		// subtree instead of nesting inside it, which changes tree shape.
		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			forest = append(forest, node)
		} else {
			parent := stack[len(stack)-1].node
			parentID := parent.ID
			node.ParentID = &parentID
			parent.Children = append(parent.Children, node)
		}

		if node.IsFolder() {
			stack = append(stack, frame{node: node, depth: depth})
		}
	}

	if forest == nil {
		forest = []*models.Node{}
	}
	return forest
}

// blankGlyphs replaces every connector glyph with a space so that the
// remaining leading whitespace measures nesting depth. A "├── " prefix
// becomes four spaces, i.e. one 4-column indent unit.
func blankGlyphs(line string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(boxGlyphs, r) {
			return ' '
		}
		return r
	}, line)
}

// isRootLabel reports whether a line looks like a decorative project
// header ("my-project/src/") rather than a tree entry: un-indented, free
// of connector glyphs, with a slash before its final character. A plain
// top-level folder written as "name/" is kept. A header written as a
// nested path is discarded even when it was meant as a real folder -
// known ambiguity of the format, left as is.
func isRootLabel(line string) bool {
	if line != strings.TrimLeft(line, " \t") {
		return false
	}
	if strings.ContainsAny(line, boxGlyphs) {
		return false
	}
	trimmed := strings.TrimRight(strings.TrimSpace(line), "/")
	return strings.Contains(trimmed, "/")
}
