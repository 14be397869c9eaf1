package models

const (
	NodeTypeFile   = "file"
	NodeTypeFolder = "folder"
)

// Node to pojedynczy element drzewa projektu.
// A file carries content, a folder carries an ordered list of children.
// The top-level value stored with a project is an ordered slice of root
// nodes (a forest), not a single tree.
type Node struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	NodeType string  `json:"type"`
	Content  *string `json:"content,omitempty"`
	Children []*Node `json:"children,omitempty"`
	ParentID *string `json:"parent_id,omitempty"`
}

func (n *Node) IsFolder() bool {
	return n.NodeType == NodeTypeFolder
}
