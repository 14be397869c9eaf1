package models

import (
	"encoding/json"
	"time"
)

type Project struct {
	ID             string          `json:"id"`
	OwnerID        int64           `json:"owner_id"`
	Name           string          `json:"name"`
	Tree           json.RawMessage `json:"tree" swaggertype:"object"`
	SelectedNodeID *string         `json:"selected_node_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ModifiedAt     time.Time       `json:"modified_at"`
}

// Forest decodes the stored tree document into node form.
func (p *Project) Forest() ([]*Node, error) {
	if len(p.Tree) == 0 {
		return []*Node{}, nil
	}
	var forest []*Node
	if err := json.Unmarshal(p.Tree, &forest); err != nil {
		return nil, err
	}
	if forest == nil {
		forest = []*Node{}
	}
	return forest, nil
}
