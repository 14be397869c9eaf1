package tree

import (
	"encoding/json"
	"testing"

	"kreator-projektow/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleForest(t *testing.T) []*models.Node {
	t.Helper()
	return ParseListing("app/\n├── main.py\n└── sub/\n    └── deep.py\nREADME.md\n")
}

func TestInsertRoot(t *testing.T) {
	forest := sampleForest(t)
	before, err := json.Marshal(forest)
	require.NoError(t, err)

	node := &models.Node{ID: "nowy", Name: "extra.py", NodeType: models.NodeTypeFile, Content: strPtr("")}
	out := InsertRoot(forest, node)

	require.Len(t, out, len(forest)+1)
	require.Same(t, node, out[len(out)-1])

	// Wejściowy las pozostaje nietknięty.
	after, err := json.Marshal(forest)
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestDeleteByID_Nested(t *testing.T) {
	forest := sampleForest(t)
	app := forest[0]
	deep := app.Children[1].Children[0]
	require.Equal(t, "deep.py", deep.Name)

	out, removed := DeleteByID(forest, deep.ID)

	require.True(t, removed)
	require.Nil(t, FindByID(out, deep.ID))
	require.Equal(t, CountNodes(forest)-1, CountNodes(out))

	// Oryginał nie został zmodyfikowany.
	require.NotNil(t, FindByID(forest, deep.ID))
}

func TestDeleteByID_RootAndMissing(t *testing.T) {
	forest := sampleForest(t)

	out, removed := DeleteByID(forest, forest[0].ID)
	require.True(t, removed)
	require.Len(t, out, 1)
	require.Equal(t, "README.md", out[0].Name)

	out2, removed2 := DeleteByID(forest, "nie-istnieje")
	require.False(t, removed2)
	require.Equal(t, CountNodes(forest), CountNodes(out2))
}

func TestDeleteByID_RemovesWholeSubtree(t *testing.T) {
	forest := sampleForest(t)
	sub := forest[0].Children[1]
	require.Equal(t, "sub", sub.Name)

	out, removed := DeleteByID(forest, sub.ID)
	require.True(t, removed)
	require.Nil(t, FindByID(out, sub.ID))
	require.Nil(t, FindByID(out, sub.Children[0].ID), "children go away with their folder")
}

func TestUpdateContent(t *testing.T) {
	forest := sampleForest(t)
	deep := forest[0].Children[1].Children[0]
	originalContent := *deep.Content

	out, updated := UpdateContent(forest, deep.ID, "import os\n")

	require.True(t, updated)
	got := FindByID(out, deep.ID)
	require.NotNil(t, got)
	require.Equal(t, "import os\n", *got.Content)

	// Stary węzeł zachowuje starą treść, rodzeństwo i kolejność bez zmian.
	require.Equal(t, originalContent, *deep.Content)
	require.Equal(t, "main.py", out[0].Children[0].Name)
	require.Equal(t, "README.md", out[1].Name)
	require.Same(t, forest[0].Children[0], out[0].Children[0], "untouched subtrees are shared")
}

func TestUpdateContent_MissingAndFolder(t *testing.T) {
	forest := sampleForest(t)

	_, updated := UpdateContent(forest, "nie-istnieje", "x")
	require.False(t, updated)

	// Folder nie ma treści - aktualizacja po jego id jest no-opem.
	_, updated = UpdateContent(forest, forest[0].ID, "x")
	require.False(t, updated)
}

func TestFindByID(t *testing.T) {
	forest := sampleForest(t)
	deep := forest[0].Children[1].Children[0]

	require.Same(t, deep, FindByID(forest, deep.ID))
	require.Nil(t, FindByID(forest, "brak"))
}
