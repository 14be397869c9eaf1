package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kreator-projektow/internal/database"
	"kreator-projektow/internal/models"
	"kreator-projektow/internal/tree"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// Funkcja pomocnicza do tworzenia projektów w testach API
func createTestProjectAPI(t *testing.T, name string) *models.Project {
	id, err := testServer.generateUniqueID(context.Background())
	require.NoError(t, err)

	project, err := testServer.store.CreateProject(context.Background(), database.CreateProjectParams{
		ID:      id,
		OwnerID: testUserClaims.UserID,
		Name:    name,
	})
	require.NoError(t, err)
	return project
}

func authedRequest(t *testing.T, method, url string, payload interface{}) *http.Request {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Authorization", "Bearer "+testUserToken)
	return req
}

func projectRouter() chi.Router {
	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(testServer.AuthMiddleware)
		r.Get("/projects", testServer.ListProjectsHandler)
		r.Post("/projects", testServer.CreateProjectHandler)
		r.Get("/projects/{projectId}", testServer.GetProjectHandler)
		r.Patch("/projects/{projectId}", testServer.UpdateProjectHandler)
		r.Delete("/projects/{projectId}", testServer.DeleteProjectHandler)
		r.Post("/projects/{projectId}/import", testServer.ImportStructureHandler)
		r.Post("/projects/{projectId}/nodes", testServer.InsertRootNodeHandler)
		r.Patch("/projects/{projectId}/nodes/{nodeId}", testServer.UpdateNodeContentHandler)
		r.Delete("/projects/{projectId}/nodes/{nodeId}", testServer.DeleteNodeHandler)
		r.Get("/projects/{projectId}/export", testServer.ExportProjectHandler)
	})
	return router
}

func TestAPI_CreateProject(t *testing.T) {
	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects", CreateProjectRequest{Name: "Projekt API Sukces"}))

	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, "Projekt API Sukces", created.Name)
	require.Len(t, created.ID, 21)

	// Pusta nazwa
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects", CreateProjectRequest{Name: "  "}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// Duplikat nazwy
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects", CreateProjectRequest{Name: "Projekt API Sukces"}))
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestAPI_GetProject(t *testing.T) {
	project := createTestProjectAPI(t, "Projekt do pobrania")

	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "GET", "/api/v1/projects/"+project.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var found models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &found))
	require.Equal(t, project.ID, found.ID)

	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "GET", "/api/v1/projects/nie_ma_takiego_proj1", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_ImportStructure(t *testing.T) {
	project := createTestProjectAPI(t, "Projekt do importu")

	listing := "my-project/src/\n├── app/\n│   ├── main.py\n│   └── utils.py\n├── requirements.txt\n└── README.md\n"
	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects/"+project.ID+"/import", ImportStructureRequest{Text: listing}))

	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))

	forest, err := updated.Forest()
	require.NoError(t, err)
	require.Len(t, forest, 3) // app/, requirements.txt, README.md (etykieta my-project/src/ jest pomijana)
	require.Equal(t, "app", forest[0].Name)
	require.Len(t, forest[0].Children, 2)
	require.Equal(t, "requirements.txt", forest[1].Name)
}

func TestAPI_ImportStructure_EmptyListingIsNoOp(t *testing.T) {
	project := createTestProjectAPI(t, "Projekt no-op import")

	// Najpierw zaimportuj coś
	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects/"+project.ID+"/import", ImportStructureRequest{Text: "main.py\n"}))
	require.Equal(t, http.StatusOK, rr.Code)

	// Pusty listing nie może wyczyścić drzewa
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects/"+project.ID+"/import", ImportStructureRequest{Text: "\n\n"}))
	require.Equal(t, http.StatusOK, rr.Code)

	var after models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &after))
	forest, err := after.Forest()
	require.NoError(t, err)
	require.Len(t, forest, 1)
	require.Equal(t, "main.py", forest[0].Name)
}

func TestAPI_InsertRootNode(t *testing.T) {
	project := createTestProjectAPI(t, "Projekt z węzłami")

	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects/"+project.ID+"/nodes", InsertNodeRequest{Name: "main.py", NodeType: "file"}))

	require.Equal(t, http.StatusCreated, rr.Code)
	var node models.Node
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &node))
	require.Equal(t, "main.py", node.Name)
	require.Equal(t, models.NodeTypeFile, node.NodeType)
	require.NotNil(t, node.Content) // plik dostaje domyślny szablon
	require.Contains(t, *node.Content, "def main():")

	// Nieznany typ węzła
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects/"+project.ID+"/nodes", InsertNodeRequest{Name: "x", NodeType: "symlink"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_UpdateNodeContent(t *testing.T) {
	project := createTestProjectAPI(t, "Projekt edycji treści")

	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects/"+project.ID+"/nodes", InsertNodeRequest{Name: "notes.txt", NodeType: "file"}))
	require.Equal(t, http.StatusCreated, rr.Code)
	var node models.Node
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &node))

	url := fmt.Sprintf("/api/v1/projects/%s/nodes/%s", project.ID, node.ID)
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "PATCH", url, UpdateNodeContentRequest{Content: "nowa treść"}))
	require.Equal(t, http.StatusOK, rr.Code)

	stored, err := testServer.store.GetProjectByID(context.Background(), project.ID, testUserClaims.UserID)
	require.NoError(t, err)
	forest, err := stored.Forest()
	require.NoError(t, err)
	found := tree.FindByID(forest, node.ID)
	require.NotNil(t, found)
	require.Equal(t, "nowa treść", *found.Content)

	// Nieistniejący węzeł
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "PATCH", fmt.Sprintf("/api/v1/projects/%s/nodes/brak", project.ID), UpdateNodeContentRequest{Content: "x"}))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_DeleteNode_ClearsSelection(t *testing.T) {
	project := createTestProjectAPI(t, "Projekt z zaznaczeniem")

	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects/"+project.ID+"/nodes", InsertNodeRequest{Name: "app.py", NodeType: "file"}))
	require.Equal(t, http.StatusCreated, rr.Code)
	var node models.Node
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &node))

	// Zaznacz węzeł przez PATCH projektu
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "PATCH", "/api/v1/projects/"+project.ID, map[string]interface{}{"selected_node_id": node.ID}))
	require.Equal(t, http.StatusOK, rr.Code)

	// Usunięcie zaznaczonego węzła czyści zaznaczenie
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "DELETE", fmt.Sprintf("/api/v1/projects/%s/nodes/%s", project.ID, node.ID), nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	stored, err := testServer.store.GetProjectByID(context.Background(), project.ID, testUserClaims.UserID)
	require.NoError(t, err)
	require.Nil(t, stored.SelectedNodeID)
}

func TestAPI_UpdateProject_SelectionValidation(t *testing.T) {
	project := createTestProjectAPI(t, "Projekt walidacji zaznaczenia")

	// Zaznaczenie nieistniejącego węzła jest odrzucane
	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "PATCH", "/api/v1/projects/"+project.ID, map[string]interface{}{"selected_node_id": "nie_ma_takiego_wezla"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// "selected_node_id": null czyści zaznaczenie
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "PATCH", "/api/v1/projects/"+project.ID, map[string]interface{}{"selected_node_id": nil}))
	require.Equal(t, http.StatusOK, rr.Code)

	// PATCH bez żadnego pola
	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "PATCH", "/api/v1/projects/"+project.ID, map[string]interface{}{}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_ExportProject(t *testing.T) {
	project := createTestProjectAPI(t, "Projekt eksportu")

	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "POST", "/api/v1/projects/"+project.ID+"/import", ImportStructureRequest{Text: "src/\n├── main.py\nREADME.md\n"}))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "GET", "/api/v1/projects/"+project.ID+"/export", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
	require.Contains(t, rr.Header().Get("Content-Disposition"), "Projekt eksportu.json")

	// Eksport musi być bezstratny: wczytany z powrotem daje identyczny las
	var exported []*models.Node
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &exported))

	stored, err := testServer.store.GetProjectByID(context.Background(), project.ID, testUserClaims.UserID)
	require.NoError(t, err)
	forest, err := stored.Forest()
	require.NoError(t, err)
	require.Equal(t, forest, exported)
}

func TestAPI_DeleteProject(t *testing.T) {
	project := createTestProjectAPI(t, "Projekt do skasowania")

	rr := httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "DELETE", "/api/v1/projects/"+project.ID, nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	projectRouter().ServeHTTP(rr, authedRequest(t, "GET", "/api/v1/projects/"+project.ID, nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}
