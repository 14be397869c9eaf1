package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kreator-projektow/internal/database"
	"kreator-projektow/internal/models"
	"kreator-projektow/internal/tree"

	"github.com/go-chi/chi/v5"
	"github.com/jaevor/go-nanoid"
)

type CreateProjectRequest struct {
	Name string `json:"name" example:"Mój projekt"`
}

func (s *Server) generateUniqueID(ctx context.Context) (string, error) {
	maxRetries := 10

	generateID, err := nanoid.Standard(21)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	for i := 0; i < maxRetries; i++ {
		id := generateID()
		exists, err := s.store.ProjectExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check for project existence: %w", err)
		}
		if !exists {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

// @Summary      Create a project
// @Description  Creates a new, empty project for the authenticated user.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        createProjectRequest  body      CreateProjectRequest  true  "Project name"
// @Success      201                   {object}  models.Project
// @Failure      400                   {string}  string "Invalid request body"
// @Failure      409                   {string}  string "Duplicate project name"
// @Failure      500                   {string}  string "Internal Server Error"
// @Router       /projects [post]
func (s *Server) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "Project name cannot be empty", http.StatusBadRequest)
		return
	}

	projectID, err := s.generateUniqueID(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	project, err := s.store.CreateProject(r.Context(), database.CreateProjectParams{
		ID:      projectID,
		OwnerID: claims.UserID,
		Name:    req.Name,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateProjectName) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	s.store.LogEvent(r.Context(), claims.UserID, "project_created", map[string]string{"project_id": project.ID, "name": project.Name})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(project)
}

// @Summary      List projects
// @Description  Lists the authenticated user's projects, most recently modified first.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Project
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /projects [get]
func (s *Server) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	projects, err := s.store.ListProjects(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Failed to list projects", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

// @Summary      Get a project
// @Description  Retrieves a single project, including its full tree document.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project ID"
// @Success      200        {object}  models.Project
// @Failure      404        {string}  string "Project not found"
// @Failure      500        {string}  string "Internal Server Error"
// @Router       /projects/{projectId} [get]
func (s *Server) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	project, err := s.store.GetProjectByID(r.Context(), projectID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

type UpdateProjectRequest struct {
	Name           *string `json:"name"`
	SelectedNodeID *string `json:"selected_node_id"`
}

// @Summary      Update a project
// @Description  Renames a project and/or moves the node selection. Passing "selected_node_id": null clears the selection.
// @Tags         projects
// @Accept       json
// @Security     BearerAuth
// @Param        projectId             path  string                true  "Project ID"
// @Param        updateProjectRequest  body  UpdateProjectRequest  true  "Fields to update"
// @Success      200  {null}    nil
// @Failure      400  {string}  string "Bad Request"
// @Failure      404  {string}  string "Project not found"
// @Failure      409  {string}  string "Duplicate project name"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /projects/{projectId} [patch]
func (s *Server) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	body, err := decodeRawFields(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var updated bool

	if raw, ok := body["name"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil || strings.TrimSpace(name) == "" {
			http.Error(w, "Name cannot be empty", http.StatusBadRequest)
			return
		}

		success, err := s.store.RenameProject(r.Context(), projectID, claims.UserID, strings.TrimSpace(name))
		if err != nil {
			if errors.Is(err, database.ErrDuplicateProjectName) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, "Failed to rename project", http.StatusInternalServerError)
			return
		}
		if !success {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		updated = true
	}

	if raw, ok := body["selected_node_id"]; ok {
		var selected *string
		if err := json.Unmarshal(raw, &selected); err != nil {
			http.Error(w, "Invalid selected_node_id", http.StatusBadRequest)
			return
		}

		if selected != nil {
			project, err := s.store.GetProjectByID(r.Context(), projectID, claims.UserID)
			if err != nil {
				http.Error(w, "Failed to retrieve project", http.StatusInternalServerError)
				return
			}
			if project == nil {
				http.Error(w, "Project not found", http.StatusNotFound)
				return
			}
			forest, err := project.Forest()
			if err != nil {
				http.Error(w, "Stored tree document is corrupted", http.StatusInternalServerError)
				return
			}
			if tree.FindByID(forest, *selected) == nil {
				http.Error(w, "Selected node does not exist in the project tree", http.StatusBadRequest)
				return
			}
		}

		success, err := s.store.UpdateSelectedNode(r.Context(), projectID, claims.UserID, selected)
		if err != nil {
			http.Error(w, "Failed to update selection", http.StatusInternalServerError)
			return
		}
		if !success {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		updated = true
	}

	if !updated {
		http.Error(w, "No update operation specified (provide 'name' or 'selected_node_id')", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// decodeRawFields keeps field presence visible, so "field": null can be
// told apart from an absent field.
func decodeRawFields(r *http.Request) (map[string]json.RawMessage, error) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        projectId  path  string  true  "Project ID"
// @Success      204  {null}    nil "No Content"
// @Failure      404  {string}  string "Project not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /projects/{projectId} [delete]
func (s *Server) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	success, err := s.store.DeleteProject(r.Context(), projectID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}
	if !success {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	s.store.LogEvent(r.Context(), claims.UserID, "project_deleted", map[string]string{"project_id": projectID})

	w.WriteHeader(http.StatusNoContent)
}

type ImportStructureRequest struct {
	Text string `json:"text" example:"app/\n├── main.py\n└── requirements.txt"`
}

// @Summary      Import a tree listing
// @Description  Parses a pasted tree listing (indentation or box-drawing style) and replaces the project's tree with the parsed forest. A listing that yields no nodes leaves the project untouched.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId               path      string                  true  "Project ID"
// @Param        importStructureRequest  body      ImportStructureRequest  true  "Tree listing text"
// @Success      200                     {object}  models.Project
// @Failure      400                     {string}  string "Invalid request body"
// @Failure      404                     {string}  string "Project not found"
// @Failure      500                     {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/import [post]
func (s *Server) ImportStructureHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	var req ImportStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	project, err := s.store.GetProjectByID(r.Context(), projectID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	forest := tree.ParseListing(req.Text)
	if len(forest) > 0 {
		if err := s.saveForest(r, project, forest, nil); err != nil {
			http.Error(w, "Failed to save imported tree", http.StatusInternalServerError)
			return
		}
		s.store.LogEvent(r.Context(), claims.UserID, "project_imported", map[string]interface{}{
			"project_id": projectID,
			"node_count": tree.CountNodes(forest),
		})
	}

	project, err = s.store.GetProjectByID(r.Context(), projectID, claims.UserID)
	if err != nil || project == nil {
		http.Error(w, "Failed to retrieve project", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

// saveForest serializes the forest back into the project row. The caller
// decides what happens to the selection.
func (s *Server) saveForest(r *http.Request, project *models.Project, forest []*models.Node, selected *string) error {
	doc, err := json.Marshal(forest)
	if err != nil {
		return err
	}
	ok, err := s.store.UpdateProjectTree(r.Context(), project.ID, project.OwnerID, doc, selected)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("project disappeared during update")
	}
	return nil
}

type InsertNodeRequest struct {
	Name     string `json:"name" example:"main.py"`
	NodeType string `json:"type" example:"file"`
}

// @Summary      Insert a root node
// @Description  Inserts a new file or folder at the top level of the project's forest. Files receive an extension-based default content stub.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId          path      string             true  "Project ID"
// @Param        insertNodeRequest  body      InsertNodeRequest  true  "Node name and type"
// @Success      201                {object}  models.Node
// @Failure      400                {string}  string "Bad Request"
// @Failure      404                {string}  string "Project not found"
// @Failure      500                {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/nodes [post]
func (s *Server) InsertRootNodeHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	var req InsertNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "Node name cannot be empty", http.StatusBadRequest)
		return
	}
	if req.NodeType != models.NodeTypeFile && req.NodeType != models.NodeTypeFolder {
		http.Error(w, "Node type must be 'file' or 'folder'", http.StatusBadRequest)
		return
	}

	project, err := s.store.GetProjectByID(r.Context(), projectID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	forest, err := project.Forest()
	if err != nil {
		http.Error(w, "Stored tree document is corrupted", http.StatusInternalServerError)
		return
	}

	generateID, err := nanoid.Standard(21)
	if err != nil {
		http.Error(w, "Internal server error (id generation)", http.StatusInternalServerError)
		return
	}

	node := &models.Node{
		ID:       generateID(),
		Name:     strings.TrimSpace(req.Name),
		NodeType: req.NodeType,
	}
	if node.NodeType == models.NodeTypeFile {
		content := tree.DefaultContent(node.Name)
		node.Content = &content
	}

	forest = tree.InsertRoot(forest, node)
	if err := s.saveForest(r, project, forest, project.SelectedNodeID); err != nil {
		http.Error(w, "Failed to save tree", http.StatusInternalServerError)
		return
	}

	s.store.LogEvent(r.Context(), claims.UserID, "node_inserted", map[string]string{
		"project_id": projectID,
		"node_id":    node.ID,
		"name":       node.Name,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(node)
}

type UpdateNodeContentRequest struct {
	Content string `json:"content"`
}

// @Summary      Update file content
// @Description  Replaces the content of a file node. Folders have no content and are rejected.
// @Tags         projects
// @Accept       json
// @Security     BearerAuth
// @Param        projectId                 path  string                    true  "Project ID"
// @Param        nodeId                    path  string                    true  "Node ID"
// @Param        updateNodeContentRequest  body  UpdateNodeContentRequest  true  "New content"
// @Success      200  {null}    nil
// @Failure      400  {string}  string "Bad Request"
// @Failure      404  {string}  string "Project or node not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/nodes/{nodeId} [patch]
func (s *Server) UpdateNodeContentHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")
	nodeID := chi.URLParam(r, "nodeId")

	var req UpdateNodeContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	project, err := s.store.GetProjectByID(r.Context(), projectID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	forest, err := project.Forest()
	if err != nil {
		http.Error(w, "Stored tree document is corrupted", http.StatusInternalServerError)
		return
	}

	newForest, changed := tree.UpdateContent(forest, nodeID, req.Content)
	if !changed {
		http.Error(w, "File node not found", http.StatusNotFound)
		return
	}

	if err := s.saveForest(r, project, newForest, project.SelectedNodeID); err != nil {
		http.Error(w, "Failed to save tree", http.StatusInternalServerError)
		return
	}

	s.store.LogEvent(r.Context(), claims.UserID, "node_content_updated", map[string]string{
		"project_id": projectID,
		"node_id":    nodeID,
	})

	w.WriteHeader(http.StatusOK)
}

// @Summary      Delete a node
// @Description  Removes a node (and its whole subtree) from the project's forest. Deleting the currently selected node clears the selection.
// @Tags         projects
// @Security     BearerAuth
// @Param        projectId  path  string  true  "Project ID"
// @Param        nodeId     path  string  true  "Node ID"
// @Success      204  {null}    nil "No Content"
// @Failure      404  {string}  string "Project or node not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/nodes/{nodeId} [delete]
func (s *Server) DeleteNodeHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")
	nodeID := chi.URLParam(r, "nodeId")

	project, err := s.store.GetProjectByID(r.Context(), projectID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	forest, err := project.Forest()
	if err != nil {
		http.Error(w, "Stored tree document is corrupted", http.StatusInternalServerError)
		return
	}

	newForest, removed := tree.DeleteByID(forest, nodeID)
	if !removed {
		http.Error(w, "Node not found", http.StatusNotFound)
		return
	}

	selected := project.SelectedNodeID
	if selected != nil && (*selected == nodeID || tree.FindByID(newForest, *selected) == nil) {
		selected = nil
	}

	if err := s.saveForest(r, project, newForest, selected); err != nil {
		http.Error(w, "Failed to save tree", http.StatusInternalServerError)
		return
	}

	s.store.LogEvent(r.Context(), claims.UserID, "node_deleted", map[string]string{
		"project_id": projectID,
		"node_id":    nodeID,
	})

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Export a project
// @Description  Serializes the project's forest to the canonical JSON document as a downloadable attachment. Importing the document back yields an identical forest.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path  string  true  "Project ID"
// @Success      200  {array}   models.Node
// @Failure      404  {string}  string "Project not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/export [get]
func (s *Server) ExportProjectHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	project, err := s.store.GetProjectByID(r.Context(), projectID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	forest, err := project.Forest()
	if err != nil {
		http.Error(w, "Stored tree document is corrupted", http.StatusInternalServerError)
		return
	}

	doc, err := json.MarshalIndent(forest, "", "  ")
	if err != nil {
		http.Error(w, "Failed to serialize project", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", project.Name+".json"))
	w.Write(doc)
}
