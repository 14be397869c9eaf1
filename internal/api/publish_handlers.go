package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"kreator-projektow/internal/models"
	"kreator-projektow/internal/publish"
	"kreator-projektow/internal/tokens"

	"github.com/go-chi/chi/v5"
)

type PublishGitHubRequest struct {
	Name        string `json:"name" example:"moj-projekt"`
	Description string `json:"description" example:"Wygenerowane przez Kreator Projektów"`
	Private     bool   `json:"private"`
}

type PublishSpaceRequest struct {
	Name    string `json:"name" example:"moj-projekt"`
	Private bool   `json:"private"`
	SDK     string `json:"sdk" example:"gradio"`
	License string `json:"license" example:"mit"`
	Title   string `json:"title" example:"Mój projekt"`
}

type PublishResponse struct {
	State    string            `json:"state" example:"done"`
	URL      string            `json:"url,omitempty"`
	Uploaded []string          `json:"uploaded"`
	Failed   map[string]string `json:"failed,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// @Summary      Publish a project to GitHub
// @Description  Creates a new GitHub repository and uploads every flattened entry of the project's tree. Per-file failures are reported in the response but do not abort the run.
// @Tags         publish
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId             path      string                true  "Project ID"
// @Param        publishGitHubRequest  body      PublishGitHubRequest  true  "Repository options"
// @Success      200                   {object}  PublishResponse
// @Failure      400                   {object}  PublishResponse "Validation failed"
// @Failure      404                   {string}  string "Project not found"
// @Failure      502                   {object}  PublishResponse "Remote rejected the request"
// @Failure      500                   {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/publish/github [post]
func (s *Server) PublishGitHubHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	var req PublishGitHubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	forest, ok := s.loadForest(w, r, projectID, claims.UserID)
	if !ok {
		return
	}

	token, err := s.tokens.Get(tokens.ProviderGitHub)
	if err != nil {
		http.Error(w, "Failed to read stored token", http.StatusInternalServerError)
		return
	}

	result, err := s.github.Publish(r.Context(), token, publish.GitHubOptions{
		Name:        req.Name,
		Description: req.Description,
		Private:     req.Private,
	}, forest)

	recordPublishRun("github", string(result.State))
	s.store.LogEvent(r.Context(), claims.UserID, "project_published", map[string]interface{}{
		"project_id": projectID,
		"target":     "github",
		"state":      string(result.State),
	})

	writePublishResult(w, result, err)
}

// @Summary      Publish a project as a Hugging Face Space
// @Description  Creates a new Space and uploads every flattened entry plus a synthesized README descriptor. Uploads retry while the Space is still provisioning; any other failure aborts the run.
// @Tags         publish
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId            path      string               true  "Project ID"
// @Param        publishSpaceRequest  body      PublishSpaceRequest  true  "Space options"
// @Success      200                  {object}  PublishResponse
// @Failure      400                  {object}  PublishResponse "Validation failed"
// @Failure      404                  {string}  string "Project not found"
// @Failure      502                  {object}  PublishResponse "Remote rejected the request or an upload failed"
// @Failure      500                  {string}  string "Internal Server Error"
// @Router       /projects/{projectId}/publish/space [post]
func (s *Server) PublishSpaceHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	projectID := chi.URLParam(r, "projectId")

	var req PublishSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	forest, ok := s.loadForest(w, r, projectID, claims.UserID)
	if !ok {
		return
	}

	token, err := s.tokens.Get(tokens.ProviderHuggingFace)
	if err != nil {
		http.Error(w, "Failed to read stored token", http.StatusInternalServerError)
		return
	}

	result, err := s.spaces.Publish(r.Context(), token, publish.SpaceOptions{
		Name:    req.Name,
		Private: req.Private,
		SDK:     req.SDK,
		License: req.License,
		Title:   req.Title,
	}, forest)

	recordPublishRun("space", string(result.State))
	s.store.LogEvent(r.Context(), claims.UserID, "project_published", map[string]interface{}{
		"project_id": projectID,
		"target":     "space",
		"state":      string(result.State),
	})

	writePublishResult(w, result, err)
}

func (s *Server) loadForest(w http.ResponseWriter, r *http.Request, projectID string, userID int64) ([]*models.Node, bool) {
	project, err := s.store.GetProjectByID(r.Context(), projectID, userID)
	if err != nil {
		http.Error(w, "Failed to retrieve project", http.StatusInternalServerError)
		return nil, false
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return nil, false
	}

	forest, err := project.Forest()
	if err != nil {
		http.Error(w, "Stored tree document is corrupted", http.StatusInternalServerError)
		return nil, false
	}
	return forest, true
}

// writePublishResult maps the publish error taxonomy to HTTP statuses:
// validation problems are the caller's fault (400), remote rejections and
// upload failures are upstream faults (502).
func writePublishResult(w http.ResponseWriter, result *publish.Result, err error) {
	resp := PublishResponse{
		State:    string(result.State),
		URL:      result.URL,
		Uploaded: result.Uploaded,
		Failed:   result.Failed,
	}

	status := http.StatusOK
	if err != nil {
		resp.Error = err.Error()

		var validationErr *publish.ValidationError
		var rejection *publish.RemoteRejection
		var uploadErr *publish.UploadFailure
		switch {
		case errors.As(err, &validationErr):
			status = http.StatusBadRequest
		case errors.As(err, &rejection), errors.As(err, &uploadErr):
			status = http.StatusBadGateway
		default:
			log.Printf("ERROR: unexpected publish failure: %v", err)
			status = http.StatusInternalServerError
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
