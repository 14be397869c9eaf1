package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"kreator-projektow/internal/tokens"

	"github.com/go-chi/chi/v5"
)

type SaveTokenRequest struct {
	Token string `json:"token" example:"ghp_xxxxxxxxxxxxxxxxxxxx"`
}

type TokenStatusResponse struct {
	Provider   string `json:"provider" example:"github"`
	Configured bool   `json:"configured"`
	Masked     string `json:"masked,omitempty" example:"ghp_****"`
}

// maskToken keeps just enough of the prefix to recognize which token was
// saved. The raw value never leaves the store through the API.
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}

// @Summary      Save a publishing token
// @Description  Stores the bearer token for a publishing provider (github or huggingface). The value is opaque and never returned in full.
// @Tags         tokens
// @Accept       json
// @Security     BearerAuth
// @Param        provider          path  string            true  "Provider name"  Enums(github, huggingface)
// @Param        saveTokenRequest  body  SaveTokenRequest  true  "Bearer token"
// @Success      204  {null}    nil "No Content"
// @Failure      400  {string}  string "Bad Request"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /tokens/{provider} [put]
func (s *Server) SaveTokenHandler(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	if !tokens.ValidProvider(provider) {
		http.Error(w, "Unknown provider", http.StatusBadRequest)
		return
	}

	var req SaveTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		http.Error(w, "Token cannot be empty", http.StatusBadRequest)
		return
	}

	if err := s.tokens.Save(provider, strings.TrimSpace(req.Token)); err != nil {
		http.Error(w, "Failed to save token", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Get token status
// @Description  Reports whether a token is configured for the provider. Only a masked prefix is returned.
// @Tags         tokens
// @Produce      json
// @Security     BearerAuth
// @Param        provider  path      string  true  "Provider name"  Enums(github, huggingface)
// @Success      200       {object}  TokenStatusResponse
// @Failure      400       {string}  string "Bad Request"
// @Failure      500       {string}  string "Internal Server Error"
// @Router       /tokens/{provider} [get]
func (s *Server) GetTokenStatusHandler(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	if !tokens.ValidProvider(provider) {
		http.Error(w, "Unknown provider", http.StatusBadRequest)
		return
	}

	token, err := s.tokens.Get(provider)
	if err != nil {
		http.Error(w, "Failed to read token", http.StatusInternalServerError)
		return
	}

	resp := TokenStatusResponse{Provider: provider, Configured: token != ""}
	if resp.Configured {
		resp.Masked = maskToken(token)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// @Summary      Delete a publishing token
// @Tags         tokens
// @Security     BearerAuth
// @Param        provider  path  string  true  "Provider name"  Enums(github, huggingface)
// @Success      204  {null}    nil "No Content"
// @Failure      400  {string}  string "Bad Request"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /tokens/{provider} [delete]
func (s *Server) DeleteTokenHandler(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	if !tokens.ValidProvider(provider) {
		http.Error(w, "Unknown provider", http.StatusBadRequest)
		return
	}

	if err := s.tokens.Delete(provider); err != nil {
		http.Error(w, "Failed to delete token", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
