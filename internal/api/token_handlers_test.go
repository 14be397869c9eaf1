package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kreator-projektow/internal/tokens"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func tokenRouter() chi.Router {
	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(testServer.AuthMiddleware)
		r.Put("/tokens/{provider}", testServer.SaveTokenHandler)
		r.Get("/tokens/{provider}", testServer.GetTokenStatusHandler)
		r.Delete("/tokens/{provider}", testServer.DeleteTokenHandler)
	})
	return router
}

func TestAPI_TokenLifecycle(t *testing.T) {
	defer testServer.tokens.Delete(tokens.ProviderGitHub)

	// Przed zapisem: brak tokenu
	rr := httptest.NewRecorder()
	tokenRouter().ServeHTTP(rr, authedRequest(t, "GET", "/api/v1/tokens/github", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var status TokenStatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	require.False(t, status.Configured)
	require.Empty(t, status.Masked)

	// Zapis
	rr = httptest.NewRecorder()
	tokenRouter().ServeHTTP(rr, authedRequest(t, "PUT", "/api/v1/tokens/github", SaveTokenRequest{Token: "ghp_sekretny_token"}))
	require.Equal(t, http.StatusNoContent, rr.Code)

	// Odczyt zwraca tylko zamaskowany prefiks, nigdy pełny token
	rr = httptest.NewRecorder()
	tokenRouter().ServeHTTP(rr, authedRequest(t, "GET", "/api/v1/tokens/github", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	require.True(t, status.Configured)
	require.Equal(t, "ghp_****", status.Masked)
	require.NotContains(t, rr.Body.String(), "sekretny")

	// Usunięcie
	rr = httptest.NewRecorder()
	tokenRouter().ServeHTTP(rr, authedRequest(t, "DELETE", "/api/v1/tokens/github", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	tokenRouter().ServeHTTP(rr, authedRequest(t, "GET", "/api/v1/tokens/github", nil))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	require.False(t, status.Configured)
}

func TestAPI_Token_UnknownProvider(t *testing.T) {
	rr := httptest.NewRecorder()
	tokenRouter().ServeHTTP(rr, authedRequest(t, "PUT", "/api/v1/tokens/gitlab", SaveTokenRequest{Token: "x"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	tokenRouter().ServeHTTP(rr, authedRequest(t, "GET", "/api/v1/tokens/gitlab", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_Token_EmptyRejected(t *testing.T) {
	rr := httptest.NewRecorder()
	tokenRouter().ServeHTTP(rr, authedRequest(t, "PUT", "/api/v1/tokens/github", SaveTokenRequest{Token: "   "}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
