package publish

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"kreator-projektow/internal/models"
	"kreator-projektow/internal/tree"

	"github.com/stretchr/testify/require"
)

func testForest(t *testing.T) []*models.Node {
	t.Helper()
	return tree.ParseListing("app/\n├── main.py\n└── assets/\nREADME.md\n")
}

func TestGitHubPublish_Validation(t *testing.T) {
	p := NewGitHubPublisher("http://unused.invalid")
	forest := testForest(t)

	var validationErr *ValidationError

	// Brak tokenu
	result, err := p.Publish(context.Background(), "", GitHubOptions{Name: "demo"}, forest)
	require.Error(t, err)
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, StateRejected, result.State)

	// Brak nazwy repozytorium
	result, err = p.Publish(context.Background(), "token", GitHubOptions{Name: "  "}, forest)
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, StateRejected, result.State)

	// Puste drzewo
	result, err = p.Publish(context.Background(), "token", GitHubOptions{Name: "demo"}, nil)
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, StateRejected, result.State)
	require.Contains(t, err.Error(), "empty")
}

func TestGitHubPublish_CreateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/repos", r.URL.Path)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"name already exists on this account"}`))
	}))
	defer srv.Close()

	p := NewGitHubPublisher(srv.URL)
	result, err := p.Publish(context.Background(), "token", GitHubOptions{Name: "demo"}, testForest(t))

	var rejection *RemoteRejection
	require.ErrorAs(t, err, &rejection)
	require.Equal(t, http.StatusUnprocessableEntity, rejection.StatusCode)
	require.Contains(t, rejection.Message, "already exists")
	require.Equal(t, StateFailed, result.State)
	require.Empty(t, result.Uploaded, "no file may be written when the container was rejected")
}

func TestGitHubPublish_BestEffortUploads(t *testing.T) {
	var mu sync.Mutex
	uploadedPaths := map[string]string{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/user/repos" {
			require.Equal(t, "Bearer token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{
				"full_name": "tester/demo",
				"html_url":  "https://github.com/tester/demo",
			})
			return
		}

		require.Equal(t, http.MethodPut, r.Method)
		require.True(t, strings.HasPrefix(r.URL.Path, "/repos/tester/demo/contents/"))
		path := strings.TrimPrefix(r.URL.Path, "/repos/tester/demo/contents/")

		// Jeden plik zawsze pada, reszta przechodzi.
		if path == "app/main.py" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		var req putContentsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "main", req.Branch)
		decoded, err := base64.StdEncoding.DecodeString(req.Content)
		require.NoError(t, err)

		mu.Lock()
		uploadedPaths[path] = string(decoded)
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	p := NewGitHubPublisher(srv.URL)
	result, err := p.Publish(context.Background(), "token", GitHubOptions{Name: "demo"}, testForest(t))

	require.NoError(t, err, "per-file failures must not fail the repository publish")
	require.Equal(t, StateDone, result.State)
	require.Equal(t, "https://github.com/tester/demo", result.URL)

	require.Contains(t, result.Failed, "app/main.py")
	require.ElementsMatch(t, []string{"app/assets/.gitkeep", "README.md"}, result.Uploaded)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, "", uploadedPaths["app/assets/.gitkeep"], "sentinel file is empty")
	require.Contains(t, uploadedPaths["README.md"], "# README")
}

func TestGitHubPublish_NetworkErrorBecomesRejection(t *testing.T) {
	// Serwer zamknięty przed wywołaniem - symulacja braku łączności.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := NewGitHubPublisher(srv.URL)
	result, err := p.Publish(context.Background(), "token", GitHubOptions{Name: "demo"}, testForest(t))

	var rejection *RemoteRejection
	require.ErrorAs(t, err, &rejection)
	require.Equal(t, 0, rejection.StatusCode)
	require.Equal(t, StateFailed, result.State)
}

func TestGitHubPublish_ErrorTypesAreDistinct(t *testing.T) {
	var validationErr *ValidationError
	var rejection *RemoteRejection

	err := error(&ValidationError{Reason: "x"})
	require.True(t, errors.As(err, &validationErr))
	require.False(t, errors.As(err, &rejection))
}
