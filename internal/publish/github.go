package publish

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kreator-projektow/internal/models"
	"kreator-projektow/internal/tree"
)

const githubTarget = "GitHub"

type GitHubPublisher struct {
	baseURL string
	client  *http.Client
}

func NewGitHubPublisher(baseURL string) *GitHubPublisher {
	return &GitHubPublisher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type GitHubOptions struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
}

type createRepoRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	AutoInit    bool   `json:"auto_init"`
}

type createRepoResponse struct {
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

type putContentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
}

// Publish creates a new repository and writes every flattened entry into
// it on the main branch. File writes are best-effort: a failed write is
// recorded in the result and the remaining files are still attempted, so
// the run always ends in Done once the repository itself was created.
func (p *GitHubPublisher) Publish(ctx context.Context, token string, opts GitHubOptions, forest []*models.Node) (*Result, error) {
	result := &Result{State: StateValidating, Uploaded: []string{}}

	if token == "" {
		result.State = StateRejected
		return result, &ValidationError{Reason: "GitHub token is not configured"}
	}
	if strings.TrimSpace(opts.Name) == "" {
		result.State = StateRejected
		return result, &ValidationError{Reason: "repository name is required"}
	}
	entries := tree.Flatten(forest)
	if len(entries) == 0 {
		result.State = StateRejected
		return result, &ValidationError{Reason: "project tree is empty"}
	}

	result.State = StateCreating
	repo, err := p.createRepository(ctx, token, opts)
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.URL = repo.HTMLURL

	result.State = StateUploading
	for _, entry := range entries {
		if err := p.putFile(ctx, token, repo.FullName, entry); err != nil {
			log.Printf("GitHub: zapis pliku %s nie powiódł się: %v", entry.Path, err)
			if result.Failed == nil {
				result.Failed = map[string]string{}
			}
			result.Failed[entry.Path] = err.Error()
			continue
		}
		result.Uploaded = append(result.Uploaded, entry.Path)
	}

	result.State = StateDone
	return result, nil
}

func (p *GitHubPublisher) createRepository(ctx context.Context, token string, opts GitHubOptions) (*createRepoResponse, error) {
	body, err := json.Marshal(createRepoRequest{
		Name:        opts.Name,
		Description: opts.Description,
		Private:     opts.Private,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/user/repos", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	p.setHeaders(req, token)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &RemoteRejection{Target: githubTarget, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteRejection{Target: githubTarget, StatusCode: resp.StatusCode, Message: remoteMessage(resp)}
	}

	var created createRepoResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, &RemoteRejection{Target: githubTarget, Message: "invalid create-repository response: " + err.Error()}
	}
	if created.FullName == "" {
		return nil, &RemoteRejection{Target: githubTarget, Message: "create-repository response is missing full_name"}
	}
	return &created, nil
}

func (p *GitHubPublisher) putFile(ctx context.Context, token, fullName string, entry tree.Entry) error {
	body, err := json.Marshal(putContentsRequest{
		Message: "Add " + entry.Path,
		Content: base64.StdEncoding.EncodeToString([]byte(entry.Content)),
		Branch:  "main",
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/repos/%s/contents/%s", p.baseURL, fullName, escapePath(entry.Path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	p.setHeaders(req, token)

	resp, err := p.client.Do(req)
	if err != nil {
		return &UploadFailure{Target: githubTarget, Path: entry.Path, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UploadFailure{Target: githubTarget, Path: entry.Path, StatusCode: resp.StatusCode, Message: remoteMessage(resp)}
	}
	return nil
}

func (p *GitHubPublisher) setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
}

// escapePath escapes each path segment while keeping the separators.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
