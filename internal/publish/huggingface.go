package publish

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kreator-projektow/internal/models"
	"kreator-projektow/internal/tree"
)

const spaceTarget = "Hugging Face"

// RetryPolicy bounds the per-file retry loop used while a freshly created
// Space is still provisioning. Delays grow by Multiplier after every
// retried attempt and are capped at MaxDelay.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 10,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    5 * time.Second,
		Multiplier:  2.0,
	}
}

func (rp RetryPolicy) delay(attempt int) time.Duration {
	wait := float64(rp.BaseDelay) * math.Pow(rp.Multiplier, float64(attempt-1))
	if wait > float64(rp.MaxDelay) {
		wait = float64(rp.MaxDelay)
	}
	return time.Duration(wait)
}

type SpacePublisher struct {
	baseURL string
	retry   RetryPolicy
	client  *http.Client
	sleep   func(time.Duration)
}

func NewSpacePublisher(baseURL string, retry RetryPolicy) *SpacePublisher {
	return &SpacePublisher{
		baseURL: strings.TrimRight(baseURL, "/"),
		retry:   retry,
		client:  &http.Client{Timeout: 30 * time.Second},
		sleep:   time.Sleep,
	}
}

type SpaceOptions struct {
	Name    string `json:"name"`
	Private bool   `json:"private"`
	SDK     string `json:"sdk"`
	License string `json:"license"`
	Title   string `json:"title"`
}

type whoamiResponse struct {
	Name string `json:"name"`
}

type createSpaceRequest struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Private bool   `json:"private"`
	SDK     string `json:"sdk"`
	License string `json:"license"`
}

type commitFile struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type commitRequest struct {
	Summary string       `json:"summary"`
	Files   []commitFile `json:"files"`
}

// Publish resolves the acting identity, creates a new Space and uploads
// every flattened entry plus a synthesized README descriptor (and an
// app.py stub when the sdk needs an entry point and the tree has none).
// Unlike the repository target, a file write that fails for good aborts
// the run; HTTP 404 is retried because the Space backend keeps returning
// it until provisioning finishes.
func (p *SpacePublisher) Publish(ctx context.Context, token string, opts SpaceOptions, forest []*models.Node) (*Result, error) {
	result := &Result{State: StateValidating, Uploaded: []string{}}

	if token == "" {
		result.State = StateRejected
		return result, &ValidationError{Reason: "Hugging Face token is not configured"}
	}
	if strings.TrimSpace(opts.Name) == "" {
		result.State = StateRejected
		return result, &ValidationError{Reason: "space name is required"}
	}
	entries := tree.Flatten(forest)
	if len(entries) == 0 {
		result.State = StateRejected
		return result, &ValidationError{Reason: "project tree is empty"}
	}

	if opts.SDK == "" {
		opts.SDK = "gradio"
	}
	if opts.License == "" {
		opts.License = "mit"
	}
	if opts.Title == "" {
		opts.Title = opts.Name
	}

	result.State = StateCreating
	owner, err := p.whoami(ctx, token)
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	if err := p.createSpace(ctx, token, opts); err != nil {
		result.State = StateFailed
		return result, err
	}
	result.URL = fmt.Sprintf("%s/spaces/%s/%s", p.baseURL, owner, opts.Name)

	result.State = StateUploading
	for _, entry := range uploadSet(opts, forest, entries) {
		if err := p.uploadFile(ctx, token, owner, opts.Name, entry); err != nil {
			result.State = StateFailed
			return result, err
		}
		result.Uploaded = append(result.Uploaded, entry.Path)
	}

	result.State = StateDone
	return result, nil
}

// uploadSet prepends the README descriptor and, when needed, an app.py
// stub. A user-authored root README.md is superseded by the descriptor so
// the Space always carries its metadata frontmatter.
func uploadSet(opts SpaceOptions, forest []*models.Node, entries []tree.Entry) []tree.Entry {
	hasEntryPoint := false
	out := []tree.Entry{{Path: "README.md", Content: readmeDescriptor(opts, forest)}}
	for _, e := range entries {
		if e.Path == "README.md" {
			continue
		}
		if e.Path == "app.py" {
			hasEntryPoint = true
		}
		out = append(out, e)
	}

	if (opts.SDK == "gradio" || opts.SDK == "streamlit") && !hasEntryPoint {
		out = append(out, tree.Entry{Path: "app.py", Content: tree.DefaultContent("app.py")})
	}
	return out
}

// readmeDescriptor builds the Space metadata frontmatter and embeds the
// serialized forest in the body for provenance.
func readmeDescriptor(opts SpaceOptions, forest []*models.Node) string {
	serialized, err := json.MarshalIndent(forest, "", "  ")
	if err != nil {
		serialized = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: " + opts.Title + "\n")
	b.WriteString("sdk: " + opts.SDK + "\n")
	b.WriteString("license: " + opts.License + "\n")
	b.WriteString("---\n\n")
	b.WriteString("# " + opts.Title + "\n\n")
	b.WriteString("Projekt wygenerowany przez Kreator Projektów.\n\n")
	b.WriteString("## Project structure\n\n```json\n")
	b.Write(serialized)
	b.WriteString("\n```\n")
	return b.String()
}

func (p *SpacePublisher) whoami(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/whoami-v2", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &RemoteRejection{Target: spaceTarget, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RemoteRejection{Target: spaceTarget, StatusCode: resp.StatusCode, Message: remoteMessage(resp)}
	}

	var who whoamiResponse
	if err := json.NewDecoder(resp.Body).Decode(&who); err != nil || who.Name == "" {
		return "", &RemoteRejection{Target: spaceTarget, Message: "could not resolve the acting identity"}
	}
	return who.Name, nil
}

func (p *SpacePublisher) createSpace(ctx context.Context, token string, opts SpaceOptions) error {
	body, err := json.Marshal(createSpaceRequest{
		Type:    "space",
		Name:    opts.Name,
		Private: opts.Private,
		SDK:     opts.SDK,
		License: opts.License,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/repos/create", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return &RemoteRejection{Target: spaceTarget, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteRejection{Target: spaceTarget, StatusCode: resp.StatusCode, Message: remoteMessage(resp)}
	}
	return nil
}

// uploadFile commits a single file, retrying only HTTP 404 (the Space is
// still provisioning) with capped exponential backoff. Any other failure
// aborts immediately; an exhausted budget raises an UploadFailure naming
// the path and the last status.
func (p *SpacePublisher) uploadFile(ctx context.Context, token, owner, name string, entry tree.Entry) error {
	endpoint := fmt.Sprintf("%s/api/spaces/%s/%s/commit/main",
		p.baseURL, url.PathEscape(owner), url.PathEscape(name))

	body, err := json.Marshal(commitRequest{
		Summary: "Add " + entry.Path,
		Files: []commitFile{{
			Path:     entry.Path,
			Content:  base64.StdEncoding.EncodeToString([]byte(entry.Content)),
			Encoding: "base64",
		}},
	})
	if err != nil {
		return err
	}

	lastStatus := 0
	for attempt := 1; attempt <= p.retry.MaxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.client.Do(req)
		if err != nil {
			return &UploadFailure{Target: spaceTarget, Path: entry.Path, Message: err.Error()}
		}

		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			resp.Body.Close()
			return nil
		}

		lastStatus = resp.StatusCode
		if resp.StatusCode != http.StatusNotFound {
			msg := remoteMessage(resp)
			resp.Body.Close()
			return &UploadFailure{Target: spaceTarget, Path: entry.Path, StatusCode: resp.StatusCode, Message: msg}
		}
		resp.Body.Close()

		if attempt < p.retry.MaxAttempts {
			if ctx.Err() != nil {
				return &UploadFailure{Target: spaceTarget, Path: entry.Path, StatusCode: lastStatus, Message: ctx.Err().Error()}
			}
			p.sleep(p.retry.delay(attempt))
		}
	}

	return &UploadFailure{
		Target:     spaceTarget,
		Path:       entry.Path,
		StatusCode: lastStatus,
		Message:    fmt.Sprintf("still unavailable after %d attempts", p.retry.MaxAttempts),
	}
}
