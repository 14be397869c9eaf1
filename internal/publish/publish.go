// Package publish drives the upload of a flattened project tree to an
// external store: a fresh GitHub repository or a fresh Hugging Face
// Space. A publish run walks a fixed state machine
// (validating -> creating -> uploading -> done/failed/rejected) and is
// not resumable - a failed run starts over from validation.
package publish

import (
	"encoding/json"
	"io"
	"net/http"
)

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateCreating   State = "creating"
	StateUploading  State = "uploading"
	StateDone       State = "done"
	StateFailed     State = "failed"
	StateRejected   State = "rejected"
)

// Result is the aggregate outcome of one publish run. Failed maps file
// paths to the error that was recorded for them (repository target only;
// the space target aborts on the first unrecoverable failure).
type Result struct {
	State    State             `json:"state"`
	URL      string            `json:"url,omitempty"`
	Uploaded []string          `json:"uploaded"`
	Failed   map[string]string `json:"failed,omitempty"`
}

// remoteMessage digs a human-readable message out of an error response
// body. Both GitHub and the Hub return {"message": "..."} or {"error":
// "..."}; anything else is passed through raw and truncated.
func remoteMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return resp.Status
	}
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return string(body)
}
