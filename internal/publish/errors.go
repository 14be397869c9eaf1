package publish

import "fmt"

// ValidationError covers everything detected locally before any network
// call: missing credential, empty tree, missing required field. It is
// never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// RemoteRejection means the remote service refused to create the
// container (repository or space), or the request never reached it.
// Fatal to the publish attempt.
type RemoteRejection struct {
	Target     string
	StatusCode int
	Message    string
}

func (e *RemoteRejection) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s rejected the request: %s", e.Target, e.Message)
	}
	return fmt.Sprintf("%s rejected the request (HTTP %d): %s", e.Target, e.StatusCode, e.Message)
}

// UploadFailure is a failed write of a single file. For the repository
// target it is recorded and the remaining files are still attempted; for
// the space target it is raised after the retry budget is exhausted.
type UploadFailure struct {
	Target     string
	Path       string
	StatusCode int
	Message    string
}

func (e *UploadFailure) Error() string {
	return fmt.Sprintf("%s upload of %q failed (HTTP %d): %s", e.Target, e.Path, e.StatusCode, e.Message)
}
