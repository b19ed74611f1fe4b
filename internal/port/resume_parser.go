package port

import "context"

// ResumeParser calls the external resume-parsing API. The returned map is
// the decoded response body. Upstream failures that produced a response are
// reported inside the map under an "error" key (with optional "detail"),
// not as a Go error; the error return is reserved for transport faults and
// context cancellation.
type ResumeParser interface {
	Parse(ctx context.Context, fileName string, content []byte) (map[string]any, error)
}
