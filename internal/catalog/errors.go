package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an id with no catalog entry.
var ErrNotFound = errors.New("catalog: movie not found")

type UpstreamKind string

const (
	KindNetwork UpstreamKind = "network"
	KindAuth    UpstreamKind = "auth"
	KindGeneric UpstreamKind = "generic"
)

// UpstreamError classifies a failed catalog call. Status is only set for
// generic HTTP failures. Messages never include the API key.
type UpstreamError struct {
	Kind   UpstreamKind
	Op     string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("catalog %s: request failed (network error)", e.Op)
	case KindAuth:
		return fmt.Sprintf("catalog %s: auth failed, check TMDB_API_KEY configuration", e.Op)
	default:
		return fmt.Sprintf("catalog %s: upstream status %d", e.Op, e.Status)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func IsUpstreamAuth(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Kind == KindAuth
}
