package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MalformedOutputError reports generated text that failed strict JSON or
// schema validation. It is fatal: no retry, no catalog fallback.
type MalformedOutputError struct {
	Reason string
}

func (e *MalformedOutputError) Error() string {
	return "generation output rejected: " + e.Reason
}

func IsMalformedOutput(err error) bool {
	var target *MalformedOutputError
	return errors.As(err, &target)
}

type generatedItem struct {
	Title  string `json:"title"`
	Year   string `json:"year,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type generatedPayload struct {
	Recommendations []generatedItem `json:"recommendations"`
}

// parseGenerated validates the backend's text strictly against the
// requested shape: a JSON object with a recommendations array of at most
// five entries, each carrying a non-empty title.
func parseGenerated(content string) ([]generatedItem, error) {
	var payload generatedPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, &MalformedOutputError{Reason: "response was not valid JSON"}
	}
	if payload.Recommendations == nil {
		return nil, &MalformedOutputError{Reason: "missing recommendations array"}
	}
	if len(payload.Recommendations) > maxItems {
		return nil, &MalformedOutputError{
			Reason: fmt.Sprintf("expected at most %d recommendations, got %d", maxItems, len(payload.Recommendations)),
		}
	}
	for i, item := range payload.Recommendations {
		if strings.TrimSpace(item.Title) == "" {
			return nil, &MalformedOutputError{Reason: fmt.Sprintf("recommendation %d has no title", i)}
		}
	}
	return payload.Recommendations, nil
}
