// Package quiz turns raw Gemini output into quiz items and tracks the
// active/answered state of one page view.
package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"playverse/internal/genai"
)

// Option is one labeled answer choice.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Item is one multiple-choice quiz question.
type Item struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correctOptionId"`
	Category        string   `json:"category"`
	ImageURL        string   `json:"imageUrl,omitempty"`
}

// ErrNoCandidates is returned when the model response carries no text content.
var ErrNoCandidates = errors.New("no candidates data found")

// ParseError is returned when the model text cannot be trusted as a quiz
// batch. The whole batch is rejected; callers substitute fallback content.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quiz parse failed: %s: %v", e.Reason, e.Err)
	}
	return "quiz parse failed: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// Extract parses the first candidate's text into quiz items. The text is
// expected to be a JSON array, usually wrapped in a ```json code fence.
// Each item gets a freshly generated id; any id the model emitted is
// discarded. All other fields are preserved verbatim.
func Extract(resp *genai.Response) ([]Item, error) {
	if resp == nil || len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoCandidates
	}
	text := stripCodeFences(resp.Candidates[0].Content.Parts[0].Text)

	var items []Item
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, &ParseError{Reason: "invalid data format", Err: err}
	}

	for i := range items {
		if err := validateItem(items[i]); err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("item %d: %v", i, err)}
		}
		items[i].ID = uuid.NewString()
	}
	return items, nil
}

// validateItem rejects items the model got structurally wrong. A malformed
// payload is never partially trusted.
func validateItem(it Item) error {
	if it.Question == "" {
		return errors.New("question is empty")
	}
	if len(it.Options) == 0 {
		return errors.New("no options")
	}
	seen := make(map[string]bool, len(it.Options))
	for _, opt := range it.Options {
		if seen[opt.ID] {
			return fmt.Errorf("duplicate option label %q", opt.ID)
		}
		seen[opt.ID] = true
	}
	if !seen[it.CorrectOptionID] {
		return fmt.Errorf("correctOptionId %q does not match any option", it.CorrectOptionID)
	}
	return nil
}

// stripCodeFences removes ``` and ```json markers wherever they appear,
// matching the markdown wrapping Gemini puts around JSON output.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
