package question

import (
	"encoding/json"

	apperrors "github.com/yanqian/question-board/pkg/errors"
)

// QuestionID is the opaque identifier of a question. It is never empty.
type QuestionID string

// ParseQuestionID validates a raw identifier.
func ParseQuestionID(raw string) (QuestionID, error) {
	if raw == "" {
		return "", apperrors.Wrap(CodeInvalidID, "no id provided", nil)
	}
	return QuestionID(raw), nil
}

// UnmarshalJSON enforces the non-empty invariant during data loading, so a
// record with a blank id makes the whole source malformed.
func (id *QuestionID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseQuestionID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Question is an immutable record; identity is ID. Tags is nil when the
// record carries none and serializes as JSON null in that case.
type Question struct {
	ID      QuestionID `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Tags    []string   `json:"tags"`
}
