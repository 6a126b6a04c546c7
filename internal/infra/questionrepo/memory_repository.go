package questionrepo

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/yanqian/question-board/internal/domain/question"
)

//go:embed questions.json
var bundledQuestions []byte

// MemoryRepository holds the fixed question collection in process memory.
// It is built once at startup and never mutated afterwards, so concurrent
// readers need no locking.
type MemoryRepository struct {
	byID    map[question.QuestionID]question.Question
	ordered []question.Question
}

// NewMemoryRepository builds a repository from raw JSON data: an array of
// question objects. A malformed source is a construction error; the process
// must not start serving on top of it.
func NewMemoryRepository(data []byte) (*MemoryRepository, error) {
	var records []question.Question
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse question data: %w", err)
	}

	byID := make(map[question.QuestionID]question.Question, len(records))
	for _, record := range records {
		if _, exists := byID[record.ID]; exists {
			return nil, fmt.Errorf("duplicate question id %q", record.ID)
		}
		byID[record.ID] = record
	}

	// Enumeration order is not part of the contract, but a stable order
	// keeps identical requests byte-identical.
	ordered := make([]question.Question, 0, len(records))
	for _, record := range byID {
		ordered = append(ordered, record)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	return &MemoryRepository{byID: byID, ordered: ordered}, nil
}

// NewBundledRepository loads the question data embedded in the binary.
func NewBundledRepository() (*MemoryRepository, error) {
	return NewMemoryRepository(bundledQuestions)
}

// NewFileRepository loads question data from an external JSON file.
func NewFileRepository(path string) (*MemoryRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question data: %w", err)
	}
	return NewMemoryRepository(data)
}

// All implements question.Repository. The returned slice is a copy.
func (r *MemoryRepository) All(_ context.Context) ([]question.Question, error) {
	snapshot := make([]question.Question, len(r.ordered))
	copy(snapshot, r.ordered)
	return snapshot, nil
}

// Len reports the number of loaded records.
func (r *MemoryRepository) Len() int {
	return len(r.ordered)
}

var _ question.Repository = (*MemoryRepository)(nil)
