package record

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Defaults applied when a question omits metadata fields.
const (
	DefaultQuestionType = "multiple-choice"
	DefaultDifficulty   = "medium"
)

// SessionRecord is one saved run of a quiz as written by the quiz host.
// Only Results is required; everything else is optional and records written
// by older hosts may omit question metadata entirely (see ReconstructQuestions).
type SessionRecord struct {
	Filename  string    `json:"filename,omitempty"`
	QuizTitle string    `json:"quizTitle,omitempty"`
	GamePin   string    `json:"gamePin,omitempty"`
	Saved     Timestamp `json:"saved"`

	// Questions and QuestionMetadata are aliases; Questions wins when both
	// are present. Use QuestionList to resolve.
	Questions        []Question `json:"questions,omitempty"`
	QuestionMetadata []Question `json:"questionMetadata,omitempty"`

	Results []PlayerResult `json:"results"`
}

// Question describes one quiz question. Reconstructed is set only by
// ReconstructQuestions.
type Question struct {
	Text          string      `json:"text,omitempty"`
	LegacyText    string      `json:"question,omitempty"`
	Type          string      `json:"type,omitempty"`
	Difficulty    string      `json:"difficulty,omitempty"`
	CorrectAnswer AnswerValue `json:"correctAnswer"`
	Concepts      []string    `json:"concepts,omitempty"`
	Reconstructed bool        `json:"reconstructed,omitempty"`
}

// Label returns the question text, falling back to the legacy "question" field.
func (q *Question) Label() string {
	if q.Text != "" {
		return q.Text
	}
	return q.LegacyText
}

// TypeOrDefault returns the question type, defaulting to multiple-choice.
func (q *Question) TypeOrDefault() string {
	if q.Type != "" {
		return q.Type
	}
	return DefaultQuestionType
}

// DifficultyOrDefault returns the difficulty, defaulting to medium.
func (q *Question) DifficultyOrDefault() string {
	if q.Difficulty != "" {
		return q.Difficulty
	}
	return DefaultDifficulty
}

// PlayerResult holds one player's run. Answers is positional by question
// index; entries may be null for questions the player never answered.
// Scores is an optional per-question point list used only during
// reconstruction.
type PlayerResult struct {
	Name        string          `json:"name,omitempty"`
	Score       float64         `json:"score,omitempty"`
	CompletedAt Timestamp       `json:"completedAt"`
	Answers     []*PlayerAnswer `json:"answers"`
	Scores      []float64       `json:"scores,omitempty"`
}

// PlayerAnswer is one player's response to one question.
type PlayerAnswer struct {
	Answer    AnswerValue `json:"answer"`
	IsCorrect bool        `json:"isCorrect"`
	TimeMs    float64     `json:"timeMs,omitempty"`
	Points    float64     `json:"points,omitempty"`
}

// Decode parses a session record. It is strict about results being present
// and well-formed JSON, and lenient about everything else: unknown fields
// are ignored and missing metadata falls back to defaults downstream.
func Decode(data []byte) (*SessionRecord, error) {
	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	if rec.Results == nil {
		return nil, errors.New("decode session record: missing results")
	}
	return &rec, nil
}

// QuestionList resolves the question metadata: questions, then the
// questionMetadata alias, then nil.
func (r *SessionRecord) QuestionList() []Question {
	if len(r.Questions) > 0 {
		return r.Questions
	}
	if len(r.QuestionMetadata) > 0 {
		return r.QuestionMetadata
	}
	return nil
}

// EnsureQuestions fills in reconstructed placeholder questions when the
// record carries no question metadata but has player answers to infer from.
func (r *SessionRecord) EnsureQuestions() {
	if len(r.QuestionList()) == 0 && len(r.Results) > 0 {
		r.Questions = ReconstructQuestions(r.Results)
	}
}
