package record

import (
	"testing"
	"time"
)

func TestDecodeMinimalRecord(t *testing.T) {
	raw := []byte(`{
		"quizTitle": "Fractions Review",
		"saved": "2025-03-01T10:00:00Z",
		"results": [
			{"name": "Ana", "answers": [{"answer": "A", "isCorrect": true, "timeMs": 4000, "points": 950}]}
		]
	}`)

	rec, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if rec.QuizTitle != "Fractions Review" {
		t.Errorf("QuizTitle = %q, want %q", rec.QuizTitle, "Fractions Review")
	}
	if len(rec.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(rec.Results))
	}
	ans := rec.Results[0].Answers[0]
	if ans == nil || ans.Answer.Key() != "A" || !ans.IsCorrect {
		t.Errorf("unexpected answer: %+v", ans)
	}
}

func TestDecodeRejectsMissingResults(t *testing.T) {
	if _, err := Decode([]byte(`{"quizTitle": "No Results"}`)); err == nil {
		t.Error("expected error for record without results")
	}
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestDecodeNullAnswerSlot(t *testing.T) {
	raw := []byte(`{"results": [{"name": "Ben", "answers": [null, {"answer": "B", "isCorrect": false}]}]}`)
	rec, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	answers := rec.Results[0].Answers
	if answers[0] != nil {
		t.Errorf("expected nil for skipped answer, got %+v", answers[0])
	}
	if answers[1] == nil || answers[1].Answer.Key() != "B" {
		t.Errorf("unexpected second answer: %+v", answers[1])
	}
}

func TestQuestionListPrecedence(t *testing.T) {
	rec := &SessionRecord{
		Questions:        []Question{{Text: "primary"}},
		QuestionMetadata: []Question{{Text: "legacy"}},
	}
	if got := rec.QuestionList(); len(got) != 1 || got[0].Text != "primary" {
		t.Errorf("QuestionList should prefer questions, got %+v", got)
	}

	rec = &SessionRecord{QuestionMetadata: []Question{{Text: "legacy"}}}
	if got := rec.QuestionList(); len(got) != 1 || got[0].Text != "legacy" {
		t.Errorf("QuestionList should fall back to questionMetadata, got %+v", got)
	}

	rec = &SessionRecord{}
	if got := rec.QuestionList(); got != nil {
		t.Errorf("QuestionList on empty record = %+v, want nil", got)
	}
}

func TestQuestionDefaults(t *testing.T) {
	q := Question{LegacyText: "What is 2+2?"}
	if q.Label() != "What is 2+2?" {
		t.Errorf("Label = %q", q.Label())
	}
	if q.TypeOrDefault() != DefaultQuestionType {
		t.Errorf("TypeOrDefault = %q", q.TypeOrDefault())
	}
	if q.DifficultyOrDefault() != DefaultDifficulty {
		t.Errorf("DifficultyOrDefault = %q", q.DifficultyOrDefault())
	}

	q = Question{Text: "new", LegacyText: "old", Type: "true-false", Difficulty: "hard"}
	if q.Label() != "new" || q.TypeOrDefault() != "true-false" || q.DifficultyOrDefault() != "hard" {
		t.Errorf("explicit fields not honored: %+v", q)
	}
}

func TestEnsureQuestionsFillsPlaceholders(t *testing.T) {
	rec := &SessionRecord{
		Results: []PlayerResult{
			{Answers: []*PlayerAnswer{{Answer: Scalar("A")}, {Answer: Scalar("B")}}},
		},
	}
	rec.EnsureQuestions()
	if len(rec.Questions) != 2 {
		t.Fatalf("expected 2 reconstructed questions, got %d", len(rec.Questions))
	}
	if !rec.Questions[0].Reconstructed {
		t.Error("reconstructed flag not set")
	}

	rec = &SessionRecord{
		Questions: []Question{{Text: "kept"}},
		Results:   []PlayerResult{{Answers: []*PlayerAnswer{{Answer: Scalar("A")}}}},
	}
	rec.EnsureQuestions()
	if len(rec.Questions) != 1 || rec.Questions[0].Text != "kept" {
		t.Errorf("existing questions must be preserved, got %+v", rec.Questions)
	}
}

func TestAnswerValueForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
		list bool
		set  bool
	}{
		{"string", `"Paris"`, "Paris", false, true},
		{"whole number", `42`, "42", false, true},
		{"fractional number", `3.5`, "3.5", false, true},
		{"bool", `true`, "true", false, true},
		{"array", `["red", "blue"]`, "red, blue", true, true},
		{"mixed array", `["x", 7]`, "x, 7", true, true},
		{"null", `null`, "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v AnswerValue
			if err := v.UnmarshalJSON([]byte(tt.raw)); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.raw, err)
			}
			if v.Key() != tt.key {
				t.Errorf("Key = %q, want %q", v.Key(), tt.key)
			}
			if v.IsList() != tt.list {
				t.Errorf("IsList = %v, want %v", v.IsList(), tt.list)
			}
			if v.IsSet() != tt.set {
				t.Errorf("IsSet = %v, want %v", v.IsSet(), tt.set)
			}
		})
	}
}

func TestAnswerValueEqual(t *testing.T) {
	if !Scalar("42").Equal(Scalar("42")) {
		t.Error("equal scalars reported unequal")
	}
	if Scalar("red, blue").Equal(List("red", "blue")) {
		t.Error("scalar must not equal list with same key")
	}
	if Scalar("").Equal(AnswerValue{}) {
		t.Error("empty scalar must not equal unset value")
	}
}

func TestTimestampFormats(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `"2025-03-01T10:30:00Z"`, time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"no zone", `"2025-03-01T10:30:00"`, time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"date only", `"2025-03-01"`, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"epoch seconds", `1740825000`, time.Unix(1740825000, 0).UTC()},
		{"epoch millis", `1740825000000`, time.UnixMilli(1740825000000).UTC()},
		{"numeric string", `"1740825000"`, time.Unix(1740825000, 0).UTC()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := ts.UnmarshalJSON([]byte(tt.raw)); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.raw, err)
			}
			if !ts.Time.Equal(tt.want) {
				t.Errorf("parsed %v, want %v", ts.Time, tt.want)
			}
		})
	}
}

func TestTimestampGarbageIsZero(t *testing.T) {
	for _, raw := range []string{`null`, `""`, `"next tuesday"`, `{}`} {
		var ts Timestamp
		if err := ts.UnmarshalJSON([]byte(raw)); err != nil {
			t.Errorf("unmarshal %s returned error: %v", raw, err)
		}
		if !ts.IsZero() {
			t.Errorf("unmarshal %s = %v, want zero time", raw, ts.Time)
		}
	}
}

func TestValidateSessionRecord(t *testing.T) {
	valid := []byte(`{"results": [{"name": "Ana", "answers": [null, {"answer": "A", "isCorrect": true}]}]}`)
	if err := Validate(valid); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	missingResults := []byte(`{"quizTitle": "oops"}`)
	if err := Validate(missingResults); err == nil {
		t.Error("record without results should fail validation")
	}

	badAnswers := []byte(`{"results": [{"answers": "not an array"}]}`)
	if err := Validate(badAnswers); err == nil {
		t.Error("non-array answers should fail validation")
	}

	if err := Validate([]byte(`{broken`)); err == nil {
		t.Error("malformed JSON should fail validation")
	}
}
