package concepts

import (
	"testing"

	"github.com/abiral/quizsight/internal/record"
)

func answer(correct bool, timeMs float64) *record.PlayerAnswer {
	return &record.PlayerAnswer{Answer: record.Scalar("x"), IsCorrect: correct, TimeMs: timeMs}
}

func taggedQuestions(tags ...[]string) []record.Question {
	questions := make([]record.Question, len(tags))
	for i, t := range tags {
		questions[i] = record.Question{Text: "Q", Concepts: t}
	}
	return questions
}

func TestAnalyzeRollup(t *testing.T) {
	questions := taggedQuestions(
		[]string{"algebra"},
		[]string{"algebra", "geometry"},
		[]string{"geometry"},
	)
	results := []record.PlayerResult{
		{Name: "Ana", Answers: []*record.PlayerAnswer{
			answer(true, 5000), answer(true, 6000), answer(false, 7000),
		}},
		{Name: "Ben", Answers: []*record.PlayerAnswer{
			answer(false, 4000), answer(true, 8000), answer(true, 3000),
		}},
	}

	report := Analyze(questions, results)
	if !report.HasConcepts {
		t.Fatal("expected concepts")
	}
	if len(report.Order) != 2 || report.Order[0] != "algebra" || report.Order[1] != "geometry" {
		t.Fatalf("discovery order = %v", report.Order)
	}

	algebra := report.Concepts["algebra"]
	if algebra.QuestionCount != 2 {
		t.Errorf("algebra QuestionCount = %d, want 2", algebra.QuestionCount)
	}
	if algebra.TotalResponses != 4 || algebra.CorrectResponses != 3 {
		t.Errorf("algebra responses = %d/%d, want 3/4", algebra.CorrectResponses, algebra.TotalResponses)
	}
	if algebra.MasteryRate != 75 {
		t.Errorf("algebra MasteryRate = %v, want 75", algebra.MasteryRate)
	}
	if algebra.MasteryLevel != LevelProficient {
		t.Errorf("algebra MasteryLevel = %q", algebra.MasteryLevel)
	}
	if len(algebra.QuestionIndices) != 2 || algebra.QuestionIndices[0] != 0 || algebra.QuestionIndices[1] != 1 {
		t.Errorf("algebra QuestionIndices = %v", algebra.QuestionIndices)
	}

	geometry := report.Concepts["geometry"]
	if geometry.TotalResponses != 4 || geometry.CorrectResponses != 3 {
		t.Errorf("geometry responses = %d/%d, want 3/4", geometry.CorrectResponses, geometry.TotalResponses)
	}
}

func TestAnalyzeRollupConservation(t *testing.T) {
	// Each concept on a question receives that question's full response
	// count, so per-question totals multiply by tag count.
	questions := taggedQuestions([]string{"a", "b", "c"})
	results := []record.PlayerResult{
		{Answers: []*record.PlayerAnswer{answer(true, 1000)}},
		{Answers: []*record.PlayerAnswer{answer(false, 1000)}},
		{Answers: []*record.PlayerAnswer{nil}},
	}

	report := Analyze(questions, results)
	sum := 0
	for _, name := range report.Order {
		stats := report.Concepts[name]
		if stats.CorrectResponses > stats.TotalResponses {
			t.Errorf("%s: correct %d exceeds total %d", name, stats.CorrectResponses, stats.TotalResponses)
		}
		sum += stats.TotalResponses
	}
	if sum != 2*3 {
		t.Errorf("summed responses = %d, want 6", sum)
	}
}

func TestAnalyzeUntaggedQuestionsIgnored(t *testing.T) {
	questions := taggedQuestions(nil, []string{"algebra"})
	results := []record.PlayerResult{
		{Answers: []*record.PlayerAnswer{answer(true, 1000), answer(true, 1000)}},
	}
	report := Analyze(questions, results)
	if len(report.Order) != 1 {
		t.Fatalf("expected only tagged concepts, got %v", report.Order)
	}
	if report.Concepts["algebra"].TotalResponses != 1 {
		t.Errorf("algebra responses = %d, want 1", report.Concepts["algebra"].TotalResponses)
	}
}

func TestAnalyzeNoConcepts(t *testing.T) {
	report := Analyze(taggedQuestions(nil, nil), nil)
	if report.HasConcepts {
		t.Error("HasConcepts should be false for untagged quiz")
	}
	if len(report.Concepts) != 0 {
		t.Errorf("Concepts = %v", report.Concepts)
	}
}

func TestLevelForRate(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{100, LevelMastered},
		{80, LevelMastered},
		{79.9, LevelProficient},
		{60, LevelProficient},
		{59.9, LevelDeveloping},
		{40, LevelDeveloping},
		{39.9, LevelNeedsWork},
		{0, LevelNeedsWork},
	}
	for _, tt := range tests {
		if got := levelForRate(tt.rate); got != tt.want {
			t.Errorf("levelForRate(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}
