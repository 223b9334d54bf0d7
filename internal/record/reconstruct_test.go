package record

import "testing"

func TestReconstructQuestionsShape(t *testing.T) {
	results := []PlayerResult{
		{
			Name: "Ana",
			Answers: []*PlayerAnswer{
				{Answer: Scalar("A")},
				{Answer: Scalar("B")},
				{Answer: Scalar("C")},
			},
		},
		{
			Name:    "Ben",
			Answers: []*PlayerAnswer{{Answer: Scalar("A")}},
		},
	}

	questions := ReconstructQuestions(results)
	if len(questions) != len(results[0].Answers) {
		t.Fatalf("got %d questions, want %d", len(questions), len(results[0].Answers))
	}
	for i, q := range questions {
		if !q.Reconstructed {
			t.Errorf("question %d missing reconstructed flag", i)
		}
		if q.Type != DefaultQuestionType {
			t.Errorf("question %d type = %q", i, q.Type)
		}
		if q.Difficulty != "unknown" {
			t.Errorf("question %d difficulty = %q", i, q.Difficulty)
		}
	}
	if questions[0].Text != "Question 1" || questions[2].Text != "Question 3" {
		t.Errorf("placeholder texts wrong: %q, %q", questions[0].Text, questions[2].Text)
	}
}

func TestReconstructQuestionsEmptyInput(t *testing.T) {
	if got := ReconstructQuestions(nil); len(got) != 0 {
		t.Errorf("nil results should yield no questions, got %d", len(got))
	}
	if got := ReconstructQuestions([]PlayerResult{}); len(got) != 0 {
		t.Errorf("empty results should yield no questions, got %d", len(got))
	}
}

func TestInferCorrectAnswerFromPositiveScore(t *testing.T) {
	results := []PlayerResult{
		{
			Name:    "Ana",
			Answers: []*PlayerAnswer{{Answer: Scalar("A")}, {Answer: Scalar("B")}},
			Scores:  []float64{800, 0},
		},
		{
			Name:    "Ben",
			Answers: []*PlayerAnswer{{Answer: Scalar("D")}, {Answer: Scalar("C")}},
			Scores:  []float64{0, 900},
		},
	}

	if got := InferCorrectAnswer(results, 0); got.Key() != "A" {
		t.Errorf("question 0: inferred %q, want A", got.Key())
	}
	if got := InferCorrectAnswer(results, 1); got.Key() != "C" {
		t.Errorf("question 1: inferred %q, want C", got.Key())
	}
}

func TestInferCorrectAnswerHighestAverageFallback(t *testing.T) {
	// No positive scores anywhere. "B" averages 0 across one player while
	// "A" averages -50 across two, so "B" wins.
	results := []PlayerResult{
		{Answers: []*PlayerAnswer{{Answer: Scalar("A")}}, Scores: []float64{-100}},
		{Answers: []*PlayerAnswer{{Answer: Scalar("A")}}, Scores: []float64{0}},
		{Answers: []*PlayerAnswer{{Answer: Scalar("B")}}, Scores: []float64{0}},
	}
	if got := InferCorrectAnswer(results, 0); got.Key() != "B" {
		t.Errorf("inferred %q, want B", got.Key())
	}
}

func TestInferCorrectAnswerTieKeepsFirstSeen(t *testing.T) {
	results := []PlayerResult{
		{Answers: []*PlayerAnswer{{Answer: Scalar("X")}}, Scores: []float64{0}},
		{Answers: []*PlayerAnswer{{Answer: Scalar("Y")}}, Scores: []float64{0}},
	}
	if got := InferCorrectAnswer(results, 0); got.Key() != "X" {
		t.Errorf("tie should keep first-seen answer, got %q", got.Key())
	}
}

func TestInferCorrectAnswerUnknownFallback(t *testing.T) {
	results := []PlayerResult{
		{Answers: []*PlayerAnswer{nil}},
		{Answers: []*PlayerAnswer{}},
	}
	if got := InferCorrectAnswer(results, 0); got.Key() != UnknownAnswer {
		t.Errorf("inferred %q, want %q", got.Key(), UnknownAnswer)
	}
	if got := InferCorrectAnswer(results, 5); got.Key() != UnknownAnswer {
		t.Errorf("out-of-range index: inferred %q, want %q", got.Key(), UnknownAnswer)
	}
}

func TestInferCorrectAnswerSkipsMissingSlots(t *testing.T) {
	results := []PlayerResult{
		{Answers: []*PlayerAnswer{nil, {Answer: Scalar("C")}}, Scores: []float64{0, 500}},
		{Answers: []*PlayerAnswer{{Answer: Scalar("A")}}, Scores: []float64{0}},
	}
	if got := InferCorrectAnswer(results, 1); got.Key() != "C" {
		t.Errorf("inferred %q, want C", got.Key())
	}
}
