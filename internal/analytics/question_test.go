package analytics

import (
	"math"
	"testing"

	"github.com/abiral/quizsight/internal/record"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

// singleQuestionRecord builds a one-question record from parallel player
// answer specs.
func singleQuestionRecord(t *testing.T, answers []*record.PlayerAnswer) *record.SessionRecord {
	t.Helper()
	rec := &record.SessionRecord{
		Questions: []record.Question{{Text: "Q1", CorrectAnswer: record.Scalar("A")}},
	}
	for i, ans := range answers {
		rec.Results = append(rec.Results, record.PlayerResult{
			Name:    playerName(i),
			Answers: []*record.PlayerAnswer{ans},
		})
	}
	return rec
}

func playerName(i int) string {
	names := []string{"Ana", "Ben", "Cara", "Dev", "Elle", "Finn", "Gia", "Hal", "Ivy", "Jon"}
	if i < len(names) {
		return names[i]
	}
	return names[i%len(names)]
}

func answer(value string, correct bool, timeMs float64) *record.PlayerAnswer {
	return &record.PlayerAnswer{Answer: record.Scalar(value), IsCorrect: correct, TimeMs: timeMs}
}

func TestAnalyzeBasicAggregates(t *testing.T) {
	rec := singleQuestionRecord(t, []*record.PlayerAnswer{
		answer("A", true, 4000),
		answer("B", false, 12000),
		answer("A", true, 6000),
		answer("C", false, 20000),
	})

	analyses := AnalyzeQuestions(rec)
	if len(analyses) != 1 {
		t.Fatalf("expected 1 analysis, got %d", len(analyses))
	}
	a := analyses[0]

	if a.QuestionNumber != 1 {
		t.Errorf("QuestionNumber = %d, want 1", a.QuestionNumber)
	}
	if a.TotalResponses != 4 || a.CorrectResponses != 2 {
		t.Errorf("responses = %d/%d, want 2/4", a.CorrectResponses, a.TotalResponses)
	}
	if !almostEqual(a.SuccessRate, 50) {
		t.Errorf("SuccessRate = %v, want 50", a.SuccessRate)
	}
	if !almostEqual(a.TotalTime, 42) {
		t.Errorf("TotalTime = %v, want 42", a.TotalTime)
	}
	if !almostEqual(a.AverageTime, 10.5) {
		t.Errorf("AverageTime = %v, want 10.5", a.AverageTime)
	}
	if len(a.ProblemFlags) != 1 || a.ProblemFlags[0].Type != FlagModerateSuccess {
		t.Errorf("flags = %+v, want single moderate_success", a.ProblemFlags)
	}
	if a.IsPotentiallyProblematic {
		t.Error("moderate_success alone must not mark the question problematic")
	}
	if len(a.StrugglingPlayers) != 2 {
		t.Fatalf("expected 2 struggling players, got %d", len(a.StrugglingPlayers))
	}
	if a.StrugglingPlayers[0].Name != "Ben" || !almostEqual(a.StrugglingPlayers[0].Time, 12) {
		t.Errorf("unexpected first struggler: %+v", a.StrugglingPlayers[0])
	}
}

func TestAnalyzeLowSuccessIsProblematic(t *testing.T) {
	rec := singleQuestionRecord(t, []*record.PlayerAnswer{
		answer("A", true, 9000),
		answer("B", false, 9000),
		answer("C", false, 9000),
		answer("D", false, 9000),
		answer("B", false, 9000),
	})

	a := AnalyzeQuestions(rec)[0]
	if !almostEqual(a.SuccessRate, 20) {
		t.Errorf("SuccessRate = %v, want 20", a.SuccessRate)
	}
	if !hasFlag(a, FlagLowSuccess) {
		t.Errorf("expected low_success flag, got %+v", a.ProblemFlags)
	}
	if f := findFlag(a, FlagLowSuccess); f.Severity != SeverityHigh {
		t.Errorf("low_success severity = %q, want high", f.Severity)
	}
	if !a.IsPotentiallyProblematic {
		t.Error("high severity flag must mark the question problematic")
	}
}

func TestAnalyzeCommonWrongAnswer(t *testing.T) {
	answers := []*record.PlayerAnswer{
		answer("A", true, 9000),
		answer("A", true, 9000),
	}
	for i := 0; i < 5; i++ {
		answers = append(answers, answer("42", false, 9000))
	}
	for i := 0; i < 3; i++ {
		answers = append(answers, answer("7", false, 9000))
	}
	rec := singleQuestionRecord(t, answers)

	a := AnalyzeQuestions(rec)[0]
	f := findFlag(a, FlagCommonWrongAnswer)
	if f == nil {
		t.Fatalf("expected common_wrong_answer flag, got %+v", a.ProblemFlags)
	}
	if f.Severity != SeverityMedium {
		t.Errorf("severity = %q, want medium", f.Severity)
	}
	if len(a.CommonWrongAnswers) != 2 {
		t.Fatalf("expected 2 wrong-answer buckets, got %d", len(a.CommonWrongAnswers))
	}
	if a.CommonWrongAnswers[0].Answer != "42" || a.CommonWrongAnswers[0].Count != 5 {
		t.Errorf("modal bucket = %+v, want 42 x5", a.CommonWrongAnswers[0])
	}
}

func TestAnalyzeSkipsMissingAnswers(t *testing.T) {
	rec := &record.SessionRecord{
		Questions: []record.Question{
			{Text: "Q1", CorrectAnswer: record.Scalar("A")},
			{Text: "Q2", CorrectAnswer: record.Scalar("B")},
		},
		Results: []record.PlayerResult{
			{Name: "Ana", Answers: []*record.PlayerAnswer{answer("A", true, 5000), nil}},
			{Name: "Ben", Answers: []*record.PlayerAnswer{answer("A", true, 5000)}},
		},
	}

	analyses := AnalyzeQuestions(rec)
	if len(analyses) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(analyses))
	}
	if analyses[0].TotalResponses != 2 {
		t.Errorf("q1 responses = %d, want 2", analyses[0].TotalResponses)
	}
	if analyses[1].TotalResponses != 0 {
		t.Errorf("q2 responses = %d, want 0", analyses[1].TotalResponses)
	}
	if analyses[1].SuccessRate != 0 || analyses[1].AverageTime != 0 {
		t.Errorf("zero-response question must have zero metrics: %+v", analyses[1])
	}
	if hasFlag(analyses[1], FlagCommonWrongAnswer) {
		t.Error("zero-response question must not raise common_wrong_answer")
	}
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	if got := AnalyzeQuestions(nil); got != nil {
		t.Errorf("nil record: got %+v", got)
	}
	if got := AnalyzeQuestions(&record.SessionRecord{}); got != nil {
		t.Errorf("empty record: got %+v", got)
	}
	rec := &record.SessionRecord{Questions: []record.Question{{Text: "Q1"}}}
	if got := AnalyzeQuestions(rec); got != nil {
		t.Errorf("record without results: got %+v", got)
	}
}

func TestAnalyzeReconstructsWhenMetadataMissing(t *testing.T) {
	rec := &record.SessionRecord{
		Results: []record.PlayerResult{
			{
				Name:    "Ana",
				Answers: []*record.PlayerAnswer{answer("A", true, 4000), answer("B", false, 4000)},
				Scores:  []float64{10, 0},
			},
			{
				Name:    "Ben",
				Answers: []*record.PlayerAnswer{answer("A", true, 4000), answer("C", true, 4000)},
				Scores:  []float64{10, 5},
			},
		},
	}

	analyses := AnalyzeQuestions(rec)
	if len(analyses) != 2 {
		t.Fatalf("expected 2 reconstructed analyses, got %d", len(analyses))
	}
	if !analyses[0].Reconstructed || !analyses[1].Reconstructed {
		t.Error("reconstructed flag missing on analyses")
	}
	if analyses[0].CorrectAnswer != "A" {
		t.Errorf("q1 correct answer = %q, want A", analyses[0].CorrectAnswer)
	}
	if analyses[1].CorrectAnswer != "C" {
		t.Errorf("q2 correct answer = %q, want C", analyses[1].CorrectAnswer)
	}
}

func TestAnalyzeListAnswerKeys(t *testing.T) {
	rec := &record.SessionRecord{
		Questions: []record.Question{{Text: "Q1", CorrectAnswer: record.List("red", "blue")}},
		Results: []record.PlayerResult{
			{Name: "Ana", Answers: []*record.PlayerAnswer{
				{Answer: record.List("red", "green"), IsCorrect: false, TimeMs: 5000},
			}},
		},
	}

	a := AnalyzeQuestions(rec)[0]
	if a.CorrectAnswer != "red, blue" {
		t.Errorf("CorrectAnswer = %q", a.CorrectAnswer)
	}
	if a.CommonWrongAnswers[0].Answer != "red, green" {
		t.Errorf("wrong answer key = %q", a.CommonWrongAnswers[0].Answer)
	}
}

func TestTimeEfficiencyFloor(t *testing.T) {
	// Instant answers: averageTime below 1s divides by 1, not by the
	// raw average.
	rec := singleQuestionRecord(t, []*record.PlayerAnswer{
		answer("A", true, 200),
		answer("A", true, 400),
	})
	a := AnalyzeQuestions(rec)[0]
	if !almostEqual(a.TimeEfficiency, 100) {
		t.Errorf("TimeEfficiency = %v, want 100", a.TimeEfficiency)
	}
}

func hasFlag(a QuestionAnalysis, flagType string) bool {
	return findFlag(a, flagType) != nil
}

func findFlag(a QuestionAnalysis, flagType string) *Flag {
	for i := range a.ProblemFlags {
		if a.ProblemFlags[i].Type == flagType {
			return &a.ProblemFlags[i]
		}
	}
	return nil
}
