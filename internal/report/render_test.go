package report

import (
	"strings"
	"testing"
	"time"

	"github.com/abiral/quizsight/internal/analytics"
	"github.com/abiral/quizsight/internal/compare"
	"github.com/abiral/quizsight/internal/concepts"
	"github.com/abiral/quizsight/internal/record"
)

func sampleAnalyses() []analytics.QuestionAnalysis {
	rec := &record.SessionRecord{
		Questions: []record.Question{{Text: "What is 1/2 + 1/4?", CorrectAnswer: record.Scalar("3/4")}},
		Results: []record.PlayerResult{
			{Name: "Ana", Answers: []*record.PlayerAnswer{
				{Answer: record.Scalar("3/4"), IsCorrect: true, TimeMs: 5000},
			}},
			{Name: "Ben", Answers: []*record.PlayerAnswer{
				{Answer: record.Scalar("2/6"), IsCorrect: false, TimeMs: 9000},
			}},
		},
	}
	return analytics.AnalyzeQuestions(rec)
}

func TestRenderAnalysis(t *testing.T) {
	analyses := sampleAnalyses()
	out := RenderAnalysis("Fractions Review", analyses, analytics.Summarize(analyses))

	for _, want := range []string{
		"Fractions Review",
		"Q1. What is 1/2 + 1/4?",
		"(1/2)",
		"Correct answer: 3/4",
		"Wrong answers: 2/6 (1)",
		"Struggling: Ben",
		"Summary",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderAnalysisEmpty(t *testing.T) {
	out := RenderAnalysis("", nil, nil)
	if !strings.Contains(out, "No analytics available") {
		t.Errorf("empty output = %q", out)
	}
	if !strings.Contains(out, "Quiz results") {
		t.Error("missing fallback title")
	}
}

func TestRenderConcepts(t *testing.T) {
	questions := []record.Question{
		{Text: "Q", Concepts: []string{"fractions"}},
	}
	results := []record.PlayerResult{
		{Answers: []*record.PlayerAnswer{{Answer: record.Scalar("x"), IsCorrect: true, TimeMs: 3000}}},
	}
	rep := concepts.Analyze(questions, results)
	deps := []concepts.Dependency{{
		Foundational: "fractions", Dependent: "decimals",
		Confidence: 60, Severity: concepts.SeverityHigh,
		Message: "Players struggling with fractions also struggle with decimals",
	}}
	insights := concepts.BuildInsights(rep, deps)

	out := RenderConcepts(rep, deps, insights)
	for _, want := range []string{"fractions", "mastered", "fractions -> decimals (60% confidence)", "Insights"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderConceptsWithoutTags(t *testing.T) {
	out := RenderConcepts(nil, nil, nil)
	if !strings.Contains(out, "No concept tags") {
		t.Errorf("output = %q", out)
	}
}

func TestRenderComparison(t *testing.T) {
	report := &compare.Report{
		Sessions: []compare.SessionSummary{
			{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Filename: "week1.json", OverallSuccessRate: 45, ParticipantCount: 10},
			{Date: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), Filename: "week2.json", OverallSuccessRate: 57, ParticipantCount: 12},
		},
		SessionCount:        2,
		OverallTrend:        12,
		TrendDirection:      compare.TrendImproving,
		QuestionTrends:      []compare.QuestionTrend{{QuestionNumber: 1, FirstRate: 45, LastRate: 57, Trend: 12}},
		AverageParticipants: 11,
	}
	report.MostImproved = &report.QuestionTrends[0]

	out := RenderComparison(report)
	for _, want := range []string{
		"2025-03-01", "week1.json",
		"+12.0 points (improving)",
		"Most improved: Q1 (+12.0)",
		"Per-question trend",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderComparisonNil(t *testing.T) {
	out := RenderComparison(nil)
	if !strings.Contains(out, "at least two sessions") {
		t.Errorf("output = %q", out)
	}
}
