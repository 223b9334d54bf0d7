package concepts

import (
	"testing"

	"github.com/abiral/quizsight/internal/record"
)

// weakPairResults builds five players over three questions tagged
// algebra / algebra+geometry / geometry. Three players fail everything,
// one misses only the pure algebra question, one aces the quiz.
func weakPairResults() ([]record.Question, []record.PlayerResult) {
	questions := taggedQuestions(
		[]string{"algebra"},
		[]string{"algebra", "geometry"},
		[]string{"geometry"},
	)
	row := func(a, b, c bool) record.PlayerResult {
		return record.PlayerResult{Answers: []*record.PlayerAnswer{
			answer(a, 5000), answer(b, 5000), answer(c, 5000),
		}}
	}
	results := []record.PlayerResult{
		row(false, false, false),
		row(false, false, false),
		row(false, false, false),
		row(false, true, true),
		row(true, true, true),
	}
	return questions, results
}

func TestInferDependenciesWeakPair(t *testing.T) {
	questions, results := weakPairResults()
	report := Analyze(questions, results)

	deps := InferDependencies(report, results)
	if len(deps) != 1 {
		t.Fatalf("expected 1 dependency, got %d: %+v", len(deps), deps)
	}
	dep := deps[0]
	if dep.Foundational != "algebra" {
		t.Errorf("foundational = %q, want algebra", dep.Foundational)
	}
	if dep.Dependent != "geometry" {
		t.Errorf("dependent = %q, want geometry", dep.Dependent)
	}
	// 3 of 5 players weak on both.
	if dep.Confidence != 60 {
		t.Errorf("confidence = %d, want 60", dep.Confidence)
	}
	if dep.Severity != SeverityHigh {
		t.Errorf("severity = %q, want high", dep.Severity)
	}
}

func TestInferDependenciesSkipsStrongPairs(t *testing.T) {
	questions := taggedQuestions([]string{"a"}, []string{"b"})
	row := func(a, b bool) record.PlayerResult {
		return record.PlayerResult{Answers: []*record.PlayerAnswer{
			answer(a, 1000), answer(b, 1000),
		}}
	}
	// Both concepts at 75%: above the attention band on both sides.
	results := []record.PlayerResult{
		row(true, true), row(true, true), row(true, true), row(false, false),
	}
	report := Analyze(questions, results)
	if deps := InferDependencies(report, results); deps != nil {
		t.Errorf("strong pair should be skipped, got %+v", deps)
	}
}

func TestInferDependenciesSkipsBothFailing(t *testing.T) {
	questions := taggedQuestions([]string{"a"}, []string{"b"})
	row := func(a, b bool) record.PlayerResult {
		return record.PlayerResult{Answers: []*record.PlayerAnswer{
			answer(a, 1000), answer(b, 1000),
		}}
	}
	// Both concepts at 25%: a shared-weakness signal adds nothing when the
	// whole class fails both.
	results := []record.PlayerResult{
		row(false, false), row(false, false), row(false, false), row(true, true),
	}
	report := Analyze(questions, results)
	if deps := InferDependencies(report, results); deps != nil {
		t.Errorf("uniformly failing pair should be skipped, got %+v", deps)
	}
}

func TestInferDependenciesNeedsEnoughPairs(t *testing.T) {
	questions := taggedQuestions([]string{"a"}, []string{"b"})
	results := []record.PlayerResult{
		{Answers: []*record.PlayerAnswer{answer(false, 1000), answer(false, 1000)}},
		{Answers: []*record.PlayerAnswer{answer(true, 1000), answer(true, 1000)}},
	}
	report := Analyze(questions, results)
	if deps := InferDependencies(report, results); deps != nil {
		t.Errorf("two players cannot support a dependency, got %+v", deps)
	}
}

func TestInferDependenciesIgnoresPlayersMissingAConcept(t *testing.T) {
	questions := taggedQuestions([]string{"a"}, []string{"b"})
	// The last two players never answered the second question, so they
	// have no ratio for concept b and cannot count as valid pairs.
	results := []record.PlayerResult{
		{Answers: []*record.PlayerAnswer{answer(false, 1000), answer(false, 1000)}},
		{Answers: []*record.PlayerAnswer{answer(false, 1000), answer(false, 1000)}},
		{Answers: []*record.PlayerAnswer{answer(true, 1000), answer(true, 1000)}},
		{Answers: []*record.PlayerAnswer{answer(true, 1000), nil}},
		{Answers: []*record.PlayerAnswer{answer(true, 1000)}},
	}
	report := Analyze(questions, results)
	deps := InferDependencies(report, results)
	if len(deps) != 1 {
		t.Fatalf("expected 1 dependency from the three complete players, got %+v", deps)
	}
	// 2 of 3 valid pairs weak on both.
	if deps[0].Confidence != 67 {
		t.Errorf("confidence = %d, want 67", deps[0].Confidence)
	}
}

func TestInferDependenciesEmptyReport(t *testing.T) {
	if deps := InferDependencies(nil, nil); deps != nil {
		t.Errorf("nil report: got %+v", deps)
	}
	report := Analyze(taggedQuestions([]string{"solo"}), nil)
	if deps := InferDependencies(report, nil); deps != nil {
		t.Errorf("single concept: got %+v", deps)
	}
}

func TestBuildInsights(t *testing.T) {
	questions, results := weakPairResults()
	report := Analyze(questions, results)
	deps := InferDependencies(report, results)

	insights := BuildInsights(report, deps)
	if len(insights) != 2 {
		t.Fatalf("expected focus-areas + dependency, got %+v", insights)
	}

	focus := insights[0]
	if focus.Type != InsightFocusAreas {
		t.Errorf("first insight type = %q", focus.Type)
	}
	if focus.Severity != SeverityHigh {
		t.Errorf("focus severity = %q, want high (a concept is below 40)", focus.Severity)
	}
	if len(focus.Concepts) != 2 {
		t.Errorf("focus concepts = %v", focus.Concepts)
	}

	dep := insights[1]
	if dep.Type != InsightDependency || dep.Severity != SeverityHigh {
		t.Errorf("dependency insight = %+v", dep)
	}
}

func TestBuildInsightsStrengths(t *testing.T) {
	questions := taggedQuestions([]string{"fractions"})
	results := []record.PlayerResult{
		{Answers: []*record.PlayerAnswer{answer(true, 1000)}},
		{Answers: []*record.PlayerAnswer{answer(true, 1000)}},
	}
	report := Analyze(questions, results)

	insights := BuildInsights(report, nil)
	if len(insights) != 1 {
		t.Fatalf("expected single strengths insight, got %+v", insights)
	}
	if insights[0].Type != InsightStrengths || insights[0].Severity != SeveritySuccess {
		t.Errorf("insight = %+v", insights[0])
	}
}

func TestBuildInsightsNoConcepts(t *testing.T) {
	report := Analyze(taggedQuestions(nil), nil)
	if got := BuildInsights(report, nil); got != nil {
		t.Errorf("untagged quiz: got %+v", got)
	}
}
