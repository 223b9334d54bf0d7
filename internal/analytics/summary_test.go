package analytics

import "testing"

func analysisWithRate(number int, rate float64, problematic bool) QuestionAnalysis {
	return QuestionAnalysis{
		QuestionNumber:           number,
		SuccessRate:              rate,
		AverageTime:              10,
		IsPotentiallyProblematic: problematic,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != nil {
		t.Errorf("Summarize(nil) = %+v, want nil", got)
	}
	if got := Summarize([]QuestionAnalysis{}); got != nil {
		t.Errorf("Summarize(empty) = %+v, want nil", got)
	}
}

func TestSummarizeAggregates(t *testing.T) {
	analyses := []QuestionAnalysis{
		analysisWithRate(1, 80, false),
		analysisWithRate(2, 20, true),
		analysisWithRate(3, 50, false),
	}

	s := Summarize(analyses)
	if s == nil {
		t.Fatal("expected summary")
	}
	if s.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d", s.TotalQuestions)
	}
	if !almostEqual(s.AvgSuccessRate, 50) {
		t.Errorf("AvgSuccessRate = %v, want 50", s.AvgSuccessRate)
	}
	if !almostEqual(s.AvgTime, 10) {
		t.Errorf("AvgTime = %v, want 10", s.AvgTime)
	}
	if s.ProblematicCount != 1 {
		t.Errorf("ProblematicCount = %d, want 1", s.ProblematicCount)
	}
	if s.HardestQuestion.QuestionNumber != 2 {
		t.Errorf("hardest = question %d, want 2", s.HardestQuestion.QuestionNumber)
	}
	if s.EasiestQuestion.QuestionNumber != 1 {
		t.Errorf("easiest = question %d, want 1", s.EasiestQuestion.QuestionNumber)
	}
	// 1 of 3 problematic is above the review threshold.
	if !s.NeedsReview {
		t.Error("expected NeedsReview")
	}
}

func TestSummarizeTieBreaks(t *testing.T) {
	analyses := []QuestionAnalysis{
		analysisWithRate(1, 50, false),
		analysisWithRate(2, 50, false),
		analysisWithRate(3, 50, false),
	}
	s := Summarize(analyses)
	if s.HardestQuestion.QuestionNumber != 1 {
		t.Errorf("hardest on tie = question %d, want earliest", s.HardestQuestion.QuestionNumber)
	}
	if s.EasiestQuestion.QuestionNumber != 3 {
		t.Errorf("easiest on tie = question %d, want latest", s.EasiestQuestion.QuestionNumber)
	}
}

func TestSummarizeReviewThreshold(t *testing.T) {
	// 3 of 10 problematic: exactly 0.3 does not trip the threshold.
	var analyses []QuestionAnalysis
	for i := 1; i <= 10; i++ {
		analyses = append(analyses, analysisWithRate(i, 70, i <= 3))
	}
	if s := Summarize(analyses); s.NeedsReview {
		t.Error("exactly 30%% problematic must not need review")
	}

	analyses[3].IsPotentiallyProblematic = true
	if s := Summarize(analyses); !s.NeedsReview {
		t.Error("4 of 10 problematic should need review")
	}
}

func TestSummarizeLeavesInputOrder(t *testing.T) {
	analyses := []QuestionAnalysis{
		analysisWithRate(1, 90, false),
		analysisWithRate(2, 10, true),
	}
	Summarize(analyses)
	if analyses[0].QuestionNumber != 1 || analyses[1].QuestionNumber != 2 {
		t.Error("Summarize must not reorder its input")
	}
}
