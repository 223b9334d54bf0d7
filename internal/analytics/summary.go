package analytics

import "sort"

// needsReviewShare: above this fraction of problematic questions, the quiz
// as a whole is worth revisiting.
const needsReviewShare = 0.3

// QuizSummary aggregates a full quiz's question analyses.
type QuizSummary struct {
	TotalQuestions   int     `json:"totalQuestions"`
	ProblematicCount int     `json:"problematicCount"`
	AvgSuccessRate   float64 `json:"avgSuccessRate"`
	AvgTime          float64 `json:"avgTime"`

	HardestQuestion *QuestionAnalysis `json:"hardestQuestion"`
	EasiestQuestion *QuestionAnalysis `json:"easiestQuestion"`

	NeedsReview bool `json:"needsReview"`
}

// Summarize rolls question analyses up into a quiz-level summary.
// Returns nil for an empty list.
func Summarize(analyses []QuestionAnalysis) *QuizSummary {
	if len(analyses) == 0 {
		return nil
	}

	s := &QuizSummary{TotalQuestions: len(analyses)}
	for i := range analyses {
		s.AvgSuccessRate += analyses[i].SuccessRate
		s.AvgTime += analyses[i].AverageTime
		if analyses[i].IsPotentiallyProblematic {
			s.ProblematicCount++
		}
	}
	n := float64(len(analyses))
	s.AvgSuccessRate /= n
	s.AvgTime /= n

	// Stable ascending sort on a copy: ties leave the earliest question
	// first, so it wins "hardest" and the latest wins "easiest".
	byRate := make([]QuestionAnalysis, len(analyses))
	copy(byRate, analyses)
	sort.SliceStable(byRate, func(i, j int) bool {
		return byRate[i].SuccessRate < byRate[j].SuccessRate
	})
	s.HardestQuestion = &byRate[0]
	s.EasiestQuestion = &byRate[len(byRate)-1]

	s.NeedsReview = float64(s.ProblematicCount)/n > needsReviewShare
	return s
}
