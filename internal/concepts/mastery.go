// Package concepts rolls question results up by concept tag, infers
// dependency signals between concepts, and produces teaching insights.
package concepts

import (
	"github.com/abiral/quizsight/internal/record"
)

// Mastery level thresholds on the 0-100 rate scale.
const (
	masteredThreshold   = 80.0
	proficientThreshold = 60.0
	developingThreshold = 40.0
)

// Mastery levels, strongest first.
const (
	LevelMastered   = "mastered"
	LevelProficient = "proficient"
	LevelDeveloping = "developing"
	LevelNeedsWork  = "needs-work"
)

// ConceptStats aggregates every question tagged with one concept.
type ConceptStats struct {
	Name             string  `json:"name"`
	QuestionCount    int     `json:"questionCount"`
	TotalResponses   int     `json:"totalResponses"`
	CorrectResponses int     `json:"correctResponses"`
	TotalTime        float64 `json:"totalTime"`
	QuestionIndices  []int   `json:"questionIndices"`
	MasteryRate      float64 `json:"masteryRate"`
	AverageTime      float64 `json:"averageTime"`
	MasteryLevel     string  `json:"masteryLevel"`
}

// MasteryReport maps concept names to their stats. Order preserves the
// sequence concepts were first seen in the question list, so output is
// deterministic.
type MasteryReport struct {
	Concepts    map[string]*ConceptStats `json:"concepts"`
	Order       []string                 `json:"-"`
	HasConcepts bool                     `json:"hasConcepts"`
}

// Analyze rolls player results up per concept. Questions without concept
// tags contribute nothing; a question tagged with two concepts counts
// toward both.
func Analyze(questions []record.Question, results []record.PlayerResult) *MasteryReport {
	report := &MasteryReport{Concepts: make(map[string]*ConceptStats)}

	for qi := range questions {
		tags := questions[qi].Concepts
		if len(tags) == 0 {
			continue
		}

		correct, total, totalTime := questionTotals(results, qi)

		for _, name := range tags {
			stats, ok := report.Concepts[name]
			if !ok {
				stats = &ConceptStats{Name: name, QuestionIndices: []int{}}
				report.Concepts[name] = stats
				report.Order = append(report.Order, name)
			}
			stats.QuestionCount++
			stats.QuestionIndices = append(stats.QuestionIndices, qi)
			stats.TotalResponses += total
			stats.CorrectResponses += correct
			stats.TotalTime += totalTime
		}
	}

	for _, name := range report.Order {
		stats := report.Concepts[name]
		if stats.TotalResponses > 0 {
			n := float64(stats.TotalResponses)
			stats.MasteryRate = float64(stats.CorrectResponses) / n * 100
			stats.AverageTime = stats.TotalTime / n
		}
		stats.MasteryLevel = levelForRate(stats.MasteryRate)
	}

	report.HasConcepts = len(report.Order) > 0
	return report
}

// questionTotals sums one question's responses across players.
func questionTotals(results []record.PlayerResult, index int) (correct, total int, totalTime float64) {
	for _, player := range results {
		if index >= len(player.Answers) {
			continue
		}
		ans := player.Answers[index]
		if ans == nil {
			continue
		}
		total++
		totalTime += ans.TimeMs / 1000
		if ans.IsCorrect {
			correct++
		}
	}
	return correct, total, totalTime
}

func levelForRate(rate float64) string {
	switch {
	case rate >= masteredThreshold:
		return LevelMastered
	case rate >= proficientThreshold:
		return LevelProficient
	case rate >= developingThreshold:
		return LevelDeveloping
	default:
		return LevelNeedsWork
	}
}
