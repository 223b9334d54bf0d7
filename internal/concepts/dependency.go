package concepts

import (
	"fmt"
	"math"

	"github.com/abiral/quizsight/internal/record"
)

// Dependency inference thresholds.
const (
	pairSkipHighRate = 70.0
	pairSkipLowRate  = 40.0
	weakRatio        = 0.5
	minValidPairs    = 3
	bothWeakShare    = 0.4
	severityLowRate  = 50.0
)

// Dependency is a co-occurrence signal between two concepts: players weak
// on the foundational concept tend to be weak on the dependent one too.
// It is a heuristic, not a causal claim.
type Dependency struct {
	Foundational string `json:"foundational"`
	Dependent    string `json:"dependent"`
	Confidence   int    `json:"confidence"`
	Severity     string `json:"severity"`
	Message      string `json:"message"`
}

// Severity levels for dependencies and insights.
const (
	SeverityHigh    = "high"
	SeverityMedium  = "medium"
	SeveritySuccess = "success"
)

// InferDependencies scans every concept pair for correlated weakness.
// The concept with the lower overall mastery rate is declared foundational.
// Pairs are enumerated in concept discovery order so output is stable.
func InferDependencies(report *MasteryReport, results []record.PlayerResult) []Dependency {
	if report == nil || len(report.Order) < 2 {
		return nil
	}

	matrix := playerConceptMatrix(report, results)
	var deps []Dependency

	for i := 0; i < len(report.Order); i++ {
		for j := i + 1; j < len(report.Order); j++ {
			a := report.Concepts[report.Order[i]]
			b := report.Concepts[report.Order[j]]

			if a.MasteryRate >= pairSkipHighRate && b.MasteryRate >= pairSkipHighRate {
				continue
			}
			if a.MasteryRate < pairSkipLowRate && b.MasteryRate < pairSkipLowRate {
				continue
			}

			validPairs, bothWeak := 0, 0
			for _, row := range matrix {
				ra, okA := row[a.Name]
				rb, okB := row[b.Name]
				if !okA || !okB {
					continue
				}
				validPairs++
				if ra < weakRatio && rb < weakRatio {
					bothWeak++
				}
			}

			if validPairs < minValidPairs {
				continue
			}
			share := float64(bothWeak) / float64(validPairs)
			if share <= bothWeakShare {
				continue
			}

			foundational, dependent := a, b
			if b.MasteryRate < a.MasteryRate {
				foundational, dependent = b, a
			}

			severity := SeverityMedium
			if a.MasteryRate < severityLowRate || b.MasteryRate < severityLowRate {
				severity = SeverityHigh
			}

			confidence := int(math.Round(share * 100))
			deps = append(deps, Dependency{
				Foundational: foundational.Name,
				Dependent:    dependent.Name,
				Confidence:   confidence,
				Severity:     severity,
				Message: fmt.Sprintf(
					"Players struggling with %s also struggle with %s (%d%% of %d players weak on both)",
					foundational.Name, dependent.Name, confidence, validPairs,
				),
			})
		}
	}
	return deps
}

// playerConceptMatrix computes each player's per-concept correctness ratio.
// A concept is absent from a player's row when they answered none of its
// questions.
func playerConceptMatrix(report *MasteryReport, results []record.PlayerResult) []map[string]float64 {
	matrix := make([]map[string]float64, 0, len(results))
	for _, player := range results {
		row := make(map[string]float64, len(report.Order))
		for _, name := range report.Order {
			stats := report.Concepts[name]
			correct, total := 0, 0
			for _, qi := range stats.QuestionIndices {
				if qi >= len(player.Answers) {
					continue
				}
				ans := player.Answers[qi]
				if ans == nil {
					continue
				}
				total++
				if ans.IsCorrect {
					correct++
				}
			}
			if total > 0 {
				row[name] = float64(correct) / float64(total)
			}
		}
		matrix = append(matrix, row)
	}
	return matrix
}
