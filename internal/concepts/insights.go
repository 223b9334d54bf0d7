package concepts

import (
	"fmt"
	"strings"
)

// Insight types.
const (
	InsightFocusAreas = "focus-areas"
	InsightStrengths  = "strengths"
	InsightDependency = "dependency"
)

// Insight is one actionable observation derived from mastery data.
type Insight struct {
	Type     string   `json:"type"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Concepts []string `json:"concepts,omitempty"`
}

// BuildInsights turns mastery stats and dependencies into a flat insight
// list: weak concepts first, then strengths, then one item per dependency.
func BuildInsights(report *MasteryReport, deps []Dependency) []Insight {
	if report == nil || !report.HasConcepts {
		return nil
	}

	var insights []Insight

	var weak, strong []string
	anyCritical := false
	for _, name := range report.Order {
		stats := report.Concepts[name]
		if stats.MasteryRate < proficientThreshold {
			weak = append(weak, name)
			if stats.MasteryRate < developingThreshold {
				anyCritical = true
			}
		}
		if stats.MasteryRate >= masteredThreshold {
			strong = append(strong, name)
		}
	}

	if len(weak) > 0 {
		severity := SeverityMedium
		if anyCritical {
			severity = SeverityHigh
		}
		insights = append(insights, Insight{
			Type:     InsightFocusAreas,
			Severity: severity,
			Message:  fmt.Sprintf("Focus teaching time on: %s", strings.Join(weak, ", ")),
			Concepts: weak,
		})
	}

	if len(strong) > 0 {
		insights = append(insights, Insight{
			Type:     InsightStrengths,
			Severity: SeveritySuccess,
			Message:  fmt.Sprintf("Well understood: %s", strings.Join(strong, ", ")),
			Concepts: strong,
		})
	}

	for _, dep := range deps {
		insights = append(insights, Insight{
			Type:     InsightDependency,
			Severity: dep.Severity,
			Message:  dep.Message,
			Concepts: []string{dep.Foundational, dep.Dependent},
		})
	}

	return insights
}
