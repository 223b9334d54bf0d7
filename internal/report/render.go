// Package report renders analytics results as styled terminal text.
package report

import (
	"fmt"
	"strings"

	"github.com/abiral/quizsight/internal/analytics"
	"github.com/abiral/quizsight/internal/compare"
	"github.com/abiral/quizsight/internal/concepts"
)

const dividerWidth = 60

func divider() string {
	return dimStyle.Render(strings.Repeat("─", dividerWidth))
}

// RenderAnalysis renders the full per-question report plus the quiz summary.
func RenderAnalysis(title string, analyses []analytics.QuestionAnalysis, summary *analytics.QuizSummary) string {
	var b strings.Builder

	if title == "" {
		title = "Quiz results"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(divider())
	b.WriteString("\n\n")

	if len(analyses) == 0 {
		b.WriteString(dimStyle.Render("No analytics available for this session."))
		b.WriteString("\n")
		return b.String()
	}

	for i := range analyses {
		b.WriteString(RenderQuestionDetail(&analyses[i]))
		b.WriteString("\n")
	}

	if summary != nil {
		b.WriteString(renderSummary(summary))
	}
	return b.String()
}

// RenderQuestionDetail renders one question's analysis block. The
// interactive browser reuses it for its detail pane.
func RenderQuestionDetail(a *analytics.QuestionAnalysis) string {
	var b strings.Builder

	header := fmt.Sprintf("Q%d. %s", a.QuestionNumber, a.Text)
	if a.Reconstructed {
		header += dimStyle.Render("  (reconstructed)")
	}
	b.WriteString(sectionStyle.Render(header))
	b.WriteString("\n")

	rate := rateStyle(a.SuccessRate).Render(fmt.Sprintf("%.0f%%", a.SuccessRate))
	b.WriteString(fmt.Sprintf("  %s correct (%d/%d), avg %.1fs, avg %.0f pts\n",
		rate, a.CorrectResponses, a.TotalResponses, a.AverageTime, a.AveragePoints))

	if a.CorrectAnswer != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  Correct answer: %s", a.CorrectAnswer)))
		b.WriteString("\n")
	}

	for _, f := range a.ProblemFlags {
		b.WriteString("  ")
		b.WriteString(severityStyle(f.Severity).Render(fmt.Sprintf("[%s] %s", f.Severity, f.Message)))
		b.WriteString("\n")
	}

	if len(a.CommonWrongAnswers) > 0 {
		parts := make([]string, 0, len(a.CommonWrongAnswers))
		for _, w := range a.CommonWrongAnswers {
			parts = append(parts, fmt.Sprintf("%s (%d)", w.Answer, w.Count))
		}
		b.WriteString(dimStyle.Render("  Wrong answers: " + strings.Join(parts, ", ")))
		b.WriteString("\n")
	}

	if len(a.StrugglingPlayers) > 0 {
		names := make([]string, 0, len(a.StrugglingPlayers))
		for _, p := range a.StrugglingPlayers {
			names = append(names, p.Name)
		}
		b.WriteString(dimStyle.Render("  Struggling: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

func renderSummary(s *analytics.QuizSummary) string {
	var b strings.Builder
	b.WriteString(divider())
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Questions: %d    Avg success: %s    Avg time: %.1fs\n",
		s.TotalQuestions,
		rateStyle(s.AvgSuccessRate).Render(fmt.Sprintf("%.0f%%", s.AvgSuccessRate)),
		s.AvgTime))
	if s.HardestQuestion != nil {
		b.WriteString(fmt.Sprintf("  Hardest: Q%d (%.0f%%)    Easiest: Q%d (%.0f%%)\n",
			s.HardestQuestion.QuestionNumber, s.HardestQuestion.SuccessRate,
			s.EasiestQuestion.QuestionNumber, s.EasiestQuestion.SuccessRate))
	}
	if s.ProblematicCount > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d question(s) flagged as problematic", s.ProblematicCount)))
		b.WriteString("\n")
	}
	if s.NeedsReview {
		b.WriteString(badStyle.Render("  This quiz needs review"))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderConcepts renders the concept mastery report with dependencies and
// insights.
func RenderConcepts(report *concepts.MasteryReport, deps []concepts.Dependency, insights []concepts.Insight) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Concept mastery"))
	b.WriteString("\n")
	b.WriteString(divider())
	b.WriteString("\n\n")

	if report == nil || !report.HasConcepts {
		b.WriteString(dimStyle.Render("No concept tags in this session."))
		b.WriteString("\n")
		return b.String()
	}

	for _, name := range report.Order {
		stats := report.Concepts[name]
		rate := rateStyle(stats.MasteryRate).Render(fmt.Sprintf("%3.0f%%", stats.MasteryRate))
		b.WriteString(fmt.Sprintf("  %-24s %s  %-10s %d question(s), avg %.1fs\n",
			name, rate, stats.MasteryLevel, stats.QuestionCount, stats.AverageTime))
	}

	if len(deps) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Possible dependencies"))
		b.WriteString("\n")
		for _, dep := range deps {
			b.WriteString("  ")
			b.WriteString(severityStyle(dep.Severity).Render(
				fmt.Sprintf("%s -> %s (%d%% confidence)", dep.Foundational, dep.Dependent, dep.Confidence)))
			b.WriteString("\n")
		}
	}

	if len(insights) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Insights"))
		b.WriteString("\n")
		for _, ins := range insights {
			b.WriteString("  ")
			b.WriteString(severityStyle(ins.Severity).Render("• " + ins.Message))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderComparison renders a cross-session trend report.
func RenderComparison(report *compare.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Session comparison"))
	b.WriteString("\n")
	b.WriteString(divider())
	b.WriteString("\n\n")

	if report == nil {
		b.WriteString(dimStyle.Render("Need at least two sessions to compare."))
		b.WriteString("\n")
		return b.String()
	}

	for _, s := range report.Sessions {
		date := "unknown date"
		if !s.Date.IsZero() {
			date = s.Date.Format("2006-01-02")
		}
		b.WriteString(fmt.Sprintf("  %s  %-28s %s  %d players\n",
			date, s.Filename,
			rateStyle(s.OverallSuccessRate).Render(fmt.Sprintf("%3.0f%%", s.OverallSuccessRate)),
			s.ParticipantCount))
	}

	b.WriteString("\n")
	trend := fmt.Sprintf("%+.1f points (%s)", report.OverallTrend, report.TrendDirection)
	var trendStyled string
	switch report.TrendDirection {
	case compare.TrendImproving:
		trendStyled = goodStyle.Render(trend)
	case compare.TrendDeclining:
		trendStyled = badStyle.Render(trend)
	default:
		trendStyled = dimStyle.Render(trend)
	}
	b.WriteString(fmt.Sprintf("  Overall trend: %s over %d sessions, avg %d players\n",
		trendStyled, report.SessionCount, report.AverageParticipants))

	if report.MostImproved != nil {
		b.WriteString(goodStyle.Render(fmt.Sprintf("  Most improved: Q%d (%+.1f)",
			report.MostImproved.QuestionNumber, report.MostImproved.Trend)))
		b.WriteString("\n")
	}
	if report.MostDeclined != nil {
		b.WriteString(badStyle.Render(fmt.Sprintf("  Most declined: Q%d (%+.1f)",
			report.MostDeclined.QuestionNumber, report.MostDeclined.Trend)))
		b.WriteString("\n")
	}

	if len(report.QuestionTrends) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Per-question trend"))
		b.WriteString("\n")
		for _, qt := range report.QuestionTrends {
			b.WriteString(fmt.Sprintf("  Q%-3d %3.0f%% -> %3.0f%%  (%+.1f)\n",
				qt.QuestionNumber, qt.FirstRate, qt.LastRate, qt.Trend))
		}
	}
	return b.String()
}
