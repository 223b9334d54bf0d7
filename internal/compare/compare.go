// Package compare tracks quiz performance across repeated sessions of the
// same quiz and surfaces per-question trends.
package compare

import (
	"math"
	"sort"
	"time"

	"github.com/abiral/quizsight/internal/analytics"
	"github.com/abiral/quizsight/internal/record"
)

// trendBand: overall changes within this many percentage points count as
// stable rather than improving or declining.
const trendBand = 2.0

// Trend directions.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Session pairs a record with the filename it was loaded from.
type Session struct {
	Filename string
	Record   *record.SessionRecord
}

// SessionSummary is one session's analytics packed for comparison.
type SessionSummary struct {
	Date               time.Time                    `json:"date"`
	Filename           string                       `json:"filename"`
	ParticipantCount   int                          `json:"participantCount"`
	QuestionAnalytics  []analytics.QuestionAnalysis `json:"questionAnalytics"`
	Summary            *analytics.QuizSummary       `json:"summary"`
	OverallSuccessRate float64                      `json:"overallSuccessRate"`
}

// QuestionTrend tracks one question's success rate from the first session
// to the last.
type QuestionTrend struct {
	QuestionNumber int     `json:"questionNumber"`
	FirstRate      float64 `json:"firstRate"`
	LastRate       float64 `json:"lastRate"`
	Trend          float64 `json:"trend"`
}

// Report compares two or more sessions of the same quiz.
type Report struct {
	Sessions            []SessionSummary `json:"sessions"`
	SessionCount        int              `json:"sessionCount"`
	OverallTrend        float64          `json:"overallTrend"`
	TrendDirection      string           `json:"trendDirection"`
	QuestionTrends      []QuestionTrend  `json:"questionTrends"`
	MostImproved        *QuestionTrend   `json:"mostImproved,omitempty"`
	MostDeclined        *QuestionTrend   `json:"mostDeclined,omitempty"`
	AverageParticipants int              `json:"averageParticipants"`
}

// Compare analyzes each session and reports the trend from the earliest to
// the latest. Returns nil with fewer than two sessions; a comparison needs
// at least two points.
func Compare(sessions []Session) *Report {
	if len(sessions) < 2 {
		return nil
	}

	summaries := make([]SessionSummary, 0, len(sessions))
	totalParticipants := 0
	for _, s := range sessions {
		summary := summarizeSession(s)
		totalParticipants += summary.ParticipantCount
		summaries = append(summaries, summary)
	}

	// Stable sort keeps input order for identical dates.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date.Before(summaries[j].Date)
	})

	first := summaries[0]
	last := summaries[len(summaries)-1]

	report := &Report{
		Sessions:            summaries,
		SessionCount:        len(summaries),
		OverallTrend:        last.OverallSuccessRate - first.OverallSuccessRate,
		QuestionTrends:      questionTrends(first, last, summaries),
		AverageParticipants: int(math.Round(float64(totalParticipants) / float64(len(summaries)))),
	}
	report.TrendDirection = direction(report.OverallTrend)
	report.MostImproved, report.MostDeclined = extremes(report.QuestionTrends)
	return report
}

func summarizeSession(s Session) SessionSummary {
	summary := SessionSummary{Filename: s.Filename}
	if s.Record == nil {
		return summary
	}
	summary.Date = s.Record.Saved.Time
	summary.ParticipantCount = len(s.Record.Results)
	summary.QuestionAnalytics = analytics.AnalyzeQuestions(s.Record)
	summary.Summary = analytics.Summarize(summary.QuestionAnalytics)
	if summary.Summary != nil {
		summary.OverallSuccessRate = summary.Summary.AvgSuccessRate
	}
	return summary
}

// questionTrends compares the first and last session question by question,
// over the question count shared by every session.
func questionTrends(first, last SessionSummary, all []SessionSummary) []QuestionTrend {
	shared := len(first.QuestionAnalytics)
	for _, s := range all {
		if len(s.QuestionAnalytics) < shared {
			shared = len(s.QuestionAnalytics)
		}
	}

	trends := make([]QuestionTrend, 0, shared)
	for i := 0; i < shared; i++ {
		firstRate := first.QuestionAnalytics[i].SuccessRate
		lastRate := last.QuestionAnalytics[i].SuccessRate
		trends = append(trends, QuestionTrend{
			QuestionNumber: i + 1,
			FirstRate:      firstRate,
			LastRate:       lastRate,
			Trend:          lastRate - firstRate,
		})
	}
	return trends
}

func direction(trend float64) string {
	switch {
	case trend > trendBand:
		return TrendImproving
	case trend < -trendBand:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// extremes picks the biggest gain and the biggest loss. A gain only counts
// if positive, a loss only if negative.
func extremes(trends []QuestionTrend) (improved, declined *QuestionTrend) {
	for i := range trends {
		if improved == nil || trends[i].Trend > improved.Trend {
			improved = &trends[i]
		}
		if declined == nil || trends[i].Trend < declined.Trend {
			declined = &trends[i]
		}
	}
	if improved != nil && improved.Trend <= 0 {
		improved = nil
	}
	if declined != nil && declined.Trend >= 0 {
		declined = nil
	}
	return improved, declined
}
