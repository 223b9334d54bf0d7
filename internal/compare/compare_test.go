package compare

import (
	"math"
	"testing"
	"time"

	"github.com/abiral/quizsight/internal/record"
)

// sessionWithRates builds a session where question i was answered correctly
// by rates[i] out of 10 players.
func sessionWithRates(t *testing.T, filename string, saved time.Time, correctOutOfTen ...int) Session {
	t.Helper()
	const players = 10

	questions := make([]record.Question, len(correctOutOfTen))
	for i := range questions {
		questions[i] = record.Question{Text: "Q", CorrectAnswer: record.Scalar("A")}
	}

	rec := &record.SessionRecord{
		Saved:     record.Timestamp{Time: saved},
		Questions: questions,
	}
	for p := 0; p < players; p++ {
		answers := make([]*record.PlayerAnswer, len(correctOutOfTen))
		for q, correct := range correctOutOfTen {
			answers[q] = &record.PlayerAnswer{
				Answer:    record.Scalar("A"),
				IsCorrect: p < correct,
				TimeMs:    5000,
			}
		}
		rec.Results = append(rec.Results, record.PlayerResult{Name: "P", Answers: answers})
	}
	return Session{Filename: filename, Record: rec}
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 10, 0, 0, 0, time.UTC)
}

func TestCompareNeedsTwoSessions(t *testing.T) {
	if got := Compare(nil); got != nil {
		t.Errorf("Compare(nil) = %+v, want nil", got)
	}
	one := []Session{sessionWithRates(t, "a.json", day(1), 5)}
	if got := Compare(one); got != nil {
		t.Errorf("single session: got %+v, want nil", got)
	}
}

func TestCompareImprovingTrend(t *testing.T) {
	sessions := []Session{
		sessionWithRates(t, "week1.json", day(1), 5, 4),
		sessionWithRates(t, "week2.json", day(8), 6, 5),
		sessionWithRates(t, "week3.json", day(15), 6, 6),
	}

	report := Compare(sessions)
	if report == nil {
		t.Fatal("expected report")
	}
	if report.SessionCount != 3 {
		t.Errorf("SessionCount = %d", report.SessionCount)
	}
	// First averages 45%, last 60%.
	if math.Abs(report.OverallTrend-15) > 1e-9 {
		t.Errorf("OverallTrend = %v, want 15", report.OverallTrend)
	}
	if report.TrendDirection != TrendImproving {
		t.Errorf("TrendDirection = %q, want improving", report.TrendDirection)
	}
	if report.AverageParticipants != 10 {
		t.Errorf("AverageParticipants = %d, want 10", report.AverageParticipants)
	}

	if len(report.QuestionTrends) != 2 {
		t.Fatalf("QuestionTrends = %+v", report.QuestionTrends)
	}
	q2 := report.QuestionTrends[1]
	if q2.QuestionNumber != 2 || math.Abs(q2.Trend-20) > 1e-9 {
		t.Errorf("question 2 trend = %+v, want +20", q2)
	}
	if report.MostImproved == nil || report.MostImproved.QuestionNumber != 2 {
		t.Errorf("MostImproved = %+v, want question 2", report.MostImproved)
	}
	if report.MostDeclined != nil {
		t.Errorf("MostDeclined = %+v, want nil when nothing declined", report.MostDeclined)
	}
}

func TestCompareSortsByDate(t *testing.T) {
	sessions := []Session{
		sessionWithRates(t, "late.json", day(20), 8),
		sessionWithRates(t, "early.json", day(1), 4),
	}

	report := Compare(sessions)
	if report.Sessions[0].Filename != "early.json" {
		t.Errorf("first session = %q, want early.json", report.Sessions[0].Filename)
	}
	if math.Abs(report.OverallTrend-40) > 1e-9 {
		t.Errorf("OverallTrend = %v, want 40 after date sort", report.OverallTrend)
	}
}

func TestCompareStableBand(t *testing.T) {
	tests := []struct {
		name  string
		first int
		last  int
		want  string
	}{
		{"flat", 5, 5, TrendStable},
		{"declining", 8, 4, TrendDeclining},
		{"improving", 4, 8, TrendImproving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Compare([]Session{
				sessionWithRates(t, "a.json", day(1), tt.first),
				sessionWithRates(t, "b.json", day(2), tt.last),
			})
			if report.TrendDirection != tt.want {
				t.Errorf("direction = %q, want %q", report.TrendDirection, tt.want)
			}
		})
	}
}

func TestCompareDeclinedQuestion(t *testing.T) {
	report := Compare([]Session{
		sessionWithRates(t, "a.json", day(1), 8, 5),
		sessionWithRates(t, "b.json", day(2), 3, 5),
	})
	if report.MostDeclined == nil || report.MostDeclined.QuestionNumber != 1 {
		t.Fatalf("MostDeclined = %+v, want question 1", report.MostDeclined)
	}
	if math.Abs(report.MostDeclined.Trend+50) > 1e-9 {
		t.Errorf("declined trend = %v, want -50", report.MostDeclined.Trend)
	}
	if report.MostImproved != nil {
		t.Errorf("MostImproved = %+v, want nil", report.MostImproved)
	}
}

func TestCompareSharedQuestionCount(t *testing.T) {
	report := Compare([]Session{
		sessionWithRates(t, "a.json", day(1), 5, 5, 5),
		sessionWithRates(t, "b.json", day(2), 6),
	})
	if len(report.QuestionTrends) != 1 {
		t.Errorf("trends over %d questions, want the shared 1", len(report.QuestionTrends))
	}
}

func TestCompareEmptyRecord(t *testing.T) {
	empty := Session{Filename: "empty.json", Record: &record.SessionRecord{
		Saved: record.Timestamp{Time: day(1)},
	}}
	report := Compare([]Session{
		empty,
		sessionWithRates(t, "b.json", day(2), 5),
	})
	if report == nil {
		t.Fatal("expected report")
	}
	if report.Sessions[0].OverallSuccessRate != 0 {
		t.Errorf("empty session rate = %v, want 0", report.Sessions[0].OverallSuccessRate)
	}
	if len(report.QuestionTrends) != 0 {
		t.Errorf("trends = %+v, want none with a zero-question session", report.QuestionTrends)
	}
}
