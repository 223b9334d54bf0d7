// Package analytics computes per-question and whole-quiz statistics from a
// saved session record. All computation is deterministic and side-effect
// free; malformed records produce empty output rather than errors.
package analytics

import (
	"github.com/abiral/quizsight/internal/record"
)

// QuestionAnalysis is the full per-question breakdown.
type QuestionAnalysis struct {
	QuestionNumber int    `json:"questionNumber"`
	Text           string `json:"text"`
	Type           string `json:"type"`
	Difficulty     string `json:"difficulty"`
	CorrectAnswer  string `json:"correctAnswer"`
	Reconstructed  bool   `json:"reconstructed,omitempty"`

	TotalResponses   int     `json:"totalResponses"`
	CorrectResponses int     `json:"correctResponses"`
	SuccessRate      float64 `json:"successRate"`

	TotalTime   float64 `json:"totalTime"`
	AverageTime float64 `json:"averageTime"`

	TotalPoints   float64 `json:"totalPoints"`
	AveragePoints float64 `json:"averagePoints"`

	// TimeEfficiency relates success to time spent: high values mean players
	// answered correctly and fast. Computed for the output contract; nothing
	// downstream consumes it yet.
	TimeEfficiency float64 `json:"timeEfficiency"`

	StrugglingPlayers  []StrugglingPlayer `json:"strugglingPlayers"`
	CommonWrongAnswers []WrongAnswerCount `json:"commonWrongAnswers"`

	ProblemFlags             []Flag `json:"problemFlags"`
	IsPotentiallyProblematic bool   `json:"isPotentiallyProblematic"`
}

// StrugglingPlayer records one incorrect response to a question.
type StrugglingPlayer struct {
	Name   string  `json:"name"`
	Answer string  `json:"answer"`
	Time   float64 `json:"time"`
	Points float64 `json:"points"`
}

// WrongAnswerCount counts how many players gave a particular wrong answer.
// Kept as an ordered list rather than a map so output order is stable.
type WrongAnswerCount struct {
	Answer string `json:"answer"`
	Count  int    `json:"count"`
}

// AnalyzeQuestions builds one QuestionAnalysis per question in the record.
// Returns nil when the record has no questions or no results. Question
// metadata is reconstructed first if the record omits it.
func AnalyzeQuestions(rec *record.SessionRecord) []QuestionAnalysis {
	if rec == nil || len(rec.Results) == 0 {
		return nil
	}
	rec.EnsureQuestions()
	questions := rec.QuestionList()
	if len(questions) == 0 {
		return nil
	}

	rules := defaultFlagRules()
	analyses := make([]QuestionAnalysis, 0, len(questions))
	for i := range questions {
		a := analyzeQuestion(&questions[i], i, rec.Results)
		applyFlags(&a, rules)
		analyses = append(analyses, a)
	}
	return analyses
}

func analyzeQuestion(q *record.Question, index int, results []record.PlayerResult) QuestionAnalysis {
	a := QuestionAnalysis{
		QuestionNumber:     index + 1,
		Text:               q.Label(),
		Type:               q.TypeOrDefault(),
		Difficulty:         q.DifficultyOrDefault(),
		CorrectAnswer:      q.CorrectAnswer.Key(),
		Reconstructed:      q.Reconstructed,
		StrugglingPlayers:  []StrugglingPlayer{},
		CommonWrongAnswers: []WrongAnswerCount{},
		ProblemFlags:       []Flag{},
	}

	wrongCounts := make(map[string]int)
	var wrongOrder []string

	for _, player := range results {
		if index >= len(player.Answers) {
			continue
		}
		ans := player.Answers[index]
		if ans == nil {
			continue
		}

		timeSecs := ans.TimeMs / 1000

		a.TotalResponses++
		a.TotalTime += timeSecs
		a.TotalPoints += ans.Points

		if ans.IsCorrect {
			a.CorrectResponses++
			continue
		}

		a.StrugglingPlayers = append(a.StrugglingPlayers, StrugglingPlayer{
			Name:   player.Name,
			Answer: ans.Answer.Key(),
			Time:   timeSecs,
			Points: ans.Points,
		})
		key := ans.Answer.Key()
		if _, seen := wrongCounts[key]; !seen {
			wrongOrder = append(wrongOrder, key)
		}
		wrongCounts[key]++
	}

	if a.TotalResponses > 0 {
		n := float64(a.TotalResponses)
		a.SuccessRate = float64(a.CorrectResponses) / n * 100
		a.AverageTime = a.TotalTime / n
		a.AveragePoints = a.TotalPoints / n
		a.TimeEfficiency = a.SuccessRate / max(a.AverageTime, 1)
	}

	for _, key := range wrongOrder {
		a.CommonWrongAnswers = append(a.CommonWrongAnswers, WrongAnswerCount{
			Answer: key,
			Count:  wrongCounts[key],
		})
	}
	return a
}
