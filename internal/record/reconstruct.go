package record

import "fmt"

// UnknownAnswer is the sentinel returned when reconstruction cannot infer a
// correct answer for a question.
const UnknownAnswer = "Unknown"

// ReconstructQuestions infers a minimal question list from positional player
// answers. It is the fallback for records saved without question metadata:
// one placeholder question per answer slot of the first player, each marked
// Reconstructed with its correct answer inferred from scoring.
// Never fails; malformed input yields an empty list.
func ReconstructQuestions(results []PlayerResult) []Question {
	if len(results) == 0 {
		return []Question{}
	}

	n := len(results[0].Answers)
	questions := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, Question{
			Text:          fmt.Sprintf("Question %d", i+1),
			Type:          DefaultQuestionType,
			Difficulty:    "unknown",
			Reconstructed: true,
			CorrectAnswer: InferCorrectAnswer(results, i),
		})
	}
	return questions
}

// InferCorrectAnswer guesses the correct answer for question index i.
// The first answer that earned a positive score wins outright; otherwise
// the answer with the highest average score across players is chosen,
// first-seen winning ties. With no answers at all it returns the
// UnknownAnswer sentinel.
func InferCorrectAnswer(results []PlayerResult, index int) AnswerValue {
	type answerStat struct {
		value      AnswerValue
		count      int
		totalScore float64
	}

	stats := make(map[string]*answerStat)
	var order []string

	for _, player := range results {
		if index < 0 || index >= len(player.Answers) {
			continue
		}
		ans := player.Answers[index]
		if ans == nil {
			continue
		}

		var score float64
		if index < len(player.Scores) {
			score = player.Scores[index]
		}
		if score > 0 {
			return ans.Answer
		}

		key := ans.Answer.Key()
		st, ok := stats[key]
		if !ok {
			st = &answerStat{value: ans.Answer}
			stats[key] = st
			order = append(order, key)
		}
		st.count++
		st.totalScore += score
	}

	if len(order) == 0 {
		return Scalar(UnknownAnswer)
	}

	best := stats[order[0]]
	bestAvg := best.totalScore / float64(best.count)
	for _, key := range order[1:] {
		st := stats[key]
		avg := st.totalScore / float64(st.count)
		if avg > bestAvg {
			best = st
			bestAvg = avg
		}
	}
	return best.value
}
