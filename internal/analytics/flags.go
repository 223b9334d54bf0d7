package analytics

import "fmt"

// Severity levels attached to problem flags.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// Flag types, in the order the rules run.
const (
	FlagLowSuccess        = "low_success"
	FlagModerateSuccess   = "moderate_success"
	FlagTimeVsSuccess     = "time_vs_success"
	FlagQuickWrong        = "quick_wrong"
	FlagCommonWrongAnswer = "common_wrong_answer"
)

// Thresholds for the flag rules. Percentages are on the 0-100 scale,
// times in seconds.
const (
	lowSuccessThreshold      = 40.0
	moderateSuccessThreshold = 60.0
	slowQuestionSecs         = 15.0
	slowSuccessThreshold     = 50.0
	quickAnswerSecs          = 8.0
	quickSuccessThreshold    = 70.0
	commonWrongShare         = 0.4
)

// Flag marks a question-level problem signal.
type Flag struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// flagRule inspects an analysis and returns a flag, or nil when the rule
// does not apply.
type flagRule interface {
	Check(a *QuestionAnalysis) *Flag
}

// defaultFlagRules returns the rules in evaluation order. Order matters:
// flags land on the analysis in this sequence.
func defaultFlagRules() []flagRule {
	return []flagRule{
		lowSuccessRule{},
		moderateSuccessRule{},
		timeVsSuccessRule{},
		quickWrongRule{},
		commonWrongAnswerRule{},
	}
}

// applyFlags runs every rule and records the results on the analysis.
// A question is potentially problematic iff some flag is high severity.
func applyFlags(a *QuestionAnalysis, rules []flagRule) {
	for _, rule := range rules {
		if f := rule.Check(a); f != nil {
			a.ProblemFlags = append(a.ProblemFlags, *f)
			if f.Severity == SeverityHigh {
				a.IsPotentiallyProblematic = true
			}
		}
	}
}

type lowSuccessRule struct{}

func (lowSuccessRule) Check(a *QuestionAnalysis) *Flag {
	if a.SuccessRate >= lowSuccessThreshold {
		return nil
	}
	return &Flag{
		Type:     FlagLowSuccess,
		Severity: SeverityHigh,
		Message:  fmt.Sprintf("Only %.0f%% of players answered correctly", a.SuccessRate),
	}
}

type moderateSuccessRule struct{}

func (moderateSuccessRule) Check(a *QuestionAnalysis) *Flag {
	if a.SuccessRate < lowSuccessThreshold || a.SuccessRate >= moderateSuccessThreshold {
		return nil
	}
	return &Flag{
		Type:     FlagModerateSuccess,
		Severity: SeverityMedium,
		Message:  fmt.Sprintf("%.0f%% success rate suggests room for improvement", a.SuccessRate),
	}
}

type timeVsSuccessRule struct{}

func (timeVsSuccessRule) Check(a *QuestionAnalysis) *Flag {
	if a.AverageTime <= slowQuestionSecs || a.SuccessRate >= slowSuccessThreshold {
		return nil
	}
	return &Flag{
		Type:     FlagTimeVsSuccess,
		Severity: SeverityHigh,
		Message:  fmt.Sprintf("Players spent %.1fs on average yet only %.0f%% got it right", a.AverageTime, a.SuccessRate),
	}
}

type quickWrongRule struct{}

func (quickWrongRule) Check(a *QuestionAnalysis) *Flag {
	if a.AverageTime >= quickAnswerSecs || a.SuccessRate >= quickSuccessThreshold {
		return nil
	}
	return &Flag{
		Type:     FlagQuickWrong,
		Severity: SeverityMedium,
		Message:  fmt.Sprintf("Fast answers (%.1fs avg) with %.0f%% success suggest guessing", a.AverageTime, a.SuccessRate),
	}
}

type commonWrongAnswerRule struct{}

func (commonWrongAnswerRule) Check(a *QuestionAnalysis) *Flag {
	if a.TotalResponses == 0 {
		return nil
	}
	modal := modalWrongAnswer(a.CommonWrongAnswers)
	if modal == nil || modal.Count == 0 {
		return nil
	}
	if float64(modal.Count) < float64(a.TotalResponses)*commonWrongShare {
		return nil
	}
	return &Flag{
		Type:     FlagCommonWrongAnswer,
		Severity: SeverityMedium,
		Message:  fmt.Sprintf("%d players chose %q, a possible misconception", modal.Count, modal.Answer),
	}
}

// modalWrongAnswer picks the most common wrong answer; ties keep the
// first-seen entry.
func modalWrongAnswer(counts []WrongAnswerCount) *WrongAnswerCount {
	var best *WrongAnswerCount
	for i := range counts {
		if best == nil || counts[i].Count > best.Count {
			best = &counts[i]
		}
	}
	return best
}
