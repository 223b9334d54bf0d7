package analytics

import "testing"

// flaggedAnalysis runs the default rules against a synthetic analysis.
func flaggedAnalysis(t *testing.T, successRate, avgTime float64, wrong []WrongAnswerCount, total int) QuestionAnalysis {
	t.Helper()
	a := QuestionAnalysis{
		SuccessRate:        successRate,
		AverageTime:        avgTime,
		TotalResponses:     total,
		CommonWrongAnswers: wrong,
		ProblemFlags:       []Flag{},
	}
	applyFlags(&a, defaultFlagRules())
	return a
}

func flagTypes(a QuestionAnalysis) []string {
	types := make([]string, len(a.ProblemFlags))
	for i, f := range a.ProblemFlags {
		types[i] = f.Type
	}
	return types
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSuccessRateBands(t *testing.T) {
	tests := []struct {
		name        string
		rate        float64
		wantLow     bool
		wantMod     bool
		problematic bool
	}{
		{"far below", 10, true, false, true},
		{"just below boundary", 39.9, true, false, true},
		{"boundary is moderate", 40, false, true, false},
		{"mid band", 55, false, true, false},
		{"upper boundary excluded", 60, false, false, false},
		{"high", 90, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := flaggedAnalysis(t, tt.rate, 10, nil, 4)
			if got := hasFlag(a, FlagLowSuccess); got != tt.wantLow {
				t.Errorf("low_success = %v, want %v", got, tt.wantLow)
			}
			if got := hasFlag(a, FlagModerateSuccess); got != tt.wantMod {
				t.Errorf("moderate_success = %v, want %v", got, tt.wantMod)
			}
			if hasFlag(a, FlagLowSuccess) && hasFlag(a, FlagModerateSuccess) {
				t.Error("low_success and moderate_success are mutually exclusive")
			}
			if a.IsPotentiallyProblematic != tt.problematic {
				t.Errorf("problematic = %v, want %v", a.IsPotentiallyProblematic, tt.problematic)
			}
		})
	}
}

func TestTimeVsSuccessRule(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		time float64
		want bool
	}{
		{"slow and failing", 30, 20, true},
		{"slow but passing", 80, 20, false},
		{"fast and failing", 30, 5, false},
		{"boundary time excluded", 30, 15, false},
		{"boundary rate excluded", 50, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := flaggedAnalysis(t, tt.rate, tt.time, nil, 4)
			if got := hasFlag(a, FlagTimeVsSuccess); got != tt.want {
				t.Errorf("time_vs_success = %v, want %v", got, tt.want)
			}
			if tt.want && !a.IsPotentiallyProblematic {
				t.Error("time_vs_success is high severity and must mark problematic")
			}
		})
	}
}

func TestQuickWrongRule(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		time float64
		want bool
	}{
		{"fast guessing", 50, 4, true},
		{"fast but succeeding", 85, 4, false},
		{"boundary time excluded", 50, 8, false},
		{"boundary rate excluded", 70, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := flaggedAnalysis(t, tt.rate, tt.time, nil, 4)
			if got := hasFlag(a, FlagQuickWrong); got != tt.want {
				t.Errorf("quick_wrong = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommonWrongAnswerRule(t *testing.T) {
	tests := []struct {
		name  string
		wrong []WrongAnswerCount
		total int
		want  bool
	}{
		{"exactly 40 percent fires", []WrongAnswerCount{{Answer: "42", Count: 4}}, 10, true},
		{"below 40 percent", []WrongAnswerCount{{Answer: "42", Count: 3}}, 10, false},
		{"no wrong answers", nil, 10, false},
		{"zero responses never fire", nil, 0, false},
		{"zero-count bucket never fires", []WrongAnswerCount{{Answer: "42", Count: 0}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := flaggedAnalysis(t, 90, 10, tt.wrong, tt.total)
			if got := hasFlag(a, FlagCommonWrongAnswer); got != tt.want {
				t.Errorf("common_wrong_answer = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommonWrongAnswerModalTieKeepsFirst(t *testing.T) {
	a := flaggedAnalysis(t, 90, 10, []WrongAnswerCount{
		{Answer: "first", Count: 4},
		{Answer: "second", Count: 4},
	}, 10)
	f := findFlag(a, FlagCommonWrongAnswer)
	if f == nil {
		t.Fatal("expected common_wrong_answer flag")
	}
	if got := modalWrongAnswer(a.CommonWrongAnswers); got.Answer != "first" {
		t.Errorf("modal answer = %q, want first", got.Answer)
	}
}

func TestFlagOrderIsStable(t *testing.T) {
	// Low success, slow, with a dominant wrong answer: three flags in
	// rule order.
	a := flaggedAnalysis(t, 20, 20, []WrongAnswerCount{{Answer: "42", Count: 5}}, 10)
	want := []string{FlagLowSuccess, FlagTimeVsSuccess, FlagCommonWrongAnswer}
	if got := flagTypes(a); !equalStrings(got, want) {
		t.Errorf("flag order = %v, want %v", got, want)
	}
}
