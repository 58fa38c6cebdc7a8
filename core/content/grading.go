package content

import "math"

// Result is the outcome of a graded attempt.
type Result struct {
	Correct int  `json:"correct"`
	Total   int  `json:"total"`
	Score   int  `json:"score"` // percentage, rounded
	Passed  bool `json:"passed"`
}

// Grade scores answers, keyed by question id, against the quiz.
// A quiz without questions scores 0 and is never passed.
func (q Quiz) Grade(answers map[string]Answer) Result {
	res := Result{Total: len(q.Questions)}
	if res.Total == 0 {
		return res
	}
	for _, qq := range q.Questions {
		if qq.IsCorrect(answers[qq.ID]) {
			res.Correct++
		}
	}
	res.Score = int(math.Round(float64(res.Correct) / float64(res.Total) * 100))
	res.Passed = res.Score >= q.PassingScore
	return res
}

// IsCorrect reports whether given matches the expected answer.
// Multiple choice compares option sets, other questions a single option.
// A question without any correct option is never answered correctly.
func (qq QuizQuestion) IsCorrect(given Answer) bool {
	expected := qq.CorrectAnswer
	if len(expected) == 0 {
		expected = qq.correctOptions()
	}
	if len(expected) == 0 {
		return false
	}
	if qq.Type != QuestionMultipleChoice {
		return len(given) == 1 && given[0] == expected[0]
	}

	want := make(map[string]bool, len(expected))
	for _, id := range expected {
		want[id] = true
	}
	got := make(map[string]bool, len(given))
	for _, id := range given {
		if !want[id] {
			return false
		}
		got[id] = true
	}
	return len(got) == len(want)
}

func (qq QuizQuestion) correctOptions() Answer {
	var ids Answer
	for _, o := range qq.Options {
		if o.IsCorrect {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// AttemptsLeft returns the remaining attempts, or -1 when attempts are unlimited.
func (q Quiz) AttemptsLeft(used int) int {
	if q.MaxAttempts <= 0 {
		return -1
	}
	if left := q.MaxAttempts - used; left > 0 {
		return left
	}
	return 0
}
