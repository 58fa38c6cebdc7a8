package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuiz() Quiz {
	return Quiz{
		PassingScore: 70,
		MaxAttempts:  3,
		Questions: []QuizQuestion{
			{
				ID: "q1", Type: QuestionSingleChoice, CorrectAnswer: Answer{"b"},
				Options: []QuizOption{{ID: "a"}, {ID: "b", IsCorrect: true}},
			},
			{
				ID: "q2", Type: QuestionMultipleChoice, CorrectAnswer: Answer{"a", "c"},
				Options: []QuizOption{{ID: "a", IsCorrect: true}, {ID: "b"}, {ID: "c", IsCorrect: true}},
			},
			{
				ID: "q3", Type: QuestionTrueFalse,
				Options: []QuizOption{{ID: "true", IsCorrect: true}, {ID: "false"}},
			},
		},
	}
}

func TestQuiz_Grade(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]Answer
		want    Result
	}{
		{
			name:    "all correct",
			answers: map[string]Answer{"q1": {"b"}, "q2": {"c", "a"}, "q3": {"true"}},
			want:    Result{Correct: 3, Total: 3, Score: 100, Passed: true},
		},
		{
			name:    "partial multiple choice is wrong",
			answers: map[string]Answer{"q1": {"b"}, "q2": {"a"}, "q3": {"true"}},
			want:    Result{Correct: 2, Total: 3, Score: 67, Passed: false},
		},
		{
			name:    "extra option is wrong",
			answers: map[string]Answer{"q2": {"a", "b", "c"}},
			want:    Result{Correct: 0, Total: 3, Score: 0, Passed: false},
		},
		{
			name:    "nothing answered",
			answers: nil,
			want:    Result{Total: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testQuiz().Grade(tt.answers); got != tt.want {
				t.Errorf("Grade() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuiz_Grade_noQuestions(t *testing.T) {
	got := Quiz{PassingScore: 0}.Grade(map[string]Answer{"q1": {"a"}})
	assert.Equal(t, Result{}, got)
}

func TestQuizQuestion_IsCorrect(t *testing.T) {
	noKey := []QuizOption{{ID: "a", Text: "Rent"}, {ID: "b", Text: "Food"}}
	tests := []struct {
		name  string
		qq    QuizQuestion
		given Answer
		want  bool
	}{
		{"options fallback", QuizQuestion{Type: QuestionSingleChoice, Options: []QuizOption{{ID: "a"}, {ID: "b", IsCorrect: true}}}, Answer{"b"}, true},
		{"multiple choice without correct options, empty answer", QuizQuestion{Type: QuestionMultipleChoice, Options: noKey}, Answer{}, false},
		{"multiple choice without correct options, nil answer", QuizQuestion{Type: QuestionMultipleChoice, Options: noKey}, nil, false},
		{"single choice without correct options", QuizQuestion{Type: QuestionSingleChoice, Options: noKey}, Answer{"a"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.qq.IsCorrect(tt.given); got != tt.want {
				t.Errorf("IsCorrect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuiz_AttemptsLeft(t *testing.T) {
	q := testQuiz()
	assert.Equal(t, 3, q.AttemptsLeft(0))
	assert.Equal(t, 1, q.AttemptsLeft(2))
	assert.Equal(t, 0, q.AttemptsLeft(5))

	q.MaxAttempts = 0
	assert.Equal(t, -1, q.AttemptsLeft(100))
}

func TestAnswer_JSON(t *testing.T) {
	var qq QuizQuestion
	require.NoError(t, json.Unmarshal([]byte(`{"id":"q1","correct_answer":"b"}`), &qq))
	assert.Equal(t, Answer{"b"}, qq.CorrectAnswer)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"q2","correct_answer":["a","c"]}`), &qq))
	assert.Equal(t, Answer{"a", "c"}, qq.CorrectAnswer)

	out, err := json.Marshal(Answer{"b"})
	require.NoError(t, err)
	assert.Equal(t, `"b"`, string(out))

	out, err = json.Marshal(Answer{"a", "c"})
	require.NoError(t, err)
	assert.Equal(t, `["a","c"]`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"correct_answer":3}`), &qq))
}
