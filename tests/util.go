package testutil

import (
	"context"
	"testing"

	"github.com/trezcool/genmo/core/content"
	logsvc "github.com/trezcool/genmo/services/logger"
	"github.com/trezcool/genmo/storage/kvstore/inmem"
)

// NewStore returns a seeded content store over a fresh in-memory KV store.
func NewStore(t *testing.T, opts ...content.Options) *content.Store {
	t.Helper()
	var o content.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	store, err := content.NewStore(context.Background(), inmem.New(), logsvc.NewNopLogger(), o)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	return store
}

func CreateSkill(t *testing.T, store *content.Store, title string, status content.Status) content.Skill {
	t.Helper()
	skill, err := store.AddSkill(context.Background(), content.NewSkill{
		Title:      title,
		Difficulty: content.DifficultyBeginner,
		Status:     status,
	})
	if err != nil {
		t.Fatalf("CreateSkill() failed: %v", err)
	}
	return skill
}

func CreateModule(t *testing.T, store *content.Store, skillID, title string, status content.Status) content.Module {
	t.Helper()
	module, err := store.AddModule(context.Background(), content.NewModule{
		SkillID:    skillID,
		Title:      title,
		Difficulty: content.DifficultyBeginner,
		Status:     status,
	})
	if err != nil {
		t.Fatalf("CreateModule() failed: %v", err)
	}
	return module
}

func CreateLesson(t *testing.T, store *content.Store, moduleID, title string) content.Lesson {
	t.Helper()
	lesson, err := store.AddLesson(context.Background(), content.NewLesson{ModuleID: moduleID, Title: title})
	if err != nil {
		t.Fatalf("CreateLesson() failed: %v", err)
	}
	return lesson
}

func CreateQuiz(t *testing.T, store *content.Store, lessonID, title string, questions ...content.QuizQuestion) content.Quiz {
	t.Helper()
	quiz, err := store.AddQuiz(context.Background(), content.NewQuiz{
		LessonID:     lessonID,
		Title:        title,
		PassingScore: 70,
		Questions:    questions,
	})
	if err != nil {
		t.Fatalf("CreateQuiz() failed: %v", err)
	}
	return quiz
}
