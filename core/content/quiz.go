package content

import "context"

func (s *Store) Quizzes() []Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterQuizzes(func(Quiz) bool { return true })
}

func (s *Store) QuizzesByLesson(lessonID string) []Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterQuizzes(func(q Quiz) bool { return q.LessonID == lessonID })
}

func (s *Store) GetQuiz(id string) (Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.quizIndex(id); idx >= 0 {
		return s.quizzes[idx].clone(), nil
	}
	return Quiz{}, ErrNotFound
}

func (s *Store) AddQuiz(ctx context.Context, nq NewQuiz) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	quiz := Quiz{
		ID:           s.newID(),
		LessonID:     nq.LessonID,
		Title:        nq.Title,
		Description:  nq.Description,
		Questions:    []QuizQuestion{},
		PassingScore: nq.PassingScore,
		MaxAttempts:  nq.MaxAttempts,
		Status:       nq.Status,
		UserID:       s.actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if nq.Questions != nil {
		quiz.Questions = Quiz{Questions: nq.Questions}.clone().Questions
	}
	ensureIDs(s, quiz.Questions, QuestionIDPrefix, questionID)
	s.quizzes = append(s.quizzes, quiz)
	s.record(EntityQuiz, added, quiz.ID, quiz.Title)

	if err := s.persist(ctx, colQuizzes, colActivities); err != nil {
		return Quiz{}, err
	}
	return quiz.clone(), nil
}

func (s *Store) UpdateQuiz(ctx context.Context, id string, uq UpdateQuiz) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateQuiz(ctx, id, uq)
}

func (s *Store) updateQuiz(ctx context.Context, id string, uq UpdateQuiz) (Quiz, error) {
	idx := s.quizIndex(id)
	if idx < 0 {
		return Quiz{}, nil
	}
	quiz := s.quizzes[idx].clone()
	name := quiz.Title // activities name the record as it was before the update
	uq.apply(&quiz)
	ensureIDs(s, quiz.Questions, QuestionIDPrefix, questionID)
	quiz.UpdatedAt = s.touch(quiz.UpdatedAt)
	s.quizzes[idx] = quiz
	s.record(EntityQuiz, updated, id, name)

	if err := s.persist(ctx, colQuizzes, colActivities); err != nil {
		return Quiz{}, err
	}
	return quiz.clone(), nil
}

func (s *Store) ToggleQuizStatus(ctx context.Context, id string) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.quizIndex(id)
	if idx < 0 {
		return Quiz{}, nil
	}
	status := s.quizzes[idx].Status.Toggled()
	return s.updateQuiz(ctx, id, UpdateQuiz{Status: &status})
}

func (s *Store) DeleteQuiz(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.quizIndex(id)
	if idx < 0 {
		return nil
	}
	quiz := s.quizzes[idx]
	s.quizzes = removeAt(s.quizzes, idx)
	s.record(EntityQuiz, deleted, id, quiz.Title)
	return s.persist(ctx, colQuizzes, colActivities)
}

func (s *Store) quizIndex(id string) int {
	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) filterQuizzes(keep func(Quiz) bool) []Quiz {
	out := []Quiz{}
	for _, q := range s.quizzes {
		if keep(q) {
			out = append(out, q.clone())
		}
	}
	return out
}

func (s *Store) dropQuizzes(fn func(Quiz) bool) {
	kept := make([]Quiz, 0, len(s.quizzes))
	for _, q := range s.quizzes {
		if !fn(q) {
			kept = append(kept, q)
		}
	}
	s.quizzes = kept
}
