package content

import "context"

// DefaultAppearance is applied to lessons created without one.
func DefaultAppearance() LessonAppearance {
	return LessonAppearance{
		CircleColor:     "#10B981",
		CircleIcon:      "📚",
		TextFont:        "Inter",
		TextColor:       "#1F2937",
		ProgressColor:   "#F59E0B",
		BackgroundColor: "#F9FAFB",
	}
}

func (s *Store) Lessons() []Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLessons(func(Lesson) bool { return true })
}

func (s *Store) LessonsByModule(moduleID string) []Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLessons(func(l Lesson) bool { return l.ModuleID == moduleID })
}

func (s *Store) GetLesson(id string) (Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.lessonIndex(id); idx >= 0 {
		return s.lessons[idx].clone(), nil
	}
	return Lesson{}, ErrNotFound
}

// AddLesson creates a lesson. Missing cards become an empty deck and a missing
// appearance the default one.
func (s *Store) AddLesson(ctx context.Context, nl NewLesson) (Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appearance := DefaultAppearance()
	if nl.Appearance != nil {
		appearance = *nl.Appearance
	}
	now := s.now()
	lesson := Lesson{
		ID:                s.newID(),
		ModuleID:          nl.ModuleID,
		Title:             nl.Title,
		Content:           nl.Content,
		ContentType:       nl.ContentType,
		EstimatedDuration: nl.EstimatedDuration,
		OrderIndex:        nl.OrderIndex,
		Status:            nl.Status,
		Cards:             append([]LessonCard{}, nl.Cards...),
		Appearance:        appearance,
		UserID:            s.actorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	ensureIDs(s, lesson.Cards, CardIDPrefix, cardID)
	s.lessons = append(s.lessons, lesson)
	s.record(EntityLesson, added, lesson.ID, lesson.Title)

	if err := s.persist(ctx, colLessons, colActivities); err != nil {
		return Lesson{}, err
	}
	return lesson.clone(), nil
}

func (s *Store) UpdateLesson(ctx context.Context, id string, ul UpdateLesson) (Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLesson(ctx, id, ul)
}

func (s *Store) updateLesson(ctx context.Context, id string, ul UpdateLesson) (Lesson, error) {
	idx := s.lessonIndex(id)
	if idx < 0 {
		return Lesson{}, nil
	}
	lesson := s.lessons[idx].clone()
	name := lesson.Title // activities name the record as it was before the update
	ul.apply(&lesson)
	ensureIDs(s, lesson.Cards, CardIDPrefix, cardID)
	lesson.UpdatedAt = s.touch(lesson.UpdatedAt)
	s.lessons[idx] = lesson
	s.record(EntityLesson, updated, id, name)

	if err := s.persist(ctx, colLessons, colActivities); err != nil {
		return Lesson{}, err
	}
	return lesson.clone(), nil
}

func (s *Store) ToggleLessonStatus(ctx context.Context, id string) (Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.lessonIndex(id)
	if idx < 0 {
		return Lesson{}, nil
	}
	status := s.lessons[idx].Status.Toggled()
	return s.updateLesson(ctx, id, UpdateLesson{Status: &status})
}

// DeleteLesson removes the lesson and its quizzes.
func (s *Store) DeleteLesson(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.lessonIndex(id)
	if idx < 0 {
		return nil
	}
	lesson := s.lessons[idx]
	s.lessons = removeAt(s.lessons, idx)
	s.dropQuizzes(func(q Quiz) bool { return q.LessonID == id })
	s.record(EntityLesson, deleted, id, lesson.Title)

	return s.persist(ctx, colLessons, colQuizzes, colActivities)
}

func (s *Store) lessonIndex(id string) int {
	for i := range s.lessons {
		if s.lessons[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) filterLessons(keep func(Lesson) bool) []Lesson {
	out := []Lesson{}
	for _, l := range s.lessons {
		if keep(l) {
			out = append(out, l.clone())
		}
	}
	return out
}

func (s *Store) dropLessons(fn func(Lesson) bool) map[string]bool {
	ids := make(map[string]bool)
	kept := make([]Lesson, 0, len(s.lessons))
	for _, l := range s.lessons {
		if fn(l) {
			ids[l.ID] = true
			continue
		}
		kept = append(kept, l)
	}
	s.lessons = kept
	return ids
}
