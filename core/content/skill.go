package content

import "context"

func (s *Store) Skills() []Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Skill{}, s.skills...)
}

func (s *Store) GetSkill(id string) (Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.skillIndex(id); idx >= 0 {
		return s.skills[idx], nil
	}
	return Skill{}, ErrNotFound
}

func (s *Store) AddSkill(ctx context.Context, ns NewSkill) (Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	skill := Skill{
		ID:                s.newID(),
		Title:             ns.Title,
		Description:       ns.Description,
		Difficulty:        ns.Difficulty,
		EstimatedDuration: ns.EstimatedDuration,
		OrderIndex:        ns.OrderIndex,
		Status:            ns.Status,
		UserID:            s.actorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.skills = append(s.skills, skill)
	s.record(EntitySkill, added, skill.ID, skill.Title)

	if err := s.persist(ctx, colSkills, colActivities); err != nil {
		return Skill{}, err
	}
	return skill, nil
}

// UpdateSkill merges us into the skill. An unknown id is a no-op.
func (s *Store) UpdateSkill(ctx context.Context, id string, us UpdateSkill) (Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateSkill(ctx, id, us)
}

func (s *Store) updateSkill(ctx context.Context, id string, us UpdateSkill) (Skill, error) {
	idx := s.skillIndex(id)
	if idx < 0 {
		return Skill{}, nil
	}
	skill := s.skills[idx]
	name := skill.Title // activities name the record as it was before the update
	us.apply(&skill)
	skill.UpdatedAt = s.touch(skill.UpdatedAt)
	s.skills[idx] = skill
	s.record(EntitySkill, updated, id, name)

	if err := s.persist(ctx, colSkills, colActivities); err != nil {
		return Skill{}, err
	}
	return skill, nil
}

// ToggleSkillStatus flips the skill between draft and published through UpdateSkill.
func (s *Store) ToggleSkillStatus(ctx context.Context, id string) (Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.skillIndex(id)
	if idx < 0 {
		return Skill{}, nil
	}
	status := s.skills[idx].Status.Toggled()
	return s.updateSkill(ctx, id, UpdateSkill{Status: &status})
}

// DeleteSkill removes the skill with its modules, their lessons and their quizzes.
// Only the skill deletion is recorded. An unknown id is a no-op.
func (s *Store) DeleteSkill(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.skillIndex(id)
	if idx < 0 {
		return nil
	}
	skill := s.skills[idx]
	s.skills = removeAt(s.skills, idx)

	moduleIDs := s.dropModules(func(m Module) bool { return m.SkillID == id })
	lessonIDs := s.dropLessons(func(l Lesson) bool { return moduleIDs[l.ModuleID] })
	s.dropQuizzes(func(q Quiz) bool { return lessonIDs[q.LessonID] })
	s.record(EntitySkill, deleted, id, skill.Title)

	s.log.Debug("skill deleted", "skill", id, "modules", len(moduleIDs), "lessons", len(lessonIDs))
	return s.persist(ctx, colSkills, colModules, colLessons, colQuizzes, colActivities)
}

func (s *Store) skillIndex(id string) int {
	for i := range s.skills {
		if s.skills[i].ID == id {
			return i
		}
	}
	return -1
}
