package content

import "context"

func (s *Store) Modules() []Module {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterModules(func(Module) bool { return true })
}

// ModulesBySkill returns the modules of a skill in insertion order.
func (s *Store) ModulesBySkill(skillID string) []Module {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterModules(func(m Module) bool { return m.SkillID == skillID })
}

func (s *Store) GetModule(id string) (Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.moduleIndex(id); idx >= 0 {
		return s.modules[idx].clone(), nil
	}
	return Module{}, ErrNotFound
}

func (s *Store) AddModule(ctx context.Context, nm NewModule) (Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	objectives := nm.LearningObjectives
	if objectives == nil {
		objectives = []string{}
	}
	now := s.now()
	module := Module{
		ID:                 s.newID(),
		SkillID:            nm.SkillID,
		Title:              nm.Title,
		Description:        nm.Description,
		LearningObjectives: append([]string{}, objectives...),
		Difficulty:         nm.Difficulty,
		EstimatedDuration:  nm.EstimatedDuration,
		OrderIndex:         nm.OrderIndex,
		Status:             nm.Status,
		UserID:             s.actorID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.modules = append(s.modules, module)
	s.record(EntityModule, added, module.ID, module.Title)

	if err := s.persist(ctx, colModules, colActivities); err != nil {
		return Module{}, err
	}
	return module.clone(), nil
}

// UpdateModule merges um into the module. An unknown id is a no-op.
func (s *Store) UpdateModule(ctx context.Context, id string, um UpdateModule) (Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateModule(ctx, id, um)
}

func (s *Store) updateModule(ctx context.Context, id string, um UpdateModule) (Module, error) {
	idx := s.moduleIndex(id)
	if idx < 0 {
		return Module{}, nil
	}
	module := s.modules[idx].clone()
	name := module.Title // activities name the record as it was before the update
	um.apply(&module)
	module.UpdatedAt = s.touch(module.UpdatedAt)
	s.modules[idx] = module
	s.record(EntityModule, updated, id, name)

	if err := s.persist(ctx, colModules, colActivities); err != nil {
		return Module{}, err
	}
	return module.clone(), nil
}

func (s *Store) ToggleModuleStatus(ctx context.Context, id string) (Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.moduleIndex(id)
	if idx < 0 {
		return Module{}, nil
	}
	status := s.modules[idx].Status.Toggled()
	return s.updateModule(ctx, id, UpdateModule{Status: &status})
}

// DeleteModule removes the module with its lessons and their quizzes.
func (s *Store) DeleteModule(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.moduleIndex(id)
	if idx < 0 {
		return nil
	}
	module := s.modules[idx]
	s.modules = removeAt(s.modules, idx)

	lessonIDs := s.dropLessons(func(l Lesson) bool { return l.ModuleID == id })
	s.dropQuizzes(func(q Quiz) bool { return lessonIDs[q.LessonID] })
	s.record(EntityModule, deleted, id, module.Title)

	return s.persist(ctx, colModules, colLessons, colQuizzes, colActivities)
}

func (s *Store) moduleIndex(id string) int {
	for i := range s.modules {
		if s.modules[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) filterModules(keep func(Module) bool) []Module {
	out := []Module{}
	for _, m := range s.modules {
		if keep(m) {
			out = append(out, m.clone())
		}
	}
	return out
}

// dropModules removes every module matching fn and returns the removed ids.
func (s *Store) dropModules(fn func(Module) bool) map[string]bool {
	ids := make(map[string]bool)
	kept := make([]Module, 0, len(s.modules))
	for _, m := range s.modules {
		if fn(m) {
			ids[m.ID] = true
			continue
		}
		kept = append(kept, m)
	}
	s.modules = kept
	return ids
}
