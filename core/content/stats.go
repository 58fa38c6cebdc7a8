package content

// Stats summarizes the platform for the admin dashboard.
type Stats struct {
	Clients           int `json:"clients" yaml:"clients"`
	ActiveClients     int `json:"active_clients" yaml:"active_clients"`
	Skills            int `json:"skills" yaml:"skills"`
	Modules           int `json:"modules" yaml:"modules"`
	Lessons           int `json:"lessons" yaml:"lessons"`
	Quizzes           int `json:"quizzes" yaml:"quizzes"`
	PublishedSkills   int `json:"published_skills" yaml:"published_skills"`
	PublishedModules  int `json:"published_modules" yaml:"published_modules"`
	PublishedLessons  int `json:"published_lessons" yaml:"published_lessons"`
	PublishedQuizzes  int `json:"published_quizzes" yaml:"published_quizzes"`
	TotalContentItems int `json:"total_content_items" yaml:"total_content_items"`
	Activities        int `json:"activities" yaml:"activities"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Clients:    len(s.clients),
		Skills:     len(s.skills),
		Modules:    len(s.modules),
		Lessons:    len(s.lessons),
		Quizzes:    len(s.quizzes),
		Activities: len(s.activities),
	}
	st.TotalContentItems = st.Skills + st.Modules + st.Lessons + st.Quizzes

	for _, c := range s.clients {
		if c.Status == ClientActive {
			st.ActiveClients++
		}
	}
	for _, sk := range s.skills {
		if sk.Status == StatusPublished {
			st.PublishedSkills++
		}
	}
	for _, m := range s.modules {
		if m.Status == StatusPublished {
			st.PublishedModules++
		}
	}
	for _, l := range s.lessons {
		if l.Status == StatusPublished {
			st.PublishedLessons++
		}
	}
	for _, q := range s.quizzes {
		if q.Status == StatusPublished {
			st.PublishedQuizzes++
		}
	}
	return st
}
