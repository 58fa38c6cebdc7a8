package content

import (
	"sort"
	"strings"
)

// LibraryModule is a module as shown in the learner-facing library.
type LibraryModule struct {
	Module
	Points  int      `json:"points"`
	Lessons []Lesson `json:"lessons"`
}

func visible(s Status) bool {
	return s == StatusPublished || s == StatusDraft
}

// Library lists the non-archived modules whose title contains search
// (case-insensitive), ordered by order_index, each with its non-archived lessons.
func (s *Store) Library(search string) []LibraryModule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	lib := []LibraryModule{}
	for _, m := range s.modules {
		if !visible(m.Status) || !strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		lessons := s.filterLessons(func(l Lesson) bool { return l.ModuleID == m.ID && visible(l.Status) })
		sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].OrderIndex < lessons[j].OrderIndex })
		lib = append(lib, LibraryModule{
			Module:  m.clone(),
			Points:  m.EstimatedDuration / 5,
			Lessons: lessons,
		})
	}
	sort.SliceStable(lib, func(i, j int) bool { return lib[i].OrderIndex < lib[j].OrderIndex })
	return lib
}
