package content

import (
	"fmt"
	"sort"
	"time"
)

type EntityType string

const (
	EntityClient EntityType = "client"
	EntitySkill  EntityType = "skill"
	EntityModule EntityType = "module"
	EntityLesson EntityType = "lesson"
	EntityQuiz   EntityType = "quiz"
)

type ActivityType string

const (
	ActivityClientAdded   ActivityType = "client_added"
	ActivityClientUpdated ActivityType = "client_updated"
	ActivityClientDeleted ActivityType = "client_deleted"
	ActivitySkillAdded    ActivityType = "skill_added"
	ActivitySkillUpdated  ActivityType = "skill_updated"
	ActivitySkillDeleted  ActivityType = "skill_deleted"
	ActivityModuleAdded   ActivityType = "module_added"
	ActivityModuleUpdated ActivityType = "module_updated"
	ActivityModuleDeleted ActivityType = "module_deleted"
	ActivityLessonAdded   ActivityType = "lesson_added"
	ActivityLessonUpdated ActivityType = "lesson_updated"
	ActivityLessonDeleted ActivityType = "lesson_deleted"
	ActivityQuizAdded     ActivityType = "quiz_added"
	ActivityQuizUpdated   ActivityType = "quiz_updated"
	ActivityQuizDeleted   ActivityType = "quiz_deleted"
)

const defaultActivityLimit = 10

// Activity is one entry of the audit trail. Entries are never modified.
type Activity struct {
	ID          string       `json:"id" yaml:"id"`
	Type        ActivityType `json:"type" yaml:"type"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	EntityID    string       `json:"entity_id" yaml:"entity_id"`
	EntityType  EntityType   `json:"entity_type" yaml:"entity_type"`
	EntityName  string       `json:"entity_name" yaml:"entity_name"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
	UserID      string       `json:"user_id" yaml:"user_id"`
}

type mutation int

const (
	added mutation = iota
	updated
	deleted
)

var activityTypes = map[EntityType][3]ActivityType{
	EntityClient: {ActivityClientAdded, ActivityClientUpdated, ActivityClientDeleted},
	EntitySkill:  {ActivitySkillAdded, ActivitySkillUpdated, ActivitySkillDeleted},
	EntityModule: {ActivityModuleAdded, ActivityModuleUpdated, ActivityModuleDeleted},
	EntityLesson: {ActivityLessonAdded, ActivityLessonUpdated, ActivityLessonDeleted},
	EntityQuiz:   {ActivityQuizAdded, ActivityQuizUpdated, ActivityQuizDeleted},
}

// describe returns the human readable title and description of a mutation.
func describe(kind EntityType, m mutation, name string) (string, string) {
	if kind == EntityClient {
		switch m {
		case added:
			return "New client onboarded", fmt.Sprintf("%s has been added to the platform", name)
		case updated:
			return "Client updated", fmt.Sprintf("%s settings have been modified", name)
		default:
			return "Client removed", fmt.Sprintf("%s has been removed from the platform", name)
		}
	}

	label := string(kind)
	upper := map[EntityType]string{
		EntitySkill:  "Skill",
		EntityModule: "Module",
		EntityLesson: "Lesson",
		EntityQuiz:   "Quiz",
	}[kind]

	switch m {
	case added:
		desc := fmt.Sprintf("\"%s\" %s has been added", name, label)
		if kind == EntitySkill {
			desc += " to the content library"
		}
		return "New " + label + " created", desc
	case updated:
		return upper + " updated", fmt.Sprintf("\"%s\" %s has been modified", name, label)
	default:
		var desc string
		switch kind {
		case EntitySkill, EntityModule:
			desc = fmt.Sprintf("\"%s\" %s and all related content have been removed", name, label)
		case EntityLesson:
			desc = fmt.Sprintf("\"%s\" lesson and related quizzes have been removed", name)
		default:
			desc = fmt.Sprintf("\"%s\" %s has been removed", name, label)
		}
		return upper + " removed", desc
	}
}

// record appends one activity for the mutated entity. Callers hold the write lock.
func (s *Store) record(kind EntityType, m mutation, id, name string) Activity {
	title, desc := describe(kind, m, name)
	act := Activity{
		ID:          s.newID(),
		Type:        activityTypes[kind][m],
		Title:       title,
		Description: desc,
		EntityID:    id,
		EntityType:  kind,
		EntityName:  name,
		CreatedAt:   s.now(),
		UserID:      s.actorID,
	}
	s.activities = append(s.activities, act)
	return act
}

// Activities returns the whole audit trail in insertion order.
func (s *Store) Activities() []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Activity{}, s.activities...)
}

// RecentActivities returns the newest activities first. A non-positive limit means 10.
func (s *Store) RecentActivities(limit int) []Activity {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	acts := s.Activities()
	for i, j := 0, len(acts)-1; i < j; i, j = i+1, j-1 {
		acts[i], acts[j] = acts[j], acts[i]
	}
	sort.SliceStable(acts, func(i, j int) bool { return acts[i].CreatedAt.After(acts[j].CreatedAt) })
	if len(acts) > limit {
		acts = acts[:limit]
	}
	return acts
}
