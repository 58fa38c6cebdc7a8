package content

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/genmo/core"
)

var (
	// errors
	ErrNotFound = errors.New("content not found")
)

type collection string

const (
	colClients    collection = "clients"
	colSkills     collection = "skills"
	colModules    collection = "modules"
	colLessons    collection = "lessons"
	colQuizzes    collection = "quizzes"
	colActivities collection = "activities"
)

var allCollections = []collection{colClients, colSkills, colModules, colLessons, colQuizzes, colActivities}

const (
	DefaultKeyPrefix = "genmo"
	DefaultActorID   = "admin-1"
)

// Options tunes a Store. Zero values select the defaults.
type Options struct {
	KeyPrefix string           // durable slots are named "<prefix>-<collection>"
	ActorID   string           // user_id recorded on activities
	Now       func() time.Time // clock, mockable
	NewID     func() string    // id generator, mockable
}

// Store is the single authority over the content collections.
// Every mutation is written through to the durable KVStore before returning.
type Store struct {
	mu  sync.RWMutex
	kv  core.KVStore
	log core.Logger

	prefix  string
	actorID string
	clock   func() time.Time
	newID   func() string

	clients    []Client
	skills     []Skill
	modules    []Module
	lessons    []Lesson
	quizzes    []Quiz
	activities []Activity
}

// NewStore loads every collection from kv. Missing or corrupt slots fall back to the default seed.
func NewStore(ctx context.Context, kv core.KVStore, logger core.Logger, opts Options) (*Store, error) {
	s := &Store{
		kv:      kv,
		log:     logger,
		prefix:  opts.KeyPrefix,
		actorID: opts.ActorID,
		clock:   opts.Now,
		newID:   opts.NewID,
	}
	if s.prefix == "" {
		s.prefix = DefaultKeyPrefix
	}
	if s.actorID == "" {
		s.actorID = DefaultActorID
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}

	seed := DefaultSeed()
	loaders := []struct {
		col  collection
		dst  interface{}
		dflt func()
	}{
		{colClients, &s.clients, func() { s.clients = seed.Clients }},
		{colSkills, &s.skills, func() { s.skills = seed.Skills }},
		{colModules, &s.modules, func() { s.modules = seed.Modules }},
		{colLessons, &s.lessons, func() { s.lessons = seed.Lessons }},
		{colQuizzes, &s.quizzes, func() { s.quizzes = seed.Quizzes }},
		{colActivities, &s.activities, func() { s.activities = seed.Activities }},
	}
	for _, l := range loaders {
		if err := s.load(ctx, l.col, l.dst, l.dflt); err != nil {
			return nil, err
		}
	}
	s.normalize()
	return s, nil
}

func (s *Store) key(col collection) string {
	return s.prefix + "-" + string(col)
}

func (s *Store) now() time.Time {
	return s.clock().UTC()
}

// touch returns the new updated_at of a record, always after prev.
func (s *Store) touch(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func (s *Store) load(ctx context.Context, col collection, dst interface{}, dflt func()) error {
	data, err := s.kv.Load(ctx, s.key(col))
	if err != nil {
		if pkgerrors.Cause(err) == core.ErrKeyNotFound {
			dflt()
			return nil
		}
		return pkgerrors.Wrapf(err, "loading %s", col)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn("corrupt collection, falling back to defaults", "collection", string(col), "error", err)
		dflt()
	}
	return nil
}

// Persisted reports whether any collection has been written to the durable store.
// A freshly opened backend holds the default seed in memory only.
func (s *Store) Persisted(ctx context.Context) (bool, error) {
	for _, col := range allCollections {
		_, err := s.kv.Load(ctx, s.key(col))
		if err == nil {
			return true, nil
		}
		if pkgerrors.Cause(err) != core.ErrKeyNotFound {
			return false, pkgerrors.Wrapf(err, "loading %s", col)
		}
	}
	return false, nil
}

// normalize replaces nil collections (e.g. a stored "null") with empty ones.
func (s *Store) normalize() {
	if s.clients == nil {
		s.clients = []Client{}
	}
	if s.skills == nil {
		s.skills = []Skill{}
	}
	if s.modules == nil {
		s.modules = []Module{}
	}
	if s.lessons == nil {
		s.lessons = []Lesson{}
	}
	if s.quizzes == nil {
		s.quizzes = []Quiz{}
	}
	if s.activities == nil {
		s.activities = []Activity{}
	}
}

func (s *Store) value(col collection) interface{} {
	switch col {
	case colClients:
		return s.clients
	case colSkills:
		return s.skills
	case colModules:
		return s.modules
	case colLessons:
		return s.lessons
	case colQuizzes:
		return s.quizzes
	default:
		return s.activities
	}
}

// persist writes the given collections through to the durable store.
// Callers hold the write lock. A failed write leaves the in-memory state as is.
func (s *Store) persist(ctx context.Context, cols ...collection) error {
	for _, col := range cols {
		data, err := json.Marshal(s.value(col))
		if err != nil {
			return pkgerrors.Wrapf(err, "encoding %s", col)
		}
		if err := s.kv.Save(ctx, s.key(col), data); err != nil {
			s.log.Error("failed to persist collection", "collection", string(col), "error", err)
			if pkgerrors.Cause(err) == core.ErrClosed {
				// the backend is gone; nothing else can be saved either
				return core.NewShutdownError("saving " + string(col) + ": " + err.Error())
			}
			return pkgerrors.Wrapf(err, "saving %s", col)
		}
	}
	return nil
}

// Snapshot returns a deep copy of every collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() Snapshot {
	snap := Snapshot{
		Clients:    make([]Client, 0, len(s.clients)),
		Skills:     append([]Skill{}, s.skills...),
		Modules:    make([]Module, 0, len(s.modules)),
		Lessons:    make([]Lesson, 0, len(s.lessons)),
		Quizzes:    make([]Quiz, 0, len(s.quizzes)),
		Activities: append([]Activity{}, s.activities...),
	}
	snap.Clients = append(snap.Clients, s.clients...)
	for _, m := range s.modules {
		snap.Modules = append(snap.Modules, m.clone())
	}
	for _, l := range s.lessons {
		snap.Lessons = append(snap.Lessons, l.clone())
	}
	for _, q := range s.quizzes {
		snap.Quizzes = append(snap.Quizzes, q.clone())
	}
	return snap
}

// Replace swaps every collection for the content of snap and persists them.
// No activity is recorded.
func (s *Store) Replace(ctx context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = snap.Clients
	s.skills = snap.Skills
	s.modules = snap.Modules
	s.lessons = snap.Lessons
	s.quizzes = snap.Quizzes
	s.activities = snap.Activities
	s.normalize()
	s.log.Info("content replaced", "skills", len(s.skills), "modules", len(s.modules), "lessons", len(s.lessons))
	return s.persist(ctx, allCollections...)
}

// Reset restores the default seed and persists it.
func (s *Store) Reset(ctx context.Context) error {
	return s.Replace(ctx, DefaultSeed())
}

// ensureIDs gives every item whose id is empty or already taken a fresh prefixed id.
func ensureIDs[T any](s *Store, items []T, prefix string, id func(*T) *string) {
	seen := make(map[string]bool, len(items))
	for i := range items {
		p := id(&items[i])
		if *p == "" || seen[*p] {
			*p = prefix + s.newID()
		}
		seen[*p] = true
	}
}

func cardID(c *LessonCard) *string       { return &c.ID }
func questionID(q *QuizQuestion) *string { return &q.ID }

func (m Module) clone() Module {
	if m.LearningObjectives != nil {
		m.LearningObjectives = append([]string{}, m.LearningObjectives...)
	}
	return m
}

func (l Lesson) clone() Lesson {
	if l.Cards != nil {
		l.Cards = append([]LessonCard{}, l.Cards...)
	}
	return l
}

func (q Quiz) clone() Quiz {
	if q.Questions != nil {
		qs := make([]QuizQuestion, 0, len(q.Questions))
		for _, qq := range q.Questions {
			if qq.Options != nil {
				qq.Options = append([]QuizOption{}, qq.Options...)
			}
			if qq.CorrectAnswer != nil {
				qq.CorrectAnswer = append(Answer{}, qq.CorrectAnswer...)
			}
			qs = append(qs, qq)
		}
		q.Questions = qs
	}
	return q
}
