package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-list/internal/model"
	"github.com/BuzzLyutic/task-list/internal/repo"
)

var ErrDuplicateID = errors.New("duplicate task id")

// Store holds the ordered task sequence and mirrors it to a key-value repository.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	repo   repo.KeyValueRepository
	key    string
	logger *zap.Logger
	tasks  []model.Task
}

func New(r repo.KeyValueRepository, key string, logger *zap.Logger) *Store {
	return &Store{
		repo:   r,
		key:    key,
		logger: logger,
		tasks:  []model.Task{},
	}
}

// Load replaces the in-memory sequence with the persisted one. A missing or
// corrupt value yields an empty sequence; only repository failures are returned.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, s.key)
	if errors.Is(err, repo.ErrorNotFound) {
		s.tasks = []model.Task{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %q: %w", s.key, err)
	}

	tasks, err := Decode(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable saved tasks",
			zap.String("key", s.key),
			zap.Error(err),
		)
		s.tasks = []model.Task{}
		return nil
	}

	s.tasks = tasks
	s.logger.Debug("tasks loaded", zap.String("key", s.key), zap.Int("count", len(tasks)))
	return nil
}

// Save overwrites the persisted value with the current sequence.
func (s *Store) Save(ctx context.Context) error {
	raw, err := Encode(s.tasks)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("saving %q: %w", s.key, err)
	}
	return nil
}

func (s *Store) Add(t model.Task) error {
	if s.index(t.ID) >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
	}
	s.tasks = append(s.tasks, t)
	return nil
}

// ToggleCompleted reports whether a task with id was found.
func (s *Store) ToggleCompleted(id int64, completed bool) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = completed
	return true
}

// Remove reports whether a task with id was found.
func (s *Store) Remove(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// All returns a copy of the sequence in insertion order.
func (s *Store) All() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Replace swaps the whole sequence for a copy of tasks.
func (s *Store) Replace(tasks []model.Task) {
	s.tasks = make([]model.Task, len(tasks))
	copy(s.tasks, tasks)
}

// Find looks a task up by id.
func (s *Store) Find(id int64) (model.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the creation time in Unix milliseconds, bumped past the
// largest existing id when the clock has not moved forward.
func (s *Store) NextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, t := range s.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

func (s *Store) index(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
