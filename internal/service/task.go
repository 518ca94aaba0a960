package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-list/internal/model"
	"github.com/BuzzLyutic/task-list/internal/store"
	"github.com/BuzzLyutic/task-list/internal/view"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("task not found")
)

// Listener is called with the current sequence after every successful mutation.
// It runs under the service lock and must not call back into the service.
type Listener func(tasks []model.Task)

type TaskService struct {
	mu        sync.Mutex
	store     *store.Store
	logger    *zap.Logger
	now       func() time.Time
	listeners []Listener
}

func NewTaskService(st *store.Store, logger *zap.Logger) *TaskService {
	return &TaskService{
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// OnChange registers a re-render callback.
func (s *TaskService) OnChange(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *TaskService) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	t, err := s.validate(in) // Валидация введенных данных, до создания задачи
	if err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.store.All()
	t.ID = s.store.NextID(s.now())
	if err := s.store.Add(t); err != nil {
		return model.Task{}, err
	}
	if err := s.commit(ctx, prev); err != nil {
		return model.Task{}, err
	}

	s.logger.Info("task created", zap.Int64("task_id", t.ID), zap.String("priority", t.Priority.String()))
	return t, nil
}

// Toggle sets the completed flag. An unknown id is not an error.
func (s *TaskService) Toggle(ctx context.Context, id int64, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.store.All()
	if !s.store.ToggleCompleted(id, completed) {
		s.logger.Debug("toggle of unknown task", zap.Int64("task_id", id))
	}
	return s.commit(ctx, prev)
}

// Delete removes the task. An unknown id is not an error.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.store.All()
	if s.store.Remove(id) {
		s.logger.Info("task deleted", zap.Int64("task_id", id))
	} else {
		s.logger.Debug("delete of unknown task", zap.Int64("task_id", id))
	}
	return s.commit(ctx, prev)
}

func (s *TaskService) List() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.All()
}

func (s *TaskService) Get(id int64) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.store.Find(id)
	if !ok {
		return t, ErrNotFound
	}
	return t, nil
}

func (s *TaskService) Progress() view.Progress {
	return view.ComputeProgress(s.List())
}

// commit persists the store and notifies listeners. When saving fails the
// store goes back to prev, so memory never holds what storage refused.
// Caller holds s.mu.
func (s *TaskService) commit(ctx context.Context, prev []model.Task) error {
	if err := s.store.Save(ctx); err != nil {
		s.store.Replace(prev)
		s.logger.Error("failed to persist tasks", zap.Error(err))
		return err
	}

	tasks := s.store.All()
	for _, l := range s.listeners {
		l(tasks)
	}
	return nil
}

func (s *TaskService) validate(in model.TaskInput) (model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	priority, err := model.ParsePriority(in.Priority)
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	date := strings.TrimSpace(in.DueDate)
	if date != "" {
		if _, err := time.Parse(model.DateLayout, date); err != nil {
			return model.Task{}, fmt.Errorf("%w: due date must look like %s", ErrValidation, model.DateLayout)
		}
	}

	return model.Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		DueDate:     date,
		Priority:    priority,
	}, nil
}
