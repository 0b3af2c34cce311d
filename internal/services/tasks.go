package services

import (
	"context"
	"time"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/store"
)

// TaskService handles task operations. Every call is scoped to the
// calling user; identifiers from other users do not resolve.
type TaskService struct {
	store store.Store
}

func NewTaskService(s store.Store) *TaskService { return &TaskService{store: s} }

// CreateTask stamps ownership before persisting. Status is always
// forced to pending on creation regardless of client input.
func (s *TaskService) CreateTask(ctx context.Context, userID, text, priority string, dueDate time.Time) (*model.Task, error) {
	return s.store.Tasks().Create(ctx, &model.Task{
		UserID:   userID,
		Task:     text,
		DueDate:  dueDate,
		Status:   model.TaskStatusPending,
		Priority: priority,
	})
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	return s.store.Tasks().List(ctx, userID)
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, userID, taskID, status string) (*model.Task, error) {
	return s.store.Tasks().Update(ctx, userID, taskID, model.TaskUpdate{Status: &status})
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	return s.store.Tasks().Delete(ctx, userID, taskID)
}
