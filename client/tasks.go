package client

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListTasks returns the caller's tasks. Anonymous sessions read the
// local guest store and never touch the network.
func (c *Client) ListTasks(ctx context.Context) ([]*Task, error) {
	if c.session.State() == StateAnonymous {
		return c.guestTasks()
	}
	var out struct {
		Tasks []*Task `json:"tasks"`
	}
	if err := c.doJSON(ctx, "GET", "/task", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// CreateTask creates a task. Anonymous sessions append to the guest store.
func (c *Client) CreateTask(ctx context.Context, text, priority string, dueDate time.Time) (*Task, error) {
	if c.session.State() == StateAnonymous {
		return c.guestCreateTask(text, priority, dueDate)
	}
	in := map[string]interface{}{"task": text, "priority": priority, "dueDate": dueDate}
	var out struct {
		Task *Task `json:"task"`
	}
	if err := c.doJSON(ctx, "POST", "/task", in, &out, true); err != nil {
		return nil, err
	}
	return out.Task, nil
}

// UpdateTaskStatus changes a task's status.
func (c *Client) UpdateTaskStatus(ctx context.Context, taskID, status string) (*Task, error) {
	if c.session.State() == StateAnonymous {
		return c.guestUpdateTask(taskID, status)
	}
	in := map[string]string{"status": status}
	var out struct {
		Task *Task `json:"task"`
	}
	if err := c.doJSON(ctx, "PATCH", "/task/"+taskID, in, &out, true); err != nil {
		return nil, err
	}
	return out.Task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if c.session.State() == StateAnonymous {
		return c.guestDeleteTask(taskID)
	}
	return c.doJSON(ctx, "DELETE", "/task/"+taskID, nil, nil, true)
}

// --- guest mode ---

func (c *Client) guestTasks() ([]*Task, error) {
	if c.local == nil {
		return nil, ErrNoLocalStore
	}
	return c.local.ListTasks()
}

func (c *Client) guestCreateTask(text, priority string, dueDate time.Time) (*Task, error) {
	if c.local == nil {
		return nil, ErrNoLocalStore
	}
	if priority == "" {
		priority = "medium"
	}
	task := &Task{
		ID:           uuid.New().String(),
		Task:         text,
		DueDate:      dueDate,
		Status:       "pending",
		Priority:     priority,
		CreationTime: time.Now().UTC(),
	}
	tasks, err := c.local.ListTasks()
	if err != nil {
		return nil, err
	}
	tasks = append([]*Task{task}, tasks...)
	if err := c.local.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) guestUpdateTask(taskID, status string) (*Task, error) {
	if c.local == nil {
		return nil, ErrNoLocalStore
	}
	tasks, err := c.local.ListTasks()
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == taskID {
			now := time.Now().UTC()
			t.Status = status
			t.UpdateTime = &now
			if err := c.local.SaveTasks(tasks); err != nil {
				return nil, err
			}
			return t, nil
		}
	}
	return nil, &APIError{StatusCode: 404, Message: "not found"}
}

func (c *Client) guestDeleteTask(taskID string) error {
	if c.local == nil {
		return ErrNoLocalStore
	}
	tasks, err := c.local.ListTasks()
	if err != nil {
		return err
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return &APIError{StatusCode: 404, Message: "not found"}
	}
	return c.local.SaveTasks(kept)
}
