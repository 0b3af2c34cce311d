package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/focusflow/focusflow/internal/api/respond"
	"github.com/focusflow/focusflow/internal/api/validate"
	"github.com/focusflow/focusflow/internal/services"
)

// TaskHandler serves the task collection. Ownership comes from the
// verified token claims, never from the request body.
type TaskHandler struct {
	svc *services.TaskService
}

func NewTaskHandler(svc *services.TaskService) *TaskHandler { return &TaskHandler{svc: svc} }

// ListTasks GET /task
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	tasks, err := h.svc.ListTasks(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks, "count": len(tasks)})
}

// CreateTask POST /task
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var in struct {
		Task     string    `json:"task"`
		Priority string    `json:"priority"`
		DueDate  time.Time `json:"dueDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.CreateTask(in.Task, in.Priority, in.DueDate); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	task, err := h.svc.CreateTask(r.Context(), claims.UserID, in.Task, in.Priority, in.DueDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{"task": task})
}

// UpdateTask PATCH /task/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.TaskStatus(in.Status); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	task, err := h.svc.UpdateTaskStatus(r.Context(), claims.UserID, mux.Vars(r)["id"], in.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

// DeleteTask DELETE /task/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteTask(r.Context(), claims.UserID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}
