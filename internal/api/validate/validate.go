package validate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/focusflow/focusflow/internal/model"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field string, v *string, limit int) error {
	if v == nil {
		return nil
	}
	if len(*v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// -------- Request specific helpers ----------

// SignUp validates input for registering a new account.
func SignUp(name, email, password string) error {
	if err := NonEmpty("name", name); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	if err := NonEmpty("password", password); err != nil {
		return err
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds 100 characters")
	}
	return nil
}

// SignIn validates credentials input.
func SignIn(email, password string) error {
	if err := NonEmpty("email", email); err != nil {
		return err
	}
	return NonEmpty("password", password)
}

// CreateTask validates the mandatory task fields.
func CreateTask(task, priority string, dueDate time.Time) error {
	if err := NonEmpty("task", task); err != nil {
		return err
	}
	if err := NonEmpty("priority", priority); err != nil {
		return err
	}
	if !model.ValidPriority(priority) {
		return fmt.Errorf("priority must be one of low, medium, high")
	}
	if dueDate.IsZero() {
		return fmt.Errorf("dueDate is required")
	}
	return nil
}

// CreateJournalEntry validates a new journal entry. Content is the only
// mandatory field; title and mood are optional.
func CreateJournalEntry(content string, mood *string) error {
	if err := NonEmpty("content", content); err != nil {
		return err
	}
	if mood != nil && *mood != "" && !model.ValidMood(*mood) {
		return fmt.Errorf("mood must be one of happy, sad, neutral, stressed")
	}
	return nil
}

// CreateSession validates the shared session fields for focus and
// meditation records.
func CreateSession(startTime, endTime time.Time, duration int) error {
	if startTime.IsZero() {
		return fmt.Errorf("startTime is required")
	}
	if endTime.IsZero() {
		return fmt.Errorf("endTime is required")
	}
	if duration <= 0 {
		return fmt.Errorf("duration is required")
	}
	return nil
}

// TaskStatus validates a task status transition value.
func TaskStatus(status string) error {
	if err := NonEmpty("status", status); err != nil {
		return err
	}
	if !model.ValidTaskStatus(status) {
		return fmt.Errorf("status must be pending or completed")
	}
	return nil
}
