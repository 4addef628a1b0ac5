package job

import (
	"time"

	"github.com/OfficialArms/virtool/internal/domain/collection"
)

type UserRef struct {
	ID     string `json:"id"`
	Handle string `json:"handle,omitempty"`
}

type Status struct {
	State     string    `json:"state"`
	Stage     string    `json:"stage,omitempty"`
	Progress  float64   `json:"progress"`
	Timestamp time.Time `json:"timestamp"`
}

type Job struct {
	ID        string         `json:"id"`
	Workflow  string         `json:"workflow"`
	State     string         `json:"state"`
	Stage     string         `json:"stage,omitempty"`
	Progress  float64        `json:"progress"`
	Args      map[string]any `json:"args,omitempty"`
	Status    []Status       `json:"status,omitempty"`
	User      UserRef        `json:"user"`
	CreatedAt time.Time      `json:"created_at"`
}

func (j Job) GetID() string { return j.ID }

// Terminal reports whether the job can no longer change state.
func (j Job) Terminal() bool {
	switch j.State {
	case "complete", "cancelled", "error", "terminated", "timeout":
		return true
	}
	return false
}

type Update struct {
	ID       string   `json:"id,omitempty"`
	State    *string  `json:"state,omitempty"`
	Stage    *string  `json:"stage,omitempty"`
	Progress *float64 `json:"progress,omitempty"`
}

func (u Update) GetID() string { return u.ID }

func (u Update) Apply(j Job) Job {
	if u.State != nil {
		j.State = *u.State
	}
	if u.Stage != nil {
		j.Stage = *u.Stage
	}
	if u.Progress != nil {
		j.Progress = *u.Progress
	}
	return j
}

type State struct {
	collection.List[Job]
	Detail *Job `json:"detail"`
}
