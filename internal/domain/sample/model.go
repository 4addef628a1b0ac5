package sample

import (
	"time"

	"github.com/OfficialArms/virtool/internal/domain/collection"
)

type UserRef struct {
	ID     string `json:"id"`
	Handle string `json:"handle,omitempty"`
}

type Sample struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Host        string    `json:"host"`
	Isolate     string    `json:"isolate"`
	Locale      string    `json:"locale"`
	Notes       string    `json:"notes"`
	Subtraction string    `json:"subtraction,omitempty"`
	Files       []string  `json:"files,omitempty"`
	Labels      []int     `json:"labels,omitempty"`
	Ready       bool      `json:"ready"`
	User        UserRef   `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s Sample) GetID() string { return s.ID }

// Update lists the fields of a sample that may change. Nil fields are kept.
type Update struct {
	ID      string  `json:"id,omitempty"`
	Name    *string `json:"name,omitempty"`
	Host    *string `json:"host,omitempty"`
	Isolate *string `json:"isolate,omitempty"`
	Locale  *string `json:"locale,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Labels  *[]int  `json:"labels,omitempty"`
	Ready   *bool   `json:"ready,omitempty"`
}

func (u Update) GetID() string { return u.ID }

func (u Update) Apply(s Sample) Sample {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Host != nil {
		s.Host = *u.Host
	}
	if u.Isolate != nil {
		s.Isolate = *u.Isolate
	}
	if u.Locale != nil {
		s.Locale = *u.Locale
	}
	if u.Notes != nil {
		s.Notes = *u.Notes
	}
	if u.Labels != nil {
		s.Labels = append([]int(nil), (*u.Labels)...)
	}
	if u.Ready != nil {
		s.Ready = *u.Ready
	}
	return s
}

type CreateRequest struct {
	Name        string   `json:"name"`
	Host        string   `json:"host,omitempty"`
	Isolate     string   `json:"isolate,omitempty"`
	Locale      string   `json:"locale,omitempty"`
	Subtraction string   `json:"subtraction,omitempty"`
	Files       []string `json:"files"`
	Labels      []int    `json:"labels,omitempty"`
}

type State struct {
	collection.List[Sample]
	Detail        *Sample `json:"detail"`
	PendingRemove string  `json:"pending_remove,omitempty"`
}

// Settle drops markers of calls that cannot finish any more.
func (s State) Settle() State {
	s.PendingRemove = ""
	return s
}
