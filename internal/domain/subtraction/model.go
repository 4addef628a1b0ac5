package subtraction

import (
	"time"

	"github.com/OfficialArms/virtool/internal/domain/collection"
)

type FileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SampleRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Subtraction struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Nickname      string      `json:"nickname"`
	IsHost        bool        `json:"is_host"`
	Ready         bool        `json:"ready"`
	File          FileRef     `json:"file"`
	JobID         string      `json:"job_id,omitempty"`
	LinkedSamples []SampleRef `json:"linked_samples,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (s Subtraction) GetID() string { return s.ID }

type Update struct {
	ID       string  `json:"id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
	Ready    *bool   `json:"ready,omitempty"`
}

func (u Update) GetID() string { return u.ID }

func (u Update) Apply(s Subtraction) Subtraction {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Nickname != nil {
		s.Nickname = *u.Nickname
	}
	if u.Ready != nil {
		s.Ready = *u.Ready
	}
	return s
}

type CreateRequest struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	FileID   string `json:"file_id"`
}

// FindResult is a page of subtractions plus the host counts the list view shows.
type FindResult struct {
	collection.Page[Subtraction]
	HostCount      int `json:"host_count"`
	ReadyHostCount int `json:"ready_host_count"`
}

type State struct {
	collection.List[Subtraction]
	HostCount      int          `json:"host_count"`
	ReadyHostCount int          `json:"ready_host_count"`
	IDs            []string     `json:"ids"`
	Detail         *Subtraction `json:"detail"`
}
