package index

import (
	"time"

	"github.com/OfficialArms/virtool/internal/domain/collection"
)

type RefRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Index struct {
	ID            string    `json:"id"`
	Version       int       `json:"version"`
	Ready         bool      `json:"ready"`
	HasFiles      bool      `json:"has_files"`
	Reference     RefRef    `json:"reference"`
	ChangeCount   int       `json:"change_count"`
	ModifiedCount int       `json:"modified_otu_count"`
	JobID         string    `json:"job_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (i Index) GetID() string { return i.ID }

type Update struct {
	ID       string  `json:"id,omitempty"`
	Ready    *bool   `json:"ready,omitempty"`
	HasFiles *bool   `json:"has_files,omitempty"`
	JobID    *string `json:"job_id,omitempty"`
}

func (u Update) GetID() string { return u.ID }

func (u Update) Apply(i Index) Index {
	if u.Ready != nil {
		i.Ready = *u.Ready
	}
	if u.HasFiles != nil {
		i.HasFiles = *u.HasFiles
	}
	if u.JobID != nil {
		i.JobID = *u.JobID
	}
	return i
}

type OTURef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Change is one history entry not yet included in an index build.
type Change struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	OTU         OTURef    `json:"otu"`
	CreatedAt   time.Time `json:"created_at"`
}

type Unbuilt struct {
	Documents  []Change `json:"documents"`
	TotalCount int      `json:"total_count"`
}

type State struct {
	collection.List[Index]
	Detail  *Index   `json:"detail"`
	Unbuilt *Unbuilt `json:"unbuilt"`
}
