package reference

import (
	"time"

	"github.com/OfficialArms/virtool/internal/domain/collection"
)

// OfficialRemote is the slug of the reference published by the Virtool team.
const OfficialRemote = "virtool/ref-plant-viruses"

type Remote struct {
	Slug string `json:"slug"`
}

type UserRef struct {
	ID     string `json:"id"`
	Handle string `json:"handle,omitempty"`
}

type Reference struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DataType        string    `json:"data_type"`
	Organism        string    `json:"organism"`
	InternalControl string    `json:"internal_control,omitempty"`
	Restrict        bool      `json:"restrict_source_types"`
	OTUCount        int       `json:"otu_count"`
	RemotesFrom     *Remote   `json:"remotes_from,omitempty"`
	User            UserRef   `json:"user"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r Reference) GetID() string { return r.ID }

func byName(a, b Reference) bool { return a.Name < b.Name }

type Update struct {
	ID              string  `json:"id,omitempty"`
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Organism        *string `json:"organism,omitempty"`
	InternalControl *string `json:"internal_control,omitempty"`
	Restrict        *bool   `json:"restrict_source_types,omitempty"`
	OTUCount        *int    `json:"otu_count,omitempty"`
}

func (u Update) GetID() string { return u.ID }

func (u Update) Apply(r Reference) Reference {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Organism != nil {
		r.Organism = *u.Organism
	}
	if u.InternalControl != nil {
		r.InternalControl = *u.InternalControl
	}
	if u.Restrict != nil {
		r.Restrict = *u.Restrict
	}
	if u.OTUCount != nil {
		r.OTUCount = *u.OTUCount
	}
	return r
}

// Member is a user or group granted rights on a reference.
type Member struct {
	ID        string `json:"id"`
	Build     bool   `json:"build"`
	Modify    bool   `json:"modify"`
	ModifyOTU bool   `json:"modify_otu"`
	Remove    bool   `json:"remove"`
}

func (m Member) GetID() string { return m.ID }

type Rights struct {
	Build     *bool `json:"build,omitempty"`
	Modify    *bool `json:"modify,omitempty"`
	ModifyOTU *bool `json:"modify_otu,omitempty"`
	Remove    *bool `json:"remove,omitempty"`
}

// Release describes the newest release of a remote reference.
type Release struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Body        string    `json:"body"`
	Newer       bool      `json:"newer"`
	PublishedAt time.Time `json:"published_at"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

type Detail struct {
	Reference
	Users   []Member `json:"users"`
	Groups  []Member `json:"groups"`
	Release *Release `json:"release,omitempty"`

	CheckPending       bool   `json:"check_pending"`
	PendingUserRemove  string `json:"pending_user_remove,omitempty"`
	PendingGroupRemove string `json:"pending_group_remove,omitempty"`
}

type State struct {
	collection.List[Reference]
	Detail *Detail `json:"detail"`
	// InstallOfficial is true when a listed reference tracks the official remote.
	InstallOfficial bool `json:"install_official"`
}

// Settle clears the in-flight markers of the detail. The detail is copied.
func (s State) Settle() State {
	if s.Detail == nil {
		return s
	}
	d := *s.Detail
	d.CheckPending = false
	d.PendingUserRemove = ""
	d.PendingGroupRemove = ""
	s.Detail = &d
	return s
}

func hasOfficialRemote(docs []Reference) bool {
	for _, r := range docs {
		if r.RemotesFrom != nil && r.RemotesFrom.Slug == OfficialRemote {
			return true
		}
	}
	return false
}
