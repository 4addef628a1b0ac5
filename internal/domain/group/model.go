package group

import "maps"

type Group struct {
	ID          string          `json:"id"`
	Permissions map[string]bool `json:"permissions"`
}

func (g Group) GetID() string { return g.ID }

func byID(a, b Group) bool { return a.ID < b.ID }

type Update struct {
	ID          string          `json:"id,omitempty"`
	Permissions map[string]bool `json:"permissions,omitempty"`
}

func (u Update) GetID() string { return u.ID }

// Apply merges the listed permissions into g.
func (u Update) Apply(g Group) Group {
	if len(u.Permissions) == 0 {
		return g
	}
	merged := maps.Clone(g.Permissions)
	if merged == nil {
		merged = make(map[string]bool, len(u.Permissions))
	}
	maps.Copy(merged, u.Permissions)
	g.Permissions = merged
	return g
}

type State struct {
	Documents     []Group `json:"documents"`
	PendingRemove string  `json:"pending_remove,omitempty"`
}

func (s State) Settle() State {
	s.PendingRemove = ""
	return s
}
