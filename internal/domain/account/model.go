package account

import (
	"slices"
	"time"
)

type Preferences struct {
	ShowIDs                bool   `json:"show_ids"`
	ShowVersions           bool   `json:"show_versions"`
	QuickAnalyzeWorkflow   string `json:"quick_analyze_workflow,omitempty"`
	SkipQuickAnalyzeDialog bool   `json:"skip_quick_analyze_dialog"`
}

type Account struct {
	ID                 string          `json:"id"`
	Handle             string          `json:"handle"`
	Email              string          `json:"email"`
	Administrator      bool            `json:"administrator"`
	Groups             []string        `json:"groups"`
	Permissions        map[string]bool `json:"permissions"`
	Settings           Preferences     `json:"settings"`
	LastPasswordChange time.Time       `json:"last_password_change"`
}

func (a Account) GetID() string { return a.ID }

type Update struct {
	ID       string       `json:"id,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Groups   *[]string    `json:"groups,omitempty"`
	Settings *Preferences `json:"settings,omitempty"`
}

func (u Update) GetID() string { return u.ID }

func (u Update) Apply(a Account) Account {
	if u.Email != nil {
		a.Email = *u.Email
	}
	if u.Groups != nil {
		a.Groups = slices.Clone(*u.Groups)
	}
	if u.Settings != nil {
		a.Settings = *u.Settings
	}
	return a
}

type PasswordChange struct {
	OldPassword string `json:"old_password"`
	Password    string `json:"password"`
}

type State struct {
	Data *Account `json:"data"`
}
