package user

import (
	"slices"
	"time"

	"github.com/OfficialArms/virtool/internal/domain/collection"
)

type User struct {
	ID                 string          `json:"id"`
	Handle             string          `json:"handle"`
	Administrator      bool            `json:"administrator"`
	Groups             []string        `json:"groups"`
	PrimaryGroup       string          `json:"primary_group,omitempty"`
	Permissions        map[string]bool `json:"permissions,omitempty"`
	ForceReset         bool            `json:"force_reset"`
	LastPasswordChange time.Time       `json:"last_password_change"`
}

func (u User) GetID() string { return u.ID }

// Update is both the body of EDIT_USER and the payload of user push updates.
type Update struct {
	ID            string    `json:"id,omitempty"`
	Handle        *string   `json:"handle,omitempty"`
	Administrator *bool     `json:"administrator,omitempty"`
	Password      *string   `json:"password,omitempty"`
	ForceReset    *bool     `json:"force_reset,omitempty"`
	PrimaryGroup  *string   `json:"primary_group,omitempty"`
	Groups        *[]string `json:"groups,omitempty"`
}

func (u Update) GetID() string { return u.ID }

func (u Update) Apply(usr User) User {
	if u.Handle != nil {
		usr.Handle = *u.Handle
	}
	if u.Administrator != nil {
		usr.Administrator = *u.Administrator
	}
	if u.ForceReset != nil {
		usr.ForceReset = *u.ForceReset
	}
	if u.PrimaryGroup != nil {
		usr.PrimaryGroup = *u.PrimaryGroup
	}
	if u.Groups != nil {
		usr.Groups = slices.Clone(*u.Groups)
	}
	return usr
}

type CreateRequest struct {
	Handle     string `json:"handle"`
	Password   string `json:"password"`
	ForceReset bool   `json:"force_reset"`
}

type State struct {
	collection.List[User]
	Detail *User `json:"detail"`
}
