package account

import (
	"time"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

const WSUpdateAccount action.Name = "WS_UPDATE_ACCOUNT"

var (
	GetAccount            = action.NewTriple("GET_ACCOUNT")
	UpdateAccount         = action.NewTriple("UPDATE_ACCOUNT")
	ChangeAccountPassword = action.NewTriple("CHANGE_ACCOUNT_PASSWORD")
)

type Action interface {
	action.Action
	account()
}

type GetRequested struct{}

type GetSucceeded struct {
	Data Account `json:"data"`
}

type UpdateRequested struct {
	Update Update `json:"update"`
}

type UpdateSucceeded struct {
	Data Account `json:"data"`
}

type ChangePasswordRequested struct {
	PasswordChange
}

type ChangePasswordSucceeded struct {
	ChangedAt time.Time `json:"changed_at"`
}

type WSUpdate struct {
	Data Update `json:"data"`
}

func (GetRequested) Type() action.Type            { return GetAccount.Requested }
func (GetSucceeded) Type() action.Type            { return GetAccount.Succeeded }
func (UpdateRequested) Type() action.Type         { return UpdateAccount.Requested }
func (UpdateSucceeded) Type() action.Type         { return UpdateAccount.Succeeded }
func (ChangePasswordRequested) Type() action.Type { return ChangeAccountPassword.Requested }
func (ChangePasswordSucceeded) Type() action.Type { return ChangeAccountPassword.Succeeded }
func (WSUpdate) Type() action.Type                { return action.LocalType(WSUpdateAccount) }

func (GetRequested) account()            {}
func (GetSucceeded) account()            {}
func (UpdateRequested) account()         {}
func (UpdateSucceeded) account()         {}
func (ChangePasswordRequested) account() {}
func (ChangePasswordSucceeded) account() {}
func (WSUpdate) account()                {}
