package user

import (
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
)

const (
	WSInsertUser action.Name = "WS_INSERT_USER"
	WSUpdateUser action.Name = "WS_UPDATE_USER"
	WSRemoveUser action.Name = "WS_REMOVE_USER"
)

var (
	FindUsers  = action.NewTriple("FIND_USERS")
	GetUser    = action.NewTriple("GET_USER")
	CreateUser = action.NewTriple("CREATE_USER")
	EditUser   = action.NewTriple("EDIT_USER")
	RemoveUser = action.NewTriple("REMOVE_USER")
)

type Action interface {
	action.Action
	user()
}

type FindRequested struct {
	Term string `json:"term"`
	Page int    `json:"page"`
}

type FindSucceeded struct {
	Data collection.Page[User] `json:"data"`
}

type GetRequested struct {
	UserID string `json:"user_id"`
}

type GetSucceeded struct {
	Data User `json:"data"`
}

type CreateRequested struct {
	CreateRequest
}

type CreateSucceeded struct {
	Data User `json:"data"`
}

type EditRequested struct {
	UserID string `json:"user_id"`
	Update Update `json:"update"`
}

type EditSucceeded struct {
	Data User `json:"data"`
}

type RemoveRequested struct {
	UserID string `json:"user_id"`
}

type RemoveSucceeded struct {
	UserID string `json:"user_id"`
}

type WSInsert struct {
	Data User `json:"data"`
}

type WSUpdate struct {
	Data Update `json:"data"`
}

type WSRemove struct {
	ID string `json:"id"`
}

func (FindRequested) Type() action.Type   { return FindUsers.Requested }
func (FindSucceeded) Type() action.Type   { return FindUsers.Succeeded }
func (GetRequested) Type() action.Type    { return GetUser.Requested }
func (GetSucceeded) Type() action.Type    { return GetUser.Succeeded }
func (CreateRequested) Type() action.Type { return CreateUser.Requested }
func (CreateSucceeded) Type() action.Type { return CreateUser.Succeeded }
func (EditRequested) Type() action.Type   { return EditUser.Requested }
func (EditSucceeded) Type() action.Type   { return EditUser.Succeeded }
func (RemoveRequested) Type() action.Type { return RemoveUser.Requested }
func (RemoveSucceeded) Type() action.Type { return RemoveUser.Succeeded }
func (WSInsert) Type() action.Type        { return action.LocalType(WSInsertUser) }
func (WSUpdate) Type() action.Type        { return action.LocalType(WSUpdateUser) }
func (WSRemove) Type() action.Type        { return action.LocalType(WSRemoveUser) }

func (FindRequested) user()   {}
func (FindSucceeded) user()   {}
func (GetRequested) user()    {}
func (GetSucceeded) user()    {}
func (CreateRequested) user() {}
func (CreateSucceeded) user() {}
func (EditRequested) user()   {}
func (EditSucceeded) user()   {}
func (RemoveRequested) user() {}
func (RemoveSucceeded) user() {}
func (WSInsert) user()        {}
func (WSUpdate) user()        {}
func (WSRemove) user()        {}
