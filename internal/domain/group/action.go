package group

import "github.com/OfficialArms/virtool/internal/domain/action"

const (
	WSInsertGroup action.Name = "WS_INSERT_GROUP"
	WSUpdateGroup action.Name = "WS_UPDATE_GROUP"
	WSRemoveGroup action.Name = "WS_REMOVE_GROUP"
)

var (
	ListGroups         = action.NewTriple("LIST_GROUPS")
	CreateGroup        = action.NewTriple("CREATE_GROUP")
	SetGroupPermission = action.NewTriple("SET_GROUP_PERMISSION")
	RemoveGroup        = action.NewTriple("REMOVE_GROUP")
)

type Action interface {
	action.Action
	group()
}

type ListRequested struct{}

type ListSucceeded struct {
	Data []Group `json:"data"`
}

type CreateRequested struct {
	GroupID string `json:"group_id"`
}

type CreateSucceeded struct {
	Data Group `json:"data"`
}

type SetPermissionRequested struct {
	GroupID    string `json:"group_id"`
	Permission string `json:"permission"`
	Value      bool   `json:"value"`
}

type SetPermissionSucceeded struct {
	Data Group `json:"data"`
}

type RemoveRequested struct {
	GroupID string `json:"group_id"`
}

type RemoveSucceeded struct {
	GroupID string `json:"group_id"`
}

type WSInsert struct {
	Data Group `json:"data"`
}

type WSUpdate struct {
	Data Update `json:"data"`
}

type WSRemove struct {
	ID string `json:"id"`
}

func (ListRequested) Type() action.Type          { return ListGroups.Requested }
func (ListSucceeded) Type() action.Type          { return ListGroups.Succeeded }
func (CreateRequested) Type() action.Type        { return CreateGroup.Requested }
func (CreateSucceeded) Type() action.Type        { return CreateGroup.Succeeded }
func (SetPermissionRequested) Type() action.Type { return SetGroupPermission.Requested }
func (SetPermissionSucceeded) Type() action.Type { return SetGroupPermission.Succeeded }
func (RemoveRequested) Type() action.Type        { return RemoveGroup.Requested }
func (RemoveSucceeded) Type() action.Type        { return RemoveGroup.Succeeded }
func (WSInsert) Type() action.Type               { return action.LocalType(WSInsertGroup) }
func (WSUpdate) Type() action.Type               { return action.LocalType(WSUpdateGroup) }
func (WSRemove) Type() action.Type               { return action.LocalType(WSRemoveGroup) }

func (ListRequested) group()          {}
func (ListSucceeded) group()          {}
func (CreateRequested) group()        {}
func (CreateSucceeded) group()        {}
func (SetPermissionRequested) group() {}
func (SetPermissionSucceeded) group() {}
func (RemoveRequested) group()        {}
func (RemoveSucceeded) group()        {}
func (WSInsert) group()               {}
func (WSUpdate) group()               {}
func (WSRemove) group()               {}
