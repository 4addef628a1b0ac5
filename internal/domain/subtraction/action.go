package subtraction

import "github.com/OfficialArms/virtool/internal/domain/action"

const (
	WSInsertSubtraction action.Name = "WS_INSERT_SUBTRACTION"
	WSUpdateSubtraction action.Name = "WS_UPDATE_SUBTRACTION"
	WSRemoveSubtraction action.Name = "WS_REMOVE_SUBTRACTION"
)

var (
	FindSubtractions   = action.NewTriple("FIND_SUBTRACTIONS")
	ListSubtractionIDs = action.NewTriple("LIST_SUBTRACTION_IDS")
	GetSubtraction     = action.NewTriple("GET_SUBTRACTION")
	CreateSubtraction  = action.NewTriple("CREATE_SUBTRACTION")
	RemoveSubtraction  = action.NewTriple("REMOVE_SUBTRACTION")
)

type Action interface {
	action.Action
	subtraction()
}

type FindRequested struct {
	Term string `json:"term"`
	Page int    `json:"page"`
}

type FindSucceeded struct {
	Data FindResult `json:"data"`
}

type ListIDsRequested struct{}

type ListIDsSucceeded struct {
	Data []string `json:"data"`
}

type GetRequested struct {
	SubtractionID string `json:"subtraction_id"`
}

type GetSucceeded struct {
	Data Subtraction `json:"data"`
}

type CreateRequested struct {
	CreateRequest
}

type CreateSucceeded struct {
	Data Subtraction `json:"data"`
}

type RemoveRequested struct {
	SubtractionID string `json:"subtraction_id"`
}

type RemoveSucceeded struct {
	SubtractionID string `json:"subtraction_id"`
}

type WSInsert struct {
	Data Subtraction `json:"data"`
}

type WSUpdate struct {
	Data Update `json:"data"`
}

type WSRemove struct {
	ID string `json:"id"`
}

func (FindRequested) Type() action.Type    { return FindSubtractions.Requested }
func (FindSucceeded) Type() action.Type    { return FindSubtractions.Succeeded }
func (ListIDsRequested) Type() action.Type { return ListSubtractionIDs.Requested }
func (ListIDsSucceeded) Type() action.Type { return ListSubtractionIDs.Succeeded }
func (GetRequested) Type() action.Type     { return GetSubtraction.Requested }
func (GetSucceeded) Type() action.Type     { return GetSubtraction.Succeeded }
func (CreateRequested) Type() action.Type  { return CreateSubtraction.Requested }
func (CreateSucceeded) Type() action.Type  { return CreateSubtraction.Succeeded }
func (RemoveRequested) Type() action.Type  { return RemoveSubtraction.Requested }
func (RemoveSucceeded) Type() action.Type  { return RemoveSubtraction.Succeeded }
func (WSInsert) Type() action.Type         { return action.LocalType(WSInsertSubtraction) }
func (WSUpdate) Type() action.Type         { return action.LocalType(WSUpdateSubtraction) }
func (WSRemove) Type() action.Type         { return action.LocalType(WSRemoveSubtraction) }

func (FindRequested) subtraction()    {}
func (FindSucceeded) subtraction()    {}
func (ListIDsRequested) subtraction() {}
func (ListIDsSucceeded) subtraction() {}
func (GetRequested) subtraction()     {}
func (GetSucceeded) subtraction()     {}
func (CreateRequested) subtraction()  {}
func (CreateSucceeded) subtraction()  {}
func (RemoveRequested) subtraction()  {}
func (RemoveSucceeded) subtraction()  {}
func (WSInsert) subtraction()         {}
func (WSUpdate) subtraction()         {}
func (WSRemove) subtraction()         {}
