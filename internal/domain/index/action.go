package index

import (
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
)

const (
	WSInsertIndex action.Name = "WS_INSERT_INDEX"
	WSUpdateIndex action.Name = "WS_UPDATE_INDEX"
)

var (
	FindIndexes = action.NewTriple("FIND_INDEXES")
	GetIndex    = action.NewTriple("GET_INDEX")
	GetUnbuilt  = action.NewTriple("GET_UNBUILT")
	CreateIndex = action.NewTriple("CREATE_INDEX")
)

type Action interface {
	action.Action
	index()
}

// FindRequested lists the indexes of one reference, or all of them when
// RefID is empty.
type FindRequested struct {
	RefID string `json:"ref_id"`
	Page  int    `json:"page"`
}

type FindSucceeded struct {
	Data collection.Page[Index] `json:"data"`
}

type GetRequested struct {
	IndexID string `json:"index_id"`
}

type GetSucceeded struct {
	Data Index `json:"data"`
}

type GetUnbuiltRequested struct {
	RefID string `json:"ref_id"`
}

type GetUnbuiltSucceeded struct {
	Data Unbuilt `json:"data"`
}

type CreateRequested struct {
	RefID string `json:"ref_id"`
}

type CreateSucceeded struct {
	Data Index `json:"data"`
}

type WSInsert struct {
	Data Index `json:"data"`
}

type WSUpdate struct {
	Data Update `json:"data"`
}

func (FindRequested) Type() action.Type       { return FindIndexes.Requested }
func (FindSucceeded) Type() action.Type       { return FindIndexes.Succeeded }
func (GetRequested) Type() action.Type        { return GetIndex.Requested }
func (GetSucceeded) Type() action.Type        { return GetIndex.Succeeded }
func (GetUnbuiltRequested) Type() action.Type { return GetUnbuilt.Requested }
func (GetUnbuiltSucceeded) Type() action.Type { return GetUnbuilt.Succeeded }
func (CreateRequested) Type() action.Type     { return CreateIndex.Requested }
func (CreateSucceeded) Type() action.Type     { return CreateIndex.Succeeded }
func (WSInsert) Type() action.Type            { return action.LocalType(WSInsertIndex) }
func (WSUpdate) Type() action.Type            { return action.LocalType(WSUpdateIndex) }

func (FindRequested) index()       {}
func (FindSucceeded) index()       {}
func (GetRequested) index()        {}
func (GetSucceeded) index()        {}
func (GetUnbuiltRequested) index() {}
func (GetUnbuiltSucceeded) index() {}
func (CreateRequested) index()     {}
func (CreateSucceeded) index()     {}
func (WSInsert) index()            {}
func (WSUpdate) index()            {}
