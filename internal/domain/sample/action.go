package sample

import (
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
)

const (
	WSInsertSample action.Name = "WS_INSERT_SAMPLE"
	WSUpdateSample action.Name = "WS_UPDATE_SAMPLE"
	WSRemoveSample action.Name = "WS_REMOVE_SAMPLE"
)

var (
	FindSamples  = action.NewTriple("FIND_SAMPLES")
	GetSample    = action.NewTriple("GET_SAMPLE")
	CreateSample = action.NewTriple("CREATE_SAMPLE")
	UpdateSample = action.NewTriple("UPDATE_SAMPLE")
	RemoveSample = action.NewTriple("REMOVE_SAMPLE")
)

// Action is implemented by every action of this package.
type Action interface {
	action.Action
	sample()
}

type FindRequested struct {
	Term string `json:"term"`
	Page int    `json:"page"`
}

type FindSucceeded struct {
	Data collection.Page[Sample] `json:"data"`
}

type GetRequested struct {
	SampleID string `json:"sample_id"`
}

type GetSucceeded struct {
	Data Sample `json:"data"`
}

type CreateRequested struct {
	CreateRequest
}

type CreateSucceeded struct {
	Data Sample `json:"data"`
}

type UpdateRequested struct {
	SampleID string `json:"sample_id"`
	Update   Update `json:"update"`
}

type UpdateSucceeded struct {
	Data Sample `json:"data"`
}

type RemoveRequested struct {
	SampleID string `json:"sample_id"`
}

type RemoveSucceeded struct {
	SampleID string `json:"sample_id"`
}

type WSInsert struct {
	Data Sample `json:"data"`
}

type WSUpdate struct {
	Data Update `json:"data"`
}

type WSRemove struct {
	ID string `json:"id"`
}

func (FindRequested) Type() action.Type   { return FindSamples.Requested }
func (FindSucceeded) Type() action.Type   { return FindSamples.Succeeded }
func (GetRequested) Type() action.Type    { return GetSample.Requested }
func (GetSucceeded) Type() action.Type    { return GetSample.Succeeded }
func (CreateRequested) Type() action.Type { return CreateSample.Requested }
func (CreateSucceeded) Type() action.Type { return CreateSample.Succeeded }
func (UpdateRequested) Type() action.Type { return UpdateSample.Requested }
func (UpdateSucceeded) Type() action.Type { return UpdateSample.Succeeded }
func (RemoveRequested) Type() action.Type { return RemoveSample.Requested }
func (RemoveSucceeded) Type() action.Type { return RemoveSample.Succeeded }
func (WSInsert) Type() action.Type        { return action.LocalType(WSInsertSample) }
func (WSUpdate) Type() action.Type        { return action.LocalType(WSUpdateSample) }
func (WSRemove) Type() action.Type        { return action.LocalType(WSRemoveSample) }

func (FindRequested) sample()   {}
func (FindSucceeded) sample()   {}
func (GetRequested) sample()    {}
func (GetSucceeded) sample()    {}
func (CreateRequested) sample() {}
func (CreateSucceeded) sample() {}
func (UpdateRequested) sample() {}
func (UpdateSucceeded) sample() {}
func (RemoveRequested) sample() {}
func (RemoveSucceeded) sample() {}
func (WSInsert) sample()        {}
func (WSUpdate) sample()        {}
func (WSRemove) sample()        {}
