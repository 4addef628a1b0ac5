package job

import (
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
)

const (
	WSInsertJob action.Name = "WS_INSERT_JOB"
	WSUpdateJob action.Name = "WS_UPDATE_JOB"
	WSRemoveJob action.Name = "WS_REMOVE_JOB"
)

var (
	FindJobs  = action.NewTriple("FIND_JOBS")
	GetJob    = action.NewTriple("GET_JOB")
	CancelJob = action.NewTriple("CANCEL_JOB")
	RemoveJob = action.NewTriple("REMOVE_JOB")
)

type Action interface {
	action.Action
	job()
}

type FindRequested struct {
	Term string `json:"term"`
	Page int    `json:"page"`
}

type FindSucceeded struct {
	Data collection.Page[Job] `json:"data"`
}

type GetRequested struct {
	JobID string `json:"job_id"`
}

type GetSucceeded struct {
	Data Job `json:"data"`
}

type CancelRequested struct {
	JobID string `json:"job_id"`
}

type CancelSucceeded struct {
	Data Job `json:"data"`
}

type RemoveRequested struct {
	JobID string `json:"job_id"`
}

type RemoveSucceeded struct {
	JobID string `json:"job_id"`
}

type WSInsert struct {
	Data Job `json:"data"`
}

type WSUpdate struct {
	Data Update `json:"data"`
}

type WSRemove struct {
	ID string `json:"id"`
}

func (FindRequested) Type() action.Type   { return FindJobs.Requested }
func (FindSucceeded) Type() action.Type   { return FindJobs.Succeeded }
func (GetRequested) Type() action.Type    { return GetJob.Requested }
func (GetSucceeded) Type() action.Type    { return GetJob.Succeeded }
func (CancelRequested) Type() action.Type { return CancelJob.Requested }
func (CancelSucceeded) Type() action.Type { return CancelJob.Succeeded }
func (RemoveRequested) Type() action.Type { return RemoveJob.Requested }
func (RemoveSucceeded) Type() action.Type { return RemoveJob.Succeeded }
func (WSInsert) Type() action.Type        { return action.LocalType(WSInsertJob) }
func (WSUpdate) Type() action.Type        { return action.LocalType(WSUpdateJob) }
func (WSRemove) Type() action.Type        { return action.LocalType(WSRemoveJob) }

func (FindRequested) job()   {}
func (FindSucceeded) job()   {}
func (GetRequested) job()    {}
func (GetSucceeded) job()    {}
func (CancelRequested) job() {}
func (CancelSucceeded) job() {}
func (RemoveRequested) job() {}
func (RemoveSucceeded) job() {}
func (WSInsert) job()        {}
func (WSUpdate) job()        {}
func (WSRemove) job()        {}
