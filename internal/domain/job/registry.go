package job

import "github.com/OfficialArms/virtool/internal/domain/action"

func Register(r *action.Registry) {
	r.Register(FindJobs.Requested, action.Decoder[FindRequested]())
	r.Register(GetJob.Requested, action.Decoder[GetRequested]())
	r.Register(CancelJob.Requested, action.Decoder[CancelRequested]())
	r.Register(RemoveJob.Requested, action.Decoder[RemoveRequested]())
}
