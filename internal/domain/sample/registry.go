package sample

import "github.com/OfficialArms/virtool/internal/domain/action"

// Register adds the actions views may dispatch.
func Register(r *action.Registry) {
	r.Register(FindSamples.Requested, action.Decoder[FindRequested]())
	r.Register(GetSample.Requested, action.Decoder[GetRequested]())
	r.Register(CreateSample.Requested, action.Decoder[CreateRequested]())
	r.Register(UpdateSample.Requested, action.Decoder[UpdateRequested]())
	r.Register(RemoveSample.Requested, action.Decoder[RemoveRequested]())
}
