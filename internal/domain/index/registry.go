package index

import "github.com/OfficialArms/virtool/internal/domain/action"

func Register(r *action.Registry) {
	r.Register(FindIndexes.Requested, action.Decoder[FindRequested]())
	r.Register(GetIndex.Requested, action.Decoder[GetRequested]())
	r.Register(GetUnbuilt.Requested, action.Decoder[GetUnbuiltRequested]())
	r.Register(CreateIndex.Requested, action.Decoder[CreateRequested]())
}
