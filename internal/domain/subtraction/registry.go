package subtraction

import "github.com/OfficialArms/virtool/internal/domain/action"

func Register(r *action.Registry) {
	r.Register(FindSubtractions.Requested, action.Decoder[FindRequested]())
	r.Register(ListSubtractionIDs.Requested, action.Decoder[ListIDsRequested]())
	r.Register(GetSubtraction.Requested, action.Decoder[GetRequested]())
	r.Register(CreateSubtraction.Requested, action.Decoder[CreateRequested]())
	r.Register(RemoveSubtraction.Requested, action.Decoder[RemoveRequested]())
}
