package settings

import "github.com/OfficialArms/virtool/internal/domain/action"

func Register(r *action.Registry) {
	r.Register(GetSettings.Requested, action.Decoder[GetRequested]())
	r.Register(UpdateSettings.Requested, action.Decoder[UpdateRequested]())
	r.Register(GetControlReadahead.Requested, action.Decoder[ReadaheadRequested]())
}
