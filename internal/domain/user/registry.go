package user

import "github.com/OfficialArms/virtool/internal/domain/action"

func Register(r *action.Registry) {
	r.Register(FindUsers.Requested, action.Decoder[FindRequested]())
	r.Register(GetUser.Requested, action.Decoder[GetRequested]())
	r.Register(CreateUser.Requested, action.Decoder[CreateRequested]())
	r.Register(EditUser.Requested, action.Decoder[EditRequested]())
	r.Register(RemoveUser.Requested, action.Decoder[RemoveRequested]())
}
