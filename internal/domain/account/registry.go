package account

import "github.com/OfficialArms/virtool/internal/domain/action"

func Register(r *action.Registry) {
	r.Register(GetAccount.Requested, action.Decoder[GetRequested]())
	r.Register(UpdateAccount.Requested, action.Decoder[UpdateRequested]())
	r.Register(ChangeAccountPassword.Requested, action.Decoder[ChangePasswordRequested]())
}
