package group

import "github.com/OfficialArms/virtool/internal/domain/action"

func Register(r *action.Registry) {
	r.Register(ListGroups.Requested, action.Decoder[ListRequested]())
	r.Register(CreateGroup.Requested, action.Decoder[CreateRequested]())
	r.Register(SetGroupPermission.Requested, action.Decoder[SetPermissionRequested]())
	r.Register(RemoveGroup.Requested, action.Decoder[RemoveRequested]())
}
