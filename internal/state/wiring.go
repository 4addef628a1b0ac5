package state

import (
	"github.com/OfficialArms/virtool/internal/domain/account"
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/apierror"
	"github.com/OfficialArms/virtool/internal/domain/effect"
	"github.com/OfficialArms/virtool/internal/domain/group"
	"github.com/OfficialArms/virtool/internal/domain/index"
	"github.com/OfficialArms/virtool/internal/domain/job"
	"github.com/OfficialArms/virtool/internal/domain/push"
	"github.com/OfficialArms/virtool/internal/domain/reference"
	"github.com/OfficialArms/virtool/internal/domain/sample"
	"github.com/OfficialArms/virtool/internal/domain/settings"
	"github.com/OfficialArms/virtool/internal/domain/subtraction"
	"github.com/OfficialArms/virtool/internal/domain/user"
)

// Bindings collects the effect bindings of every domain.
func Bindings(api effect.Caller) []effect.Binding {
	var all []effect.Binding
	for _, fn := range []func(effect.Caller) []effect.Binding{
		sample.Bindings,
		subtraction.Bindings,
		index.Bindings,
		reference.Bindings,
		job.Bindings,
		user.Bindings,
		group.Bindings,
		settings.Bindings,
		account.Bindings,
	} {
		all = append(all, fn(api)...)
	}
	return all
}

// PushDecoders maps push interface names to their decoders.
func PushDecoders() map[string]push.Decoder {
	return map[string]push.Decoder{
		sample.Interface:      sample.Push,
		subtraction.Interface: subtraction.Push,
		index.Interface:       index.Push,
		reference.Interface:   reference.Push,
		job.Interface:         job.Push,
		user.Interface:        user.Push,
		group.Interface:       group.Push,
		settings.Interface:    settings.Push,
		account.Interface:     account.Push,
	}
}

// NewRegistry returns a registry of every action views may dispatch.
func NewRegistry() *action.Registry {
	r := action.NewRegistry()

	sample.Register(r)
	subtraction.Register(r)
	index.Register(r)
	reference.Register(r)
	job.Register(r)
	user.Register(r)
	group.Register(r)
	settings.Register(r)
	account.Register(r)

	r.Register(action.LocalType(apierror.ClearErrorName), action.Decoder[apierror.ClearError]())

	return r
}
