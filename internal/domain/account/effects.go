package account

import (
	"context"
	"time"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/effect"
)

type handlers struct {
	api effect.Caller
	now func() time.Time
}

func Bindings(api effect.Caller) []effect.Binding {
	h := handlers{api: api, now: time.Now}

	return []effect.Binding{
		{Name: GetAccount.Name, Policy: effect.Latest, Handle: effect.Handle(GetAccount.Name, h.get)},
		{Name: UpdateAccount.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(UpdateAccount.Name, h.update)},
		{Name: ChangeAccountPassword.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(ChangeAccountPassword.Name, h.changePassword)},
	}
}

func (h handlers) get(ctx context.Context, _ GetRequested) (action.Action, error) {
	a, err := effect.Do[Account](ctx, h.api, effect.Get("/api/account"), nil)
	if err != nil {
		return nil, err
	}
	return GetSucceeded{Data: a}, nil
}

func (h handlers) update(ctx context.Context, req UpdateRequested) (action.Action, error) {
	body := req.Update
	body.ID = ""

	a, err := effect.Do[Account](ctx, h.api, effect.Patch("/api/account"), body)
	if err != nil {
		return nil, err
	}
	return UpdateSucceeded{Data: a}, nil
}

func (h handlers) changePassword(ctx context.Context, req ChangePasswordRequested) (action.Action, error) {
	if err := effect.Exec(ctx, h.api, effect.Put("/api/account/password"), req.PasswordChange); err != nil {
		return nil, err
	}
	return ChangePasswordSucceeded{ChangedAt: h.now().UTC()}, nil
}
