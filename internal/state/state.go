// Package state composes the domain slices into the single tree the store owns.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/OfficialArms/virtool/internal/domain/account"
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/apierror"
	"github.com/OfficialArms/virtool/internal/domain/group"
	"github.com/OfficialArms/virtool/internal/domain/index"
	"github.com/OfficialArms/virtool/internal/domain/job"
	"github.com/OfficialArms/virtool/internal/domain/pending"
	"github.com/OfficialArms/virtool/internal/domain/reference"
	"github.com/OfficialArms/virtool/internal/domain/sample"
	"github.com/OfficialArms/virtool/internal/domain/settings"
	"github.com/OfficialArms/virtool/internal/domain/subtraction"
	"github.com/OfficialArms/virtool/internal/domain/user"
)

var ErrUnknownSlice = errors.New("unknown state slice")

type Root struct {
	App          pending.State     `json:"app"`
	Samples      sample.State      `json:"samples"`
	Subtractions subtraction.State `json:"subtraction"`
	Indexes      index.State       `json:"indexes"`
	References   reference.State   `json:"references"`
	Jobs         job.State         `json:"jobs"`
	Users        user.State        `json:"users"`
	Groups       group.State       `json:"groups"`
	Settings     settings.State    `json:"settings"`
	Account      account.State     `json:"account"`
	Errors       apierror.State    `json:"errors"`
}

func Initial() Root {
	return Root{Errors: apierror.State{}}
}

// Reduce hands a to every slice reducer. Slices that do not handle a come
// back unchanged.
func Reduce(r Root, a action.Action) Root {
	r.App = pending.Reduce(r.App, a)
	r.Samples = sample.Reduce(r.Samples, a)
	r.Subtractions = subtraction.Reduce(r.Subtractions, a)
	r.Indexes = index.Reduce(r.Indexes, a)
	r.References = reference.Reduce(r.References, a)
	r.Jobs = job.Reduce(r.Jobs, a)
	r.Users = user.Reduce(r.Users, a)
	r.Groups = group.Reduce(r.Groups, a)
	r.Settings = settings.Reduce(r.Settings, a)
	r.Account = account.Reduce(r.Account, a)
	r.Errors = apierror.Reduce(r.Errors, a)
	return r
}

// Settle clears every marker of an in-flight call. A restored tree has no
// calls in flight, so nothing would clear them otherwise.
func Settle(r Root) Root {
	r.App = pending.State{}
	r.Samples = r.Samples.Settle()
	r.References = r.References.Settle()
	r.Groups = r.Groups.Settle()
	r.Settings = r.Settings.Settle()
	return r
}

func (r *Root) slices() map[string]any {
	return map[string]any{
		"app":         &r.App,
		"samples":     &r.Samples,
		"subtraction": &r.Subtractions,
		"indexes":     &r.Indexes,
		"references":  &r.References,
		"jobs":        &r.Jobs,
		"users":       &r.Users,
		"groups":      &r.Groups,
		"settings":    &r.Settings,
		"account":     &r.Account,
		"errors":      &r.Errors,
	}
}

// SliceNames lists the top-level keys of the tree in lexical order.
func SliceNames() []string {
	var r Root
	names := make([]string, 0, 11)
	for name := range r.slices() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Slice returns one top-level slice of r.
func Slice(r Root, name string) (any, error) {
	v, ok := r.slices()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlice, name)
	}
	return v, nil
}

// Restore decodes a persisted slice into r.
func Restore(r *Root, name string, data []byte) error {
	v, ok := r.slices()[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSlice, name)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("restore %s: %w", name, err)
	}
	return nil
}
