// Package apierror keeps the user-facing errors of form submissions and
// hands every other failure to the error reporter.
package apierror

import (
	"maps"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

const ClearErrorName action.Name = "CLEAR_ERROR"

// ClearError resets one error key, typically when a form is closed.
type ClearError struct {
	Key string `json:"key"`
}

func (ClearError) Type() action.Type { return action.LocalType(ClearErrorName) }

// State maps error keys to the last failure. A nil value is a cleared key.
type State map[string]*action.Failure

var userFacing = map[action.Name]struct{}{
	"CREATE_SAMPLE":           {},
	"UPDATE_SAMPLE":           {},
	"CREATE_INDEX":            {},
	"CREATE_SUBTRACTION":      {},
	"EDIT_REFERENCE":          {},
	"UPDATE_ACCOUNT":          {},
	"CHANGE_ACCOUNT_PASSWORD": {},
	"CREATE_USER":             {},
	"EDIT_USER":               {},
	"CREATE_GROUP":            {},
}

// UserFacing reports whether failures of op are shown to the user.
func UserFacing(op action.Name) bool {
	_, ok := userFacing[op]
	return ok
}

func Reduce(state State, a action.Action) State {
	if c, ok := a.(ClearError); ok {
		if v, ok := state[c.Key]; ok && v == nil {
			return state
		}
		return with(state, c.Key, nil)
	}

	t := a.Type()

	switch t.Phase {
	case action.PhaseRequested:
		key := action.ErrorKey(t.Name)
		if state[key] == nil {
			return state
		}
		return with(state, key, nil)

	case action.PhaseFailed:
		f, ok := a.(action.Failed)
		if !ok || !UserFacing(t.Name) {
			return state
		}
		failure := f.Failure
		return with(state, action.ErrorKey(t.Name), &failure)
	}

	return state
}

func with(state State, key string, v *action.Failure) State {
	next := make(State, len(state)+1)
	maps.Copy(next, state)
	next[key] = v
	return next
}

// Forwarder passes failures that are not user-facing to report. It runs
// as a store observer so the reducer stays free of side effects.
type Forwarder struct {
	report func(action.Failed)
}

func NewForwarder(report func(action.Failed)) *Forwarder {
	return &Forwarder{report: report}
}

func (f *Forwarder) Observe(a action.Action) {
	failed, ok := a.(action.Failed)
	if !ok || UserFacing(failed.Op) {
		return
	}
	f.report(failed)
}
