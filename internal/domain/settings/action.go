package settings

import "github.com/OfficialArms/virtool/internal/domain/action"

const WSUpdateSettings action.Name = "WS_UPDATE_SETTINGS"

var (
	GetSettings         = action.NewTriple("GET_SETTINGS")
	UpdateSettings      = action.NewTriple("UPDATE_SETTINGS")
	GetControlReadahead = action.NewTriple("GET_CONTROL_READAHEAD")
)

type Action interface {
	action.Action
	settings()
}

type GetRequested struct{}

type GetSucceeded struct {
	Data Settings `json:"data"`
}

type UpdateRequested struct {
	Update Update `json:"update"`
}

type UpdateSucceeded struct {
	Data Settings `json:"data"`
}

// ReadaheadRequested looks up OTU names of a reference for the internal
// control picker.
type ReadaheadRequested struct {
	RefID string `json:"ref_id"`
	Term  string `json:"term"`
}

type ReadaheadSucceeded struct {
	Data []OTUName `json:"data"`
}

type WSUpdate struct {
	Data Update `json:"data"`
}

func (GetRequested) Type() action.Type       { return GetSettings.Requested }
func (GetSucceeded) Type() action.Type       { return GetSettings.Succeeded }
func (UpdateRequested) Type() action.Type    { return UpdateSettings.Requested }
func (UpdateSucceeded) Type() action.Type    { return UpdateSettings.Succeeded }
func (ReadaheadRequested) Type() action.Type { return GetControlReadahead.Requested }
func (ReadaheadSucceeded) Type() action.Type { return GetControlReadahead.Succeeded }
func (WSUpdate) Type() action.Type           { return action.LocalType(WSUpdateSettings) }

func (GetRequested) settings()       {}
func (GetSucceeded) settings()       {}
func (UpdateRequested) settings()    {}
func (UpdateSucceeded) settings()    {}
func (ReadaheadRequested) settings() {}
func (ReadaheadSucceeded) settings() {}
func (WSUpdate) settings()           {}
