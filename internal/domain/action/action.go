package action

import (
	"encoding/json"
	"fmt"
)

// Name is the base name of an operation, e.g. CREATE_SAMPLE.
type Name string

// Phase marks where an action sits in a request round trip.
type Phase int

const (
	// PhaseLocal actions carry no round trip: push events, CLEAR_ERROR, pending flags.
	PhaseLocal Phase = iota
	PhaseRequested
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) suffix() string {
	switch p {
	case PhaseRequested:
		return "_REQUESTED"
	case PhaseSucceeded:
		return "_SUCCEEDED"
	case PhaseFailed:
		return "_FAILED"
	default:
		return ""
	}
}

// Type is the kind tag of an action.
type Type struct {
	Name  Name
	Phase Phase
}

func (t Type) String() string {
	return string(t.Name) + t.Phase.suffix()
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Triple holds the three types of one asynchronous operation.
type Triple struct {
	Name      Name
	Requested Type
	Succeeded Type
	Failed    Type
}

func NewTriple(name Name) Triple {
	return Triple{
		Name:      name,
		Requested: Type{Name: name, Phase: PhaseRequested},
		Succeeded: Type{Name: name, Phase: PhaseSucceeded},
		Failed:    Type{Name: name, Phase: PhaseFailed},
	}
}

// LocalType returns the type of an action that has no round trip.
func LocalType(name Name) Type {
	return Type{Name: name, Phase: PhaseLocal}
}

// Action is a tagged message describing an intended or completed state change.
type Action interface {
	Type() Type
}

// Failure is the payload of a failed round trip.
type Failure struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (f Failure) String() string {
	return fmt.Sprintf("%d: %s", f.Status, f.Message)
}

// Failed is the terminal failure action shared by every domain.
type Failed struct {
	Op Name
	Failure
}

func (a Failed) Type() Type {
	return Type{Name: a.Op, Phase: PhaseFailed}
}

// ErrorKey derives the error state key of an operation.
func ErrorKey(name Name) string {
	return string(name) + "_ERROR"
}
