package push

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/OfficialArms/virtool/internal/domain/action"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thing struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (t thing) GetID() string { return t.ID }

type inserted struct{ Thing thing }

func (inserted) Type() action.Type { return action.LocalType("WS_INSERT_THING") }

type removed struct{ ID string }

func (removed) Type() action.Type { return action.LocalType("WS_REMOVE_THING") }

var constructors = Constructors[thing, thing]{
	Insert: func(t thing) action.Action { return inserted{Thing: t} },
	Remove: func(id string) action.Action { return removed{ID: id} },
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		data     string
		expected []action.Action
		wantErr  error
	}{
		{
			name:     "insert",
			op:       Insert,
			data:     `{"id":"a","name":"one"}`,
			expected: []action.Action{inserted{Thing: thing{ID: "a", Name: "one"}}},
		},
		{
			name: "update ignored when no constructor",
			op:   Update,
			data: `{"id":"a"}`,
		},
		{
			name:     "delete list",
			op:       Delete,
			data:     `["a","b"]`,
			expected: []action.Action{removed{ID: "a"}, removed{ID: "b"}},
		},
		{
			name:     "remove single id",
			op:       Remove,
			data:     `"xyz"`,
			expected: []action.Action{removed{ID: "xyz"}},
		},
		{
			name:     "delete record",
			op:       Delete,
			data:     `{"id":"q"}`,
			expected: []action.Action{removed{ID: "q"}},
		},
		{
			name:    "insert without id",
			op:      Insert,
			data:    `{"name":"anon"}`,
			wantErr: ErrBadData,
		},
		{
			name:    "unknown operation",
			op:      "explode",
			data:    `{}`,
			wantErr: ErrUnknownOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(constructors, tt.op, json.RawMessage(tt.data))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
