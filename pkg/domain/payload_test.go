package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDoorCycle(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    DoorCycle
	}{
		{
			name:    "nil payload",
			payload: nil,
			want:    DoorCycle{},
		},
		{
			name:    "both keys present",
			payload: map[string]any{"passengers_entered": 3, "passengers_exited": 1},
			want:    DoorCycle{Entered: 3, Exited: 1},
		},
		{
			name:    "missing exited defaults to zero",
			payload: map[string]any{"passengers_entered": 5},
			want:    DoorCycle{Entered: 5},
		},
		{
			name: "json numbers arrive as float64",
			payload: map[string]any{
				"passengers_entered": float64(4),
				"passengers_exited":  float64(2),
			},
			want: DoorCycle{Entered: 4, Exited: 2},
		},
		{
			name: "non-numeric value defaults, the other key survives",
			payload: map[string]any{
				"passengers_entered": "a few",
				"passengers_exited":  2,
			},
			want: DoorCycle{Exited: 2},
		},
		{
			name:    "negative counts default to zero",
			payload: map[string]any{"passengers_entered": -3, "passengers_exited": 1},
			want:    DoorCycle{Exited: 1},
		},
		{
			name:    "unrelated keys ignored",
			payload: map[string]any{"driver": "ada", "passengers_entered": 1},
			want:    DoorCycle{Entered: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeDoorCycle(tt.payload))
		})
	}
}

func TestDoorCycleDelta(t *testing.T) {
	assert.Equal(t, 2, DoorCycle{Entered: 3, Exited: 1}.Delta())
	assert.Equal(t, -4, DoorCycle{Entered: 0, Exited: 4}.Delta())
}

func TestParseEvent(t *testing.T) {
	for _, e := range Events() {
		parsed, err := ParseEvent(string(e))
		assert.NoError(t, err)
		assert.Equal(t, e, parsed)
	}

	_, err := ParseEvent("levitate")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}
