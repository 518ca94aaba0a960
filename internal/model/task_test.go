package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Priority
		wantErr bool
	}{
		{name: "low", in: "low", want: PriorityLow},
		{name: "medium", in: "medium", want: PriorityMedium},
		{name: "high mixed case", in: " High ", want: PriorityHigh},
		{name: "empty defaults to low", in: "", want: PriorityLow},
		{name: "unknown", in: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTask_JSONKeys(t *testing.T) {
	task := Task{ID: 1, Title: "Buy milk", Priority: PriorityLow}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"id":1,"title":"Buy milk","desc":"","date":"","priority":"low","completed":false}`,
		string(data))
}
