package elicit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Action
		wantErr bool
	}{
		{name: "empty defaults to accept", input: "", want: ActionAccept},
		{name: "accept", input: "accept", want: ActionAccept},
		{name: "decline", input: "decline", want: ActionDecline},
		{name: "cancel", input: "cancel", want: ActionCancel},
		{name: "unknown", input: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAction(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStaticElicit(t *testing.T) {
	t.Parallel()

	prefs := map[string]any{"target_platform": "twitter"}
	s := NewStatic(ActionAccept, prefs)

	out, err := s.Elicit(context.Background(), Request{Message: "preferences?"})
	require.NoError(t, err)
	assert.Equal(t, ActionAccept, out.Action)
	assert.Equal(t, prefs, out.Preferences)
}
