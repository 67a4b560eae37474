package confirm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotup-sh/dotup/pkg/ui/confirm"
)

func TestConsoleConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "yes", input: "y\n", defaultYes: false, want: true},
		{name: "yes_word", input: "yes\n", defaultYes: false, want: true},
		{name: "no", input: "n\n", defaultYes: true, want: false},
		{name: "empty_takes_default_no", input: "\n", defaultYes: false, want: false},
		{name: "empty_takes_default_yes", input: "\n", defaultYes: true, want: true},
		{name: "uppercase", input: "Y\n", defaultYes: false, want: true},
		{name: "garbage_is_no", input: "maybe\n", defaultYes: true, want: false},
		{name: "eof_takes_default", input: "", defaultYes: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			prompter := confirm.NewConsoleWith(strings.NewReader(tt.input), &out)

			got, err := prompter.Confirm("Proceed", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Proceed")
		})
	}
}

func TestConsolePromptMarker(t *testing.T) {
	var out bytes.Buffer
	prompter := confirm.NewConsoleWith(strings.NewReader("\n"), &out)
	_, err := prompter.Confirm("Install waybar", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")
}

func TestAssumePrompters(t *testing.T) {
	yes, err := confirm.AssumeYes{}.Confirm("anything", false)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := confirm.AssumeNo{}.Confirm("anything", true)
	require.NoError(t, err)
	assert.False(t, no)
}
