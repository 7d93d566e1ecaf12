package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantCmd  string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "bare name",
			input:    "mock_temp",
			wantCmd:  "mock_temp",
			wantArgs: []string{},
		},
		{
			name:     "quoted arguments",
			input:    `git commit -m "initial commit"`,
			wantCmd:  "git",
			wantArgs: []string{"commit", "-m", "initial commit"},
		},
		{
			name:     "nothing expanded",
			input:    `mock_temp --verbose 'a b' '$HOME' "~"`,
			wantCmd:  "mock_temp",
			wantArgs: []string{"--verbose", "a b", "$HOME", "~"},
		},
		{
			name:    "empty",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			input:   `echo "oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := ParseCommand(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCmd, cmd.Cmd)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestParseCommand_EmptyIsTyped(t *testing.T) {
	t.Parallel()

	_, err := ParseCommand("")
	require.ErrorIs(t, err, ErrEmptyCommand)
}

func TestCommand_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mock_temp", NewCommand("mock_temp").String())
	assert.Equal(t, "echo 'a b' c", NewCommand("echo", "a b", "c").String())

	t.Run("parses back", func(t *testing.T) {
		t.Parallel()

		cmd := NewCommand("mock_temp", "--unit", "deg C", "it's", "$HOME")

		parsed, err := ParseCommand(cmd.String())
		require.NoError(t, err)
		assert.Equal(t, cmd.Cmd, parsed.Cmd)
		assert.Equal(t, cmd.Args, parsed.Args)
	})
}

func TestCommand_Validate(t *testing.T) {
	t.Parallel()

	var nilCmd *Command

	require.ErrorIs(t, nilCmd.Validate(), ErrNilCommand)
	require.ErrorIs(t, NewCommand("  ").Validate(), ErrEmptyCommand)
	require.NoError(t, NewCommand("true").Validate())
}

func TestResult_Success(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Result{}).Success())
	assert.False(t, (&Result{ExitCode: 2}).Success())
	assert.False(t, (&Result{Error: assert.AnError}).Success())
}
