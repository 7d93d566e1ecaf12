package fakeexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpec_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    Spec
		wantErr error
	}{
		{name: "minimal", spec: Spec{Name: "tool"}},
		{name: "max exit code", spec: Spec{Name: "tool", ExitCode: 255}},
		{name: "dotted name", spec: Spec{Name: "tool.sh"}},
		{name: "empty name", spec: Spec{}, wantErr: ErrInvalidName},
		{name: "dot", spec: Spec{Name: "."}, wantErr: ErrInvalidName},
		{name: "dot dot", spec: Spec{Name: ".."}, wantErr: ErrInvalidName},
		{name: "separator", spec: Spec{Name: "bin/tool"}, wantErr: ErrInvalidName},
		{name: "nul", spec: Spec{Name: "to\x00ol"}, wantErr: ErrInvalidName},
		{name: "negative exit code", spec: Spec{Name: "tool", ExitCode: -1}, wantErr: ErrExitCodeOutOfRange},
		{name: "exit code 256", spec: Spec{Name: "tool", ExitCode: 256}, wantErr: ErrExitCodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.spec.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
