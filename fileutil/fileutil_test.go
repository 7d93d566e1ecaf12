package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageTemp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("Temperature: 30 Celsius\n")},
		{name: "empty", data: []byte{}},
		{name: "binary", data: []byte{0x00, 0xff, 0x1b, '\n', 0x80, 0x00}},
		{name: "large", data: make([]byte, 4<<20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()

			path, err := StageTemp(dir, "stage-*", tt.data)
			require.NoError(t, err)
			assert.Equal(t, dir, filepath.Dir(path))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), len(got))
			assert.Equal(t, tt.data, got)
		})
	}

	t.Run("unique names", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		a, err := StageTemp(dir, "stage-*", []byte("a"))
		require.NoError(t, err)

		b, err := StageTemp(dir, "stage-*", []byte("b"))
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := StageTemp(filepath.Join(t.TempDir(), "missing"), "stage-*", []byte("x"))
		require.Error(t, err)
	})
}

func TestCreateExclusive(t *testing.T) {
	t.Parallel()

	t.Run("creates with mode and content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "tool")

		require.NoError(t, CreateExclusive(path, []byte("#!/bin/sh\n"), 0o700))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "#!/bin/sh\n", string(got))

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "tool")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0o600))

		err := CreateExclusive(path, []byte("replacement"), 0o700)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrExist)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "original", string(got))
	})
}

func TestCheckWithin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		root      string
		target    string
		expectErr bool
	}{
		{
			name:      "Safe child",
			root:      "/tmp/safe",
			target:    "/tmp/safe/child",
			expectErr: false,
		},
		{
			name:      "Root itself",
			root:      "/tmp/safe",
			target:    "/tmp/safe",
			expectErr: false,
		},
		{
			name:      "Traversal attempt",
			root:      "/tmp/safe",
			target:    "/tmp/safe/../evil",
			expectErr: true,
		},
		{
			name:      "Root prefix but not child",
			root:      "/tmp/safe",
			target:    "/tmp/safe_suffix_is_not_child",
			expectErr: true,
		},
		{
			name:      "Relative paths unsafe",
			root:      "safe",
			target:    "safe/../evil",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := filepath.FromSlash(tt.root)
			target := filepath.FromSlash(tt.target)

			err := CheckWithin(root, target)
			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "illegal file path")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
