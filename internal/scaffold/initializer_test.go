package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/advent/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		setupFunc func(t *testing.T, dir string)
	}{
		{
			name:      "fresh initialization",
			setupFunc: func(t *testing.T, dir string) {},
		},
		{
			name:  "force replaces existing config and keeps inputs",
			force: true,
			setupFunc: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "advent.yml"), []byte("old content"), 0644))
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "data", "inputs"), 0755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "inputs", "01.txt"), []byte("100\n"), 0644))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setupFunc(t, dir)

			require.NoError(t, Initialize(dir, tt.force))

			cfg, err := config.Load(filepath.Join(dir, "advent.yml"))
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)
			assert.Contains(t, cfg.Expected, 1)

			for _, sub := range []string{"inputs", "examples"} {
				info, err := os.Stat(filepath.Join(dir, "data", sub))
				require.NoError(t, err)
				assert.True(t, info.IsDir())
			}

			if tt.force {
				data, err := os.ReadFile(filepath.Join(dir, "data", "inputs", "01.txt"))
				require.NoError(t, err)
				assert.Equal(t, "100\n", string(data))
			}
		})
	}
}

func TestCheckExisting(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckExisting(dir))

	require.NoError(t, Initialize(dir, false))
	err := CheckExisting(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestAddDay(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	created, err := AddDay(dataDir, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dataDir, "inputs", "04.txt"),
		filepath.Join(dataDir, "examples", "04.txt"),
	}, created)

	// existing files are kept
	require.NoError(t, os.WriteFile(created[0], []byte("keep"), 0644))
	created, err = AddDay(dataDir, 4)
	require.NoError(t, err)
	assert.Empty(t, created)

	data, err := os.ReadFile(filepath.Join(dataDir, "inputs", "04.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	_, err = AddDay(dataDir, 0)
	assert.Error(t, err)
}
