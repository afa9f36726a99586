package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore(t *testing.T) {
	t.Run("missing file yields zero config", func(t *testing.T) {
		s, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		cfg, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		s, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		want := Config{
			DataDir:  "/tmp/tripdeck-data",
			TripFile: "/tmp/trip.json",
			Verbose:  true,
		}
		require.NoError(t, s.Save(want))

		got, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewConfigStore(dir)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("data_dir = ["), 0o600))

		_, err = s.Load()
		assert.Error(t, err)
	})

	t.Run("saved file has restricted permissions", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewConfigStore(dir)
		require.NoError(t, err)
		require.NoError(t, s.Save(Config{Verbose: true}))

		info, err := os.Stat(s.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})
}
