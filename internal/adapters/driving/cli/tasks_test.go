package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driven/storage/memory"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/services"
)

func setupTaskService(t *testing.T) *services.AnnotationStore {
	t.Helper()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set("tasks", []byte("[]")))
	store := services.NewAnnotationStore(kv)

	prev := taskService
	taskService = store
	t.Cleanup(func() { taskService = prev })
	return store
}

func TestTasksCmd_Use(t *testing.T) {
	assert.Equal(t, "tasks", tasksCmd.Use)
	assert.Equal(t, "add <text>", tasksAddCmd.Use)
	assert.Equal(t, "done <id-prefix>", tasksDoneCmd.Use)
	assert.Equal(t, "rm <id-prefix>", tasksRemoveCmd.Use)
}

func TestTasksAddCmd_HasLegFlag(t *testing.T) {
	flag := tasksAddCmd.Flags().Lookup("leg")
	require.NotNil(t, flag, "leg flag should exist")
}

func TestResolveTaskID(t *testing.T) {
	store := setupTaskService(t)

	first, err := store.AddTask("Book dinner in Torino", "torino")
	require.NoError(t, err)
	_, err = store.AddTask("Download tickets", "outbound")
	require.NoError(t, err)

	t.Run("unique prefix resolves", func(t *testing.T) {
		id, err := resolveTaskID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, id)
	})

	t.Run("unknown prefix is not found", func(t *testing.T) {
		_, err := resolveTaskID("zzzzzzzz")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("ambiguous prefix errors", func(t *testing.T) {
		_, err := resolveTaskID("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ambiguous")
	})
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abcd1234", shortID("abcd1234-eeee-ffff"))
	assert.Equal(t, "short", shortID("short"))
}
