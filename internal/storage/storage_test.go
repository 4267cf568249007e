package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"hwservices/internal/manager"
	"hwservices/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) *SQLStorage {
	t.Helper()
	s, err := NewSQLStorage(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func backends(t *testing.T) map[string]manager.Storage {
	return map[string]manager.Storage{
		"memory": NewMemoryStorage(),
		"sqlite": newSQLite(t),
	}
}

func TestStorageContract(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.CreateTask(ctx, "X", "Y")
			require.NoError(t, err)
			assert.Equal(t, 1, id)

			got, err := s.GetTask(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, models.Task{ID: 1, Title: "X", Description: "Y", Status: false}, *got)

			require.NoError(t, s.UpdateTask(ctx, id, "X2", "Y2"))
			got, err = s.GetTask(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "X2", got.Title)
			assert.Equal(t, "Y2", got.Description)

			// обновление несуществующей строки не ошибка
			require.NoError(t, s.UpdateTask(ctx, 999, "a", "b"))

			deleted, err := s.DeleteTask(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "X2", deleted.Title)

			_, err = s.GetTask(ctx, id)
			assert.ErrorIs(t, err, manager.ErrNotFound)

			_, err = s.DeleteTask(ctx, id)
			assert.ErrorIs(t, err, manager.ErrNotFound)
		})
	}
}

func TestStorageInsertTasks(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.InsertTasks(ctx, manager.DefaultTasks()))
			require.NoError(t, s.InsertTasks(ctx, manager.DefaultTasks()))
			require.NoError(t, s.InsertTasks(ctx, nil))

			tasks, err := s.ListTasks(ctx)
			require.NoError(t, err)
			require.Len(t, tasks, 6)

			assert.Equal(t, "Питон", tasks[1].Title)
			assert.True(t, tasks[1].Status)
			assert.False(t, tasks[0].Status)
		})
	}
}

func TestStorageIDsNotReused(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			first, err := s.CreateTask(ctx, "a", "a")
			require.NoError(t, err)
			second, err := s.CreateTask(ctx, "b", "b")
			require.NoError(t, err)

			_, err = s.DeleteTask(ctx, second)
			require.NoError(t, err)

			third, err := s.CreateTask(ctx, "c", "c")
			require.NoError(t, err)
			assert.Greater(t, third, second)
			assert.Greater(t, second, first)
		})
	}
}

func TestListEmpty(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			tasks, err := s.ListTasks(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, tasks)
			assert.Empty(t, tasks)
		})
	}
}

func TestMigrateIdempotent(t *testing.T) {
	s := newSQLite(t)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Migrate(context.Background()))
}

func TestRebind(t *testing.T) {
	pg := &SQLStorage{driver: DriverPostgres}
	assert.Equal(t, "UPDATE tasks SET title = $1 WHERE id = $2", pg.rebind("UPDATE tasks SET title = ? WHERE id = ?"))

	lite := &SQLStorage{driver: DriverSQLite}
	assert.Equal(t, "SELECT ? ", lite.rebind("SELECT ? "))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, DriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, s)

	s, err = Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &SQLStorage{}, s)

	_, err = Open(ctx, "oracle", "x")
	assert.Error(t, err)
}

func TestSQLiteConcurrentCreate(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	const workers = 50
	ids := make(chan int, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.CreateTask(ctx, "t", "d")
			if err != nil {
				errs <- err
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Errorf("CreateTask: %v", err)
	}
	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d выдан дважды", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
