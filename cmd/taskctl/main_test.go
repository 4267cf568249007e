package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"hwservices/internal/manager"
	"hwservices/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommands(t *testing.T) {
	tm := manager.NewTaskManager(storage.NewMemoryStorage())
	ctx := context.Background()
	var out bytes.Buffer

	exec := func(args ...string) string {
		t.Helper()
		out.Reset()
		require.NoError(t, run(ctx, tm, args, &out))
		return out.String()
	}

	assert.Equal(t, "No tasks found\n", exec("list"))
	assert.Equal(t, "БД заполнена данными\n", exec("fill"))
	assert.Equal(t, "Added task with ID 4\n", exec("add", "--title=X", "--desc=Y"))
	assert.Equal(t, "2: Питон - Выучить Питон [Done]\n", exec("get", "--id=2"))
	assert.Equal(t, "Task 4 updated\n", exec("update", "--id=4", "--title=X2", "--desc=Y2"))
	assert.Equal(t, "4: X2 - Y2 [Pending]\n", exec("get", "--id=4"))
	assert.Equal(t, "Task 4 deleted\n", exec("delete", "--id=4"))
	assert.Contains(t, exec("list"), "3: FastAPI - Выучить FastAPI [Pending]")
}

func TestRunErrors(t *testing.T) {
	tm := manager.NewTaskManager(storage.NewMemoryStorage())
	ctx := context.Background()
	var out bytes.Buffer

	err := run(ctx, tm, []string{"frobnicate"}, &out)
	assert.True(t, errors.Is(err, errUsage))

	err = run(ctx, tm, []string{"delete"}, &out)
	assert.True(t, errors.Is(err, errUsage))

	err = run(ctx, tm, []string{"delete", "--id=9"}, &out)
	assert.True(t, errors.Is(err, manager.ErrNotFound))

	err = run(ctx, tm, []string{"get", "--id=nope"}, &out)
	assert.True(t, errors.Is(err, errUsage))
}

func TestRunMissingFieldsRejected(t *testing.T) {
	tm := manager.NewTaskManager(storage.NewMemoryStorage())
	ctx := context.Background()
	var out bytes.Buffer

	var verr *manager.ValidationError
	assert.ErrorAs(t, run(ctx, tm, []string{"add"}, &out), &verr)
	assert.ErrorAs(t, run(ctx, tm, []string{"add", "--title=X"}, &out), &verr)
	assert.Equal(t, "description", verr.Field)

	require.NoError(t, run(ctx, tm, []string{"add", "--title=X", "--desc=сохранить"}, &out))
	assert.ErrorAs(t, run(ctx, tm, []string{"update", "--id=1", "--title=New"}, &out), &verr)

	task, err := tm.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "X", task.Title)
	assert.Equal(t, "сохранить", task.Description)

	// явно переданная пустая строка допустима, как и в HTTP
	require.NoError(t, run(ctx, tm, []string{"update", "--id=1", "--title=New", "--desc="}, &out))
	task, err = tm.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "", task.Description)

	tasks, err := tm.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestRealMainWithoutArgs(t *testing.T) {
	assert.Equal(t, 1, realMain(nil))
}
