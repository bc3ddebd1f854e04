// /home/krylon/go/src/github.com/blicero/ariadne/coordinator/02_coordinator_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-03 18:02:56 krylon>

package coordinator

import (
	"errors"
	"testing"

	"github.com/blicero/ariadne/cache"
	"github.com/blicero/ariadne/datasource"
	"github.com/blicero/ariadne/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "user-001"

var errScripted = errors.New("scripted failure")

// flakySource wraps a Source so individual operations can be made to
// fail on demand, and counts how often deletes reach the source.
type flakySource struct {
	datasource.Source
	failToggle  bool
	deleteCalls int
}

func (f *flakySource) ToggleComplete(owner, id string) (*objects.Task, error) {
	if f.failToggle {
		return nil, errScripted
	}
	return f.Source.ToggleComplete(owner, id)
} // func (f *flakySource) ToggleComplete(owner, id string)

func (f *flakySource) DeleteTask(owner, id, reason string) error {
	f.deleteCalls++
	return f.Source.DeleteTask(owner, id, reason)
} // func (f *flakySource) DeleteTask(owner, id, reason string)

var (
	src *flakySource
	tc  *cache.Cache
	co  *Coordinator
)

func TestCoordinatorCreate(t *testing.T) {
	var (
		err error
		fix *datasource.Fixture
	)

	if fix, err = datasource.NewFixture(testOwner, true); err != nil {
		t.Fatalf("Cannot create Fixture: %s", err.Error())
	}

	src = &flakySource{Source: fix}

	if tc, err = cache.New(src, testOwner); err != nil {
		t.Fatalf("Cannot create Cache: %s", err.Error())
	} else if co, err = New(src, tc, testOwner); err != nil {
		co = nil
		t.Fatalf("Cannot create Coordinator: %s", err.Error())
	}
} // func TestCoordinatorCreate(t *testing.T)

func taskByID(t *testing.T, id string) *objects.Task {
	t.Helper()

	var res, err = tc.Tasks(nil)
	require.NoError(t, err)

	for idx := range res.Tasks {
		if res.Tasks[idx].ID == id {
			return &res.Tasks[idx]
		}
	}

	t.Fatalf("Task %s not found in listing", id)
	return nil
} // func taskByID(t *testing.T, id string) *objects.Task

func TestToggleSuccess(t *testing.T) {
	if co == nil {
		t.SkipNow()
	}

	var task = taskByID(t, "task-4")
	require.False(t, task.Completed)

	var err = co.ToggleComplete(task)
	require.NoError(t, err)

	// The overlay is gone, and the refreshed listing agrees with the
	// state the overlay showed.
	assert.Nil(t, co.Pending("task-4"))
	assert.Equal(t, "", co.ItemError("task-4"))

	task = taskByID(t, "task-4")
	assert.True(t, task.Completed)
	assert.True(t, co.OptimisticCompleted(task))
} // func TestToggleSuccess(t *testing.T)

func TestToggleFailure(t *testing.T) {
	if co == nil {
		t.SkipNow()
	}

	var before = taskByID(t, "task-1")
	require.False(t, before.Completed)

	src.failToggle = true
	defer func() { src.failToggle = false }()

	var err = co.ToggleComplete(before)
	require.ErrorIs(t, err, errScripted)

	// The overlay must not linger after a failed mutation, and the
	// display converges back to the confirmed state.
	assert.Nil(t, co.Pending("task-1"))
	assert.Equal(t, errScripted.Error(), co.ItemError("task-1"))

	var after = taskByID(t, "task-1")
	assert.False(t, after.Completed)
	assert.False(t, co.OptimisticCompleted(after))
} // func TestToggleFailure(t *testing.T)

func TestToggleErrorCleared(t *testing.T) {
	if co == nil {
		t.SkipNow()
	}

	require.NotEqual(t, "", co.ItemError("task-1"))

	var task = taskByID(t, "task-1")
	var err = co.ToggleComplete(task)
	require.NoError(t, err)

	// A later successful mutation clears the stale error.
	assert.Equal(t, "", co.ItemError("task-1"))

	// Flip it back so the other tests see the seed state.
	task = taskByID(t, "task-1")
	require.NoError(t, co.ToggleComplete(task))
} // func TestToggleErrorCleared(t *testing.T)

func TestDeleteNeedsReason(t *testing.T) {
	if co == nil {
		t.SkipNow()
	}

	var err = co.Delete("task-1", "   ")
	assert.ErrorIs(t, err, ErrNoReason)
	// The request never reached the data source.
	assert.Equal(t, 0, src.deleteCalls)
} // func TestDeleteNeedsReason(t *testing.T)

func TestDeleteAndRestore(t *testing.T) {
	if co == nil {
		t.SkipNow()
	}

	var err = co.Delete("task-1", "Project was shelved")
	require.NoError(t, err)
	assert.Equal(t, 1, src.deleteCalls)

	// The task moved from the active listing to the deleted one.
	var active, _ = tc.Tasks(nil)
	assert.Equal(t, 3, active.Total)

	var deleted *objects.DeletedTaskListResponse
	deleted, err = tc.Deleted()
	require.NoError(t, err)
	assert.Equal(t, 2, deleted.Total)

	err = co.Restore("task-1")
	require.NoError(t, err)

	active, _ = tc.Tasks(nil)
	assert.Equal(t, 4, active.Total)

	deleted, err = tc.Deleted()
	require.NoError(t, err)
	assert.Equal(t, 1, deleted.Total)
} // func TestDeleteAndRestore(t *testing.T)

func TestSubmitCreate(t *testing.T) {
	if co == nil {
		t.SkipNow()
	}

	var _, err = co.SubmitCreate(&TaskForm{Title: "  "})
	assert.ErrorIs(t, err, ErrNoTitle)

	var task *objects.Task
	task, err = co.SubmitCreate(&TaskForm{
		Title:    "Call the dentist",
		Priority: "high",
		DueDate:  "2031-01-15",
		DueTime:  "09:30",
	})
	require.NoError(t, err)
	require.NotNil(t, task)

	var res, _ = tc.Tasks(nil)
	assert.Equal(t, 5, res.Total)
} // func TestSubmitCreate(t *testing.T)

func TestSubmitEdit(t *testing.T) {
	if co == nil {
		t.SkipNow()
	}

	var task, err = co.SubmitEdit("task-3", &TaskForm{
		Title:    "Buy groceries and beer",
		Priority: "medium",
		Tags:     "personal, errands",
	})
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries and beer", task.Title)
	assert.Equal(t, []string{"personal", "errands"}, task.Tags)
	// The form had no due date, so the existing one is gone.
	assert.Nil(t, task.Due)
} // func TestSubmitEdit(t *testing.T)
