// /home/krylon/go/src/github.com/blicero/ariadne/datasource/01_fixture_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-02 21:58:36 krylon>

package datasource

import (
	"testing"
	"time"

	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "user-001"

var fix *Fixture

func TestFixtureCreate(t *testing.T) {
	var err error

	if fix, err = NewFixture(testOwner, true); err != nil {
		fix = nil
		t.Fatalf("Cannot create Fixture: %s", err.Error())
	}
} // func TestFixtureCreate(t *testing.T)

func TestFixtureList(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	var (
		err error
		res *objects.TaskListResponse
	)

	res, err = fix.ListTasks(testOwner, nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	// The seed data has four active tasks; the overdue one is
	// completed, so it does not count, while the one due right now
	// does.
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 0, res.OverdueCount)
	assert.Equal(t, 1, res.DueTodayCount)
} // func TestFixtureList(t *testing.T)

func TestFixtureListFiltered(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	var (
		err error
		res *objects.TaskListResponse
		f   = &objects.Filters{Tag: "work"}
	)

	res, err = fix.ListTasks(testOwner, f)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)

	var cmp = false
	f = &objects.Filters{Completed: &cmp, Search: "BUG"}

	res, err = fix.ListTasks(testOwner, f)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Urgent bug fix", res.Tasks[0].Title)
} // func TestFixtureListFiltered(t *testing.T)

func TestFixtureListWrongOwner(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	var res, err = fix.ListTasks("somebody-else", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
} // func TestFixtureListWrongOwner(t *testing.T)

func TestFixtureToggle(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	var upd, err = fix.ToggleComplete(testOwner, "task-4")
	require.NoError(t, err)
	assert.True(t, upd.Completed)

	upd, err = fix.ToggleComplete(testOwner, "task-4")
	require.NoError(t, err)
	assert.False(t, upd.Completed)

	_, err = fix.ToggleComplete(testOwner, "no-such-task")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = fix.ToggleComplete("somebody-else", "task-4")
	assert.ErrorIs(t, err, ErrUnauthorized)
} // func TestFixtureToggle(t *testing.T)

func TestFixtureUpdate(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	var desc = "Fix the critical crash on the payment page. ETA tomorrow."

	var upd, err = fix.UpdateTask(testOwner, "task-4", &objects.TaskUpdate{
		Title:       "Urgent bug fix",
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, desc, upd.Description)
	// Untouched fields keep their values.
	assert.Equal(t, []string{"work", "bug"}, upd.Tags)
	assert.NotNil(t, upd.Due)

	_, err = fix.UpdateTask(testOwner, "task-4", &objects.TaskUpdate{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalid)
} // func TestFixtureUpdate(t *testing.T)

func TestFixtureClearDue(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	var upd, err = fix.UpdateTask(testOwner, "task-3", &objects.TaskUpdate{
		Title:    "Buy groceries",
		ClearDue: true,
	})
	require.NoError(t, err)
	assert.Nil(t, upd.Due)
} // func TestFixtureClearDue(t *testing.T)

func TestFixtureDeleteRestore(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	var err = fix.DeleteTask(testOwner, "task-1", "")
	assert.ErrorIs(t, err, ErrInvalid)

	err = fix.DeleteTask(testOwner, "task-1", "Project was shelved")
	require.NoError(t, err)

	var (
		active  *objects.TaskListResponse
		deleted *objects.DeletedTaskListResponse
	)

	active, err = fix.ListTasks(testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, active.Total)

	deleted, err = fix.ListDeletedTasks(testOwner)
	require.NoError(t, err)
	require.Equal(t, 2, deleted.Total)

	var upd *objects.Task
	upd, err = fix.RestoreTask(testOwner, "task-1")
	require.NoError(t, err)
	assert.Nil(t, upd.DeletedAt)
	assert.Equal(t, "", upd.DeletionReason)

	active, err = fix.ListTasks(testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, active.Total)
} // func TestFixtureDeleteRestore(t *testing.T)

func TestFixtureCreateTask(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	var _, err = fix.CreateTask(testOwner, &objects.TaskCreate{Title: " "})
	assert.ErrorIs(t, err, ErrInvalid)

	var task *objects.Task
	task, err = fix.CreateTask(testOwner, &objects.TaskCreate{
		Title: "Water the plants",
		Tags:  []string{"personal"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, testOwner, task.OwnerID)

	var res *objects.TaskListResponse
	res, err = fix.ListTasks(testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
} // func TestFixtureCreateTask(t *testing.T)

func TestFixtureToggleRecurring(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	var due = time.Now().AddDate(0, 0, -1)

	var task, err = fix.CreateTask(testOwner, &objects.TaskCreate{
		Title:      "Take out the trash",
		Recurrence: recurrence.Daily,
		Due:        &due,
	})
	require.NoError(t, err)

	var upd *objects.Task
	upd, err = fix.ToggleComplete(testOwner, task.ID)
	require.NoError(t, err)
	require.True(t, upd.Completed)

	// Completing the task spawned its next instance.
	var res *objects.TaskListResponse
	res, err = fix.ListTasks(testOwner, nil)
	require.NoError(t, err)

	var next *objects.Task
	for idx := range res.Tasks {
		if res.Tasks[idx].ParentID == task.ID {
			next = &res.Tasks[idx]
			break
		}
	}

	require.NotNil(t, next, "completing a recurring task must spawn a follow-up")
	assert.False(t, next.Completed)
	assert.Equal(t, task.Title, next.Title)
	require.NotNil(t, next.Due)
	assert.True(t, next.Due.Equal(due.AddDate(0, 0, 1)),
		"the follow-up is due one interval after the completed task")

	// Un-completing does not spawn another one.
	_, err = fix.ToggleComplete(testOwner, task.ID)
	require.NoError(t, err)

	res, err = fix.ListTasks(testOwner, nil)
	require.NoError(t, err)

	var children int
	for idx := range res.Tasks {
		if res.Tasks[idx].ParentID == task.ID {
			children++
		}
	}
	assert.Equal(t, 1, children)
} // func TestFixtureToggleRecurring(t *testing.T)

func TestFixtureMutateDeleted(t *testing.T) {
	if fix == nil {
		t.SkipNow()
	}

	// Soft-deleted tasks are invisible to update and toggle, only
	// restore may touch them.
	var _, err = fix.UpdateTask(testOwner, "task-deleted-1", &objects.TaskUpdate{
		Title: "Old recurring meeting",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = fix.ToggleComplete(testOwner, "task-deleted-1")
	assert.ErrorIs(t, err, ErrNotFound)

	var upd *objects.Task
	upd, err = fix.RestoreTask(testOwner, "task-deleted-1")
	require.NoError(t, err)
	assert.Nil(t, upd.DeletedAt)
} // func TestFixtureMutateDeleted(t *testing.T)
