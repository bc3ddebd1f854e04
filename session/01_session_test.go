// /home/krylon/go/src/github.com/blicero/ariadne/session/01_session_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 05. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-03 22:49:18 krylon>

package session

import (
	"testing"
	"time"

	"github.com/blicero/ariadne/coordinator"
	"github.com/blicero/ariadne/datasource"
	"github.com/blicero/ariadne/objects/permission"
	"github.com/blicero/ariadne/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "user-001"

var (
	s   *Session
	mem *reminder.MemoryNotifier
)

func TestSessionCreate(t *testing.T) {
	var (
		err error
		fix *datasource.Fixture
	)

	if fix, err = datasource.NewFixture(testOwner, true); err != nil {
		t.Fatalf("Cannot create Fixture: %s", err.Error())
	}

	mem = reminder.NewMemoryNotifier(permission.Granted)

	if s, err = New(fix, mem, testOwner, time.Hour); err != nil {
		s = nil
		t.Fatalf("Cannot create Session: %s", err.Error())
	}
} // func TestSessionCreate(t *testing.T)

func TestSessionListing(t *testing.T) {
	if s == nil {
		t.SkipNow()
	}

	var res, err = s.Tasks(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)

	var deleted, derr = s.Deleted()
	require.NoError(t, derr)
	assert.Equal(t, 1, deleted.Total)
} // func TestSessionListing(t *testing.T)

func TestSessionMutations(t *testing.T) {
	if s == nil {
		t.SkipNow()
	}

	var task, err = s.SubmitCreate(&coordinator.TaskForm{
		Title: "Sharpen the axe",
		Tags:  "garden",
	})
	require.NoError(t, err)
	require.NotNil(t, task)

	var res, _ = s.Tasks(nil)
	assert.Equal(t, 5, res.Total)

	require.NoError(t, s.Toggle(task))
	assert.Equal(t, "", s.ItemError(task.ID))

	require.NoError(t, s.Delete(task.ID, "Axe broke beyond repair"))

	res, _ = s.Tasks(nil)
	assert.Equal(t, 4, res.Total)

	require.NoError(t, s.Restore(task.ID))

	res, _ = s.Tasks(nil)
	assert.Equal(t, 5, res.Total)
} // func TestSessionMutations(t *testing.T)

func TestSessionReminders(t *testing.T) {
	if s == nil {
		t.SkipNow()
	}

	require.Equal(t, permission.Granted, s.RequestPermission())
	require.NoError(t, s.StartReminders())
	defer s.StopReminders()

	// The seed data has one uncompleted task due today, which shows
	// up both as a desktop alert and as a toast.
	assert.Equal(t, 1, mem.Count())

	var seen bool
	for _, toast := range s.Toasts() {
		if toast.Message == "1 due today" {
			seen = true
		}
	}
	assert.True(t, seen, "expected a '1 due today' toast")
} // func TestSessionReminders(t *testing.T)

func TestSessionClose(t *testing.T) {
	if s == nil {
		t.SkipNow()
	}

	s.Close()
	assert.Len(t, s.Toasts(), 0)
} // func TestSessionClose(t *testing.T)
