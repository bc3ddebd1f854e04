// /home/krylon/go/src/github.com/blicero/ariadne/database/02_database_crud_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-01 20:22:47 krylon>

package database

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/priority"
)

const (
	itemCnt   = 32
	maxOffset = time.Hour * 168
)

var (
	owner *objects.User
	items []*objects.Task
)

func init() {
	items = make([]*objects.Task, itemCnt)

	var now = time.Now()

	for i := range items {
		var t = &objects.Task{
			Title: fmt.Sprintf("TEST #%03d", i),
			Description: fmt.Sprintf("This is just another test, the %dth one",
				i+1),
			Priority: priority.Priority(rand.Intn(3)),
		}

		if rand.Intn(100) >= 25 {
			var due = now.Add(time.Duration(rand.Int63n(int64(maxOffset))))
			t.Due = &due
		}

		items[i] = t
	}
}

func TestUserAdd(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	owner = &objects.User{
		Email:    "odysseus@ithaka.example",
		Password: "xyzzy", // In real life, this would be a bcrypt hash
	}

	var err error

	if err = db.UserAdd(owner); err != nil {
		owner = nil
		t.Fatalf("Cannot add User: %s", err.Error())
	} else if owner.ID == "" {
		t.Error("ID of User was not set")
	}
} // func TestUserAdd(t *testing.T)

func TestUserGetByEmail(t *testing.T) {
	if db == nil || owner == nil {
		t.SkipNow()
	}

	var (
		err error
		u   *objects.User
	)

	if u, err = db.UserGetByEmail(owner.Email); err != nil {
		t.Fatalf("Cannot look up User %s: %s",
			owner.Email,
			err.Error())
	} else if u == nil {
		t.Fatalf("User %s was not found", owner.Email)
	} else if u.ID != owner.ID {
		t.Errorf("Unexpected User ID: %s (expected %s)",
			u.ID,
			owner.ID)
	}
} // func TestUserGetByEmail(t *testing.T)

func TestTaskAdd(t *testing.T) {
	if db == nil || owner == nil {
		t.SkipNow()
	}

	for _, task := range items {
		var err error

		task.OwnerID = owner.ID

		if err = db.TaskAdd(task); err != nil {
			t.Fatalf("Cannot add Task %q: %s",
				task.Title,
				err.Error())
		} else if task.ID == "" {
			t.Errorf("ID of Task %q was not set", task.Title)
		}
	}
} // func TestTaskAdd(t *testing.T)

func TestTaskGetByOwner(t *testing.T) {
	if db == nil || owner == nil {
		t.SkipNow()
	}

	var (
		err   error
		tasks []objects.Task
	)

	if tasks, err = db.TaskGetByOwner(owner.ID); err != nil {
		t.Fatalf("Cannot fetch Tasks of User %s: %s",
			owner.ID,
			err.Error())
	} else if len(tasks) != len(items) {
		t.Fatalf("Unexpected number of Tasks: %d (expected %d)",
			len(tasks),
			len(items))
	}
} // func TestTaskGetByOwner(t *testing.T)

func TestTaskSetCompleted(t *testing.T) {
	if db == nil || owner == nil {
		t.SkipNow()
	}

	for _, task := range items {
		if rand.Intn(100) >= 50 {
			continue
		}

		var err error

		if err = db.TaskSetCompleted(task, true); err != nil {
			t.Errorf("Cannot mark Task %q as completed: %s",
				task.Title,
				err.Error())
		} else if !task.Completed {
			t.Errorf("Task %q should be marked as completed, but it is not",
				task.Title)
		}
	}
} // func TestTaskSetCompleted(t *testing.T)

func TestTaskUpdate(t *testing.T) {
	if db == nil || owner == nil {
		t.SkipNow()
	}

	var (
		err  error
		task = items[0]
		ref  *objects.Task
	)

	task.Title = "TEST #000 (edited)"
	task.Tags = []string{"work", "urgent"}

	if err = db.TaskUpdate(task); err != nil {
		t.Fatalf("Cannot update Task %s: %s",
			task.ID,
			err.Error())
	} else if ref, err = db.TaskGetByID(task.ID); err != nil {
		t.Fatalf("Cannot look up Task %s: %s",
			task.ID,
			err.Error())
	} else if ref == nil {
		t.Fatalf("Task %s was not found after update", task.ID)
	} else if ref.Title != task.Title {
		t.Errorf("Unexpected Title: %q (expected %q)",
			ref.Title,
			task.Title)
	} else if len(ref.Tags) != 2 {
		t.Errorf("Unexpected number of tags: %d (expected 2)",
			len(ref.Tags))
	}
} // func TestTaskUpdate(t *testing.T)

func TestTaskDelete(t *testing.T) {
	if db == nil || owner == nil {
		t.SkipNow()
	}

	var (
		err     error
		task    = items[1]
		deleted []objects.Task
		active  []objects.Task
	)

	if err = db.TaskDelete(task, "No longer relevant"); err != nil {
		t.Fatalf("Cannot delete Task %s: %s",
			task.ID,
			err.Error())
	} else if task.DeletedAt == nil {
		t.Error("DeletedAt of Task was not set")
	} else if deleted, err = db.TaskGetDeleted(owner.ID); err != nil {
		t.Fatalf("Cannot fetch deleted Tasks: %s", err.Error())
	} else if len(deleted) != 1 {
		t.Fatalf("Unexpected number of deleted Tasks: %d (expected 1)",
			len(deleted))
	} else if deleted[0].DeletionReason != "No longer relevant" {
		t.Errorf("Unexpected deletion reason: %q",
			deleted[0].DeletionReason)
	} else if active, err = db.TaskGetByOwner(owner.ID); err != nil {
		t.Fatalf("Cannot fetch active Tasks: %s", err.Error())
	} else if len(active) != len(items)-1 {
		t.Errorf("Unexpected number of active Tasks: %d (expected %d)",
			len(active),
			len(items)-1)
	}
} // func TestTaskDelete(t *testing.T)

func TestTaskRestore(t *testing.T) {
	if db == nil || owner == nil {
		t.SkipNow()
	}

	var (
		err     error
		task    = items[1]
		deleted []objects.Task
		ref     *objects.Task
	)

	if err = db.TaskRestore(task); err != nil {
		t.Fatalf("Cannot restore Task %s: %s",
			task.ID,
			err.Error())
	} else if deleted, err = db.TaskGetDeleted(owner.ID); err != nil {
		t.Fatalf("Cannot fetch deleted Tasks: %s", err.Error())
	} else if len(deleted) != 0 {
		t.Errorf("Unexpected number of deleted Tasks: %d (expected 0)",
			len(deleted))
	} else if ref, err = db.TaskGetByID(task.ID); err != nil {
		t.Fatalf("Cannot look up Task %s: %s",
			task.ID,
			err.Error())
	} else if ref == nil {
		t.Fatalf("Task %s was not found after restore", task.ID)
	} else if ref.DeletedAt != nil {
		t.Error("DeletedAt of restored Task is still set")
	}
} // func TestTaskRestore(t *testing.T)
