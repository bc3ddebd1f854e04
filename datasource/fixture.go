// /home/krylon/go/src/github.com/blicero/ariadne/datasource/fixture.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-02 21:05:44 krylon>

package datasource

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/priority"
	"github.com/blicero/ariadne/objects/recurrence"
)

// Fixture is an in-memory Source, pre-seeded with a handful of sample
// Tasks. It lets the client run without a backend, and it is what the
// test suites build on.
type Fixture struct {
	lock  sync.RWMutex
	log   *log.Logger
	tasks map[string]*objects.Task

	// Now is the Fixture's clock, so tests can pin the current time.
	Now func() time.Time
}

// NewFixture creates a Fixture. If seed is true, it is populated with
// sample Tasks belonging to the given owner.
func NewFixture(owner string, seed bool) (*Fixture, error) {
	var (
		err error
		fix = &Fixture{
			tasks: make(map[string]*objects.Task),
			Now:   time.Now,
		}
	)

	if fix.log, err = common.GetLogger(logdomain.Client); err != nil {
		return nil, err
	}

	if seed {
		fix.populate(owner)
	}

	return fix, nil
} // func NewFixture(owner string, seed bool) (*Fixture, error)

func (fix *Fixture) populate(owner string) {
	var (
		now       = fix.Now()
		yesterday = now.AddDate(0, 0, -1)
		tomorrow  = now.AddDate(0, 0, 1)
		nextWeek  = now.AddDate(0, 0, 7)
	)

	var samples = []objects.Task{
		{
			ID:          "task-1",
			Title:       "Complete project documentation",
			Description: "Write detailed documentation for the client architecture.",
			Priority:    priority.High,
			Tags:        []string{"work", "docs"},
			Due:         &tomorrow,
			Created:     yesterday,
			Changed:     yesterday,
		},
		{
			ID:          "task-2",
			Title:       "Review pull requests",
			Description: "Check pending PRs for the authentication flow.",
			Completed:   true,
			Priority:    priority.Medium,
			Tags:        []string{"work", "dev"},
			Due:         &yesterday,
			Recurrence:  recurrence.Daily,
			Created:     yesterday,
			Changed:     now,
		},
		{
			ID:          "task-3",
			Title:       "Buy groceries",
			Description: "Milk, eggs, bread, and coffee.",
			Priority:    priority.Low,
			Tags:        []string{"personal"},
			Due:         &nextWeek,
			Recurrence:  recurrence.Weekly,
			Created:     now,
			Changed:     now,
		},
		{
			ID:          "task-4",
			Title:       "Urgent bug fix",
			Description: "Fix the critical crash on the payment page.",
			Priority:    priority.High,
			Tags:        []string{"work", "bug"},
			Due:         &now,
			Created:     now,
			Changed:     now,
		},
		{
			ID:             "task-deleted-1",
			Title:          "Old recurring meeting",
			Description:    "Weekly standup that is no longer happening",
			Priority:       priority.Low,
			Tags:           []string{"work", "meeting"},
			Due:            &yesterday,
			Recurrence:     recurrence.Weekly,
			DeletedAt:      &now,
			DeletionReason: "Meeting cancelled permanently",
			Created:        yesterday,
			Changed:        now,
		},
	}

	for idx := range samples {
		samples[idx].OwnerID = owner
		fix.tasks[samples[idx].ID] = &samples[idx]
	}
} // func (fix *Fixture) populate(owner string)

// ListTasks returns the owner's active Tasks matching the given Filters,
// with derived flags and counts computed against the Fixture's clock.
func (fix *Fixture) ListTasks(owner string, f *objects.Filters) (*objects.TaskListResponse, error) {
	fix.lock.RLock()
	defer fix.lock.RUnlock()

	var (
		now  = fix.Now()
		list = make([]objects.Task, 0, len(fix.tasks))
	)

	for _, t := range fix.tasks {
		if t.OwnerID != owner || t.IsDeleted() {
			continue
		}

		var cpy = t.Clone()
		cpy.ComputeFlags(now)
		list = append(list, *cpy)
	}

	list = f.Apply(list, now)

	var overdue, dueToday = objects.CountDue(list)

	return &objects.TaskListResponse{
		Tasks:         list,
		Total:         len(list),
		OverdueCount:  overdue,
		DueTodayCount: dueToday,
	}, nil
} // func (fix *Fixture) ListTasks(owner string, f *objects.Filters) (*objects.TaskListResponse, error)

// ListDeletedTasks returns the owner's soft-deleted Tasks.
func (fix *Fixture) ListDeletedTasks(owner string) (*objects.DeletedTaskListResponse, error) {
	fix.lock.RLock()
	defer fix.lock.RUnlock()

	var (
		now  = fix.Now()
		list = make([]objects.Task, 0, 4)
	)

	for _, t := range fix.tasks {
		if t.OwnerID != owner || !t.IsDeleted() {
			continue
		}

		var cpy = t.Clone()
		cpy.ComputeFlags(now)
		list = append(list, *cpy)
	}

	return &objects.DeletedTaskListResponse{
		Tasks: list,
		Total: len(list),
	}, nil
} // func (fix *Fixture) ListDeletedTasks(owner string) (*objects.DeletedTaskListResponse, error)

// CreateTask adds a new Task for the owner.
func (fix *Fixture) CreateTask(owner string, c *objects.TaskCreate) (*objects.Task, error) {
	if strings.TrimSpace(c.Title) == "" {
		return nil, ErrInvalid
	}

	fix.lock.Lock()
	defer fix.lock.Unlock()

	var (
		now = fix.Now()
		t   = &objects.Task{
			ID:          common.GetUUID(),
			Title:       c.Title,
			Description: c.Description,
			Priority:    c.Priority,
			Tags:        c.Tags,
			Due:         c.Due,
			Recurrence:  c.Recurrence,
			OwnerID:     owner,
			Created:     now,
			Changed:     now,
		}
	)

	fix.tasks[t.ID] = t

	var cpy = t.Clone()
	cpy.ComputeFlags(now)
	return cpy, nil
} // func (fix *Fixture) CreateTask(owner string, c *objects.TaskCreate) (*objects.Task, error)

func (fix *Fixture) get(owner, id string) (*objects.Task, error) {
	var t, ok = fix.tasks[id]

	if !ok {
		return nil, ErrNotFound
	} else if t.OwnerID != owner {
		return nil, ErrUnauthorized
	}

	return t, nil
} // func (fix *Fixture) get(owner, id string) (*objects.Task, error)

// UpdateTask applies the given update to a Task. Nil fields of the
// update leave the Task untouched.
func (fix *Fixture) UpdateTask(owner, id string, u *objects.TaskUpdate) (*objects.Task, error) {
	if strings.TrimSpace(u.Title) == "" {
		return nil, ErrInvalid
	}

	fix.lock.Lock()
	defer fix.lock.Unlock()

	var (
		err error
		t   *objects.Task
		now = fix.Now()
	)

	if t, err = fix.get(owner, id); err != nil {
		return nil, err
	} else if t.IsDeleted() {
		return nil, ErrNotFound
	}

	t.Title = u.Title
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Tags != nil {
		t.Tags = *u.Tags
	}
	if u.ClearDue {
		t.Due = nil
	} else if u.Due != nil {
		t.Due = u.Due
	}
	if u.Recurrence != nil {
		t.Recurrence = *u.Recurrence
	}
	t.Changed = now

	var cpy = t.Clone()
	cpy.ComputeFlags(now)
	return cpy, nil
} // func (fix *Fixture) UpdateTask(owner, id string, u *objects.TaskUpdate) (*objects.Task, error)

// DeleteTask soft-deletes a Task, recording the reason.
func (fix *Fixture) DeleteTask(owner, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrInvalid
	}

	fix.lock.Lock()
	defer fix.lock.Unlock()

	var (
		err error
		t   *objects.Task
		now = fix.Now()
	)

	if t, err = fix.get(owner, id); err != nil {
		return err
	}

	t.DeletedAt = &now
	t.DeletionReason = reason
	t.Changed = now

	return nil
} // func (fix *Fixture) DeleteTask(owner, id, reason string) error

// RestoreTask un-deletes a soft-deleted Task.
func (fix *Fixture) RestoreTask(owner, id string) (*objects.Task, error) {
	fix.lock.Lock()
	defer fix.lock.Unlock()

	var (
		err error
		t   *objects.Task
		now = fix.Now()
	)

	if t, err = fix.get(owner, id); err != nil {
		return nil, err
	}

	t.DeletedAt = nil
	t.DeletionReason = ""
	t.Changed = now

	var cpy = t.Clone()
	cpy.ComputeFlags(now)
	return cpy, nil
} // func (fix *Fixture) RestoreTask(owner, id string) (*objects.Task, error)

// ToggleComplete flips a Task's completion flag and returns the new
// state of the Task. Completing a recurring Task spawns its next
// instance, due one recurrence interval later and linked to the
// completed Task via ParentID.
func (fix *Fixture) ToggleComplete(owner, id string) (*objects.Task, error) {
	fix.lock.Lock()
	defer fix.lock.Unlock()

	var (
		err error
		t   *objects.Task
		now = fix.Now()
	)

	if t, err = fix.get(owner, id); err != nil {
		return nil, err
	} else if t.IsDeleted() {
		return nil, ErrNotFound
	}

	t.Completed = !t.Completed
	t.Changed = now

	if t.Completed {
		if next := t.NextInstance(); next != nil {
			next.ID = common.GetUUID()
			next.Created = now
			next.Changed = now
			fix.tasks[next.ID] = next
		}
	}

	var cpy = t.Clone()
	cpy.ComputeFlags(now)
	return cpy, nil
} // func (fix *Fixture) ToggleComplete(owner, id string) (*objects.Task, error)
