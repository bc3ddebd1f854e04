// /home/krylon/go/src/github.com/blicero/ariadne/coordinator/coordinator.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-03 17:21:48 krylon>

// Package coordinator dispatches task mutations to the data source and
// keeps an optimistic overlay per task while a mutation is in flight,
// so the display can flip immediately and converge to the confirmed
// state afterwards.
package coordinator

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/blicero/ariadne/cache"
	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/datasource"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
)

// ErrNoReason is returned when a delete is attempted without a
// non-empty reason.
var ErrNoReason = errors.New("deletion reason must not be empty")

// Coordinator mediates between the display and the data source.
type Coordinator struct {
	log     *log.Logger
	src     datasource.Source
	cache   *cache.Cache
	owner   string
	lock    sync.Mutex
	pending map[string]*Patch
	errs    map[string]string
}

// New creates a Coordinator for the given owner.
func New(src datasource.Source, tc *cache.Cache, owner string) (*Coordinator, error) {
	var (
		err error
		c   = &Coordinator{
			src:     src,
			cache:   tc,
			owner:   owner,
			pending: make(map[string]*Patch),
			errs:    make(map[string]string),
		}
	)

	if c.log, err = common.GetLogger(logdomain.Coordinator); err != nil {
		return nil, err
	}

	return c, nil
} // func New(src datasource.Source, tc *cache.Cache, owner string) (*Coordinator, error)

// Pending returns the in-flight Patch for the given task, or nil.
func (c *Coordinator) Pending(id string) *Patch {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.pending[id]
} // func (c *Coordinator) Pending(id string) *Patch

// OptimisticCompleted returns the completion state the given task
// should be displayed with, i.e. the pending value if a toggle is in
// flight, the confirmed value otherwise.
func (c *Coordinator) OptimisticCompleted(t *objects.Task) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	if p, ok := c.pending[t.ID]; ok && p.Completed != nil {
		return *p.Completed
	}

	return t.Completed
} // func (c *Coordinator) OptimisticCompleted(t *objects.Task) bool

// ItemError returns the error message attached to the given task by a
// failed mutation, or the empty string.
func (c *Coordinator) ItemError(id string) string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.errs[id]
} // func (c *Coordinator) ItemError(id string) string

// settle removes the overlay for the given task and records the outcome
// of its mutation. It runs on success and on failure both; once the
// mutation is settled, the overlay must not linger.
func (c *Coordinator) settle(id string, err error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	delete(c.pending, id)

	if err != nil {
		c.errs[id] = err.Error()
	} else {
		delete(c.errs, id)
	}
} // func (c *Coordinator) settle(id string, err error)

// ToggleComplete flips the completion state of the given task. The
// overlay is installed before the request is dispatched, so the caller
// sees the new state immediately, and removed when the request settles,
// whichever way it goes.
func (c *Coordinator) ToggleComplete(t *objects.Task) error {
	var want = !c.OptimisticCompleted(t)

	c.lock.Lock()
	c.pending[t.ID] = &Patch{Completed: &want}
	c.lock.Unlock()

	var _, err = c.src.ToggleComplete(c.owner, t.ID)

	c.settle(t.ID, err)

	if err != nil {
		c.log.Printf("[ERROR] Cannot toggle Task %s: %s\n",
			t.ID,
			err.Error())
		return err
	}

	c.cache.InvalidateTasks()
	c.cache.InvalidateDeleted()
	return nil
} // func (c *Coordinator) ToggleComplete(t *objects.Task) error

// Delete soft-deletes a task. The reason is mandatory; a blank reason
// is rejected before anything is sent to the data source.
func (c *Coordinator) Delete(id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrNoReason
	}

	var err = c.src.DeleteTask(c.owner, id, reason)

	c.settle(id, err)

	if err != nil {
		c.log.Printf("[ERROR] Cannot delete Task %s: %s\n",
			id,
			err.Error())
		return err
	}

	c.cache.InvalidateTasks()
	c.cache.InvalidateDeleted()
	return nil
} // func (c *Coordinator) Delete(id, reason string) error

// Restore un-deletes a soft-deleted task.
func (c *Coordinator) Restore(id string) error {
	var _, err = c.src.RestoreTask(c.owner, id)

	c.settle(id, err)

	if err != nil {
		c.log.Printf("[ERROR] Cannot restore Task %s: %s\n",
			id,
			err.Error())
		return err
	}

	c.cache.InvalidateTasks()
	c.cache.InvalidateDeleted()
	return nil
} // func (c *Coordinator) Restore(id string) error

// SubmitCreate validates the form and creates a new task from it.
func (c *Coordinator) SubmitCreate(f *TaskForm) (*objects.Task, error) {
	var (
		err error
		req *objects.TaskCreate
		t   *objects.Task
	)

	if req, err = f.ToCreate(); err != nil {
		return nil, err
	}

	if t, err = c.src.CreateTask(c.owner, req); err != nil {
		c.log.Printf("[ERROR] Cannot create Task %q: %s\n",
			req.Title,
			err.Error())
		return nil, err
	}

	c.cache.InvalidateTasks()
	return t, nil
} // func (c *Coordinator) SubmitCreate(f *TaskForm) (*objects.Task, error)

// SubmitEdit validates the form and updates the given task from it.
func (c *Coordinator) SubmitEdit(id string, f *TaskForm) (*objects.Task, error) {
	var (
		err error
		req *objects.TaskUpdate
		t   *objects.Task
	)

	if req, err = f.ToUpdate(); err != nil {
		return nil, err
	}

	if t, err = c.src.UpdateTask(c.owner, id, req); err != nil {
		c.settle(id, err)
		c.log.Printf("[ERROR] Cannot update Task %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	c.settle(id, nil)
	c.cache.InvalidateTasks()
	return t, nil
} // func (c *Coordinator) SubmitEdit(id string, f *TaskForm) (*objects.Task, error)
