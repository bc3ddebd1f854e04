// /home/krylon/go/src/github.com/blicero/ariadne/session/session.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 05. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-03 22:31:26 krylon>

// Package session ties the client-side pieces together: the data
// source, the view cache, the mutation coordinator, the reminder
// engine and the toast queue, all working for one logged-in user.
package session

import (
	"log"
	"time"

	"github.com/blicero/ariadne/cache"
	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/coordinator"
	"github.com/blicero/ariadne/datasource"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/permission"
	"github.com/blicero/ariadne/objects/severity"
	"github.com/blicero/ariadne/reminder"
	"github.com/blicero/ariadne/toast"
)

// Session is one user's running client state.
type Session struct {
	log    *log.Logger
	owner  string
	src    datasource.Source
	cache  *cache.Cache
	coord  *coordinator.Coordinator
	remind *reminder.Engine
	toasts *toast.Engine
}

// New assembles a Session for the given owner on top of the given
// Source and Notifier.
func New(src datasource.Source, notifier reminder.Notifier, owner string, interval time.Duration) (*Session, error) {
	var (
		err error
		s   = &Session{
			owner: owner,
			src:   src,
		}
	)

	if s.log, err = common.GetLogger(logdomain.Session); err != nil {
		return nil, err
	} else if s.cache, err = cache.New(src, owner); err != nil {
		return nil, err
	} else if s.coord, err = coordinator.New(src, s.cache, owner); err != nil {
		return nil, err
	} else if s.remind, err = reminder.New(notifier, interval); err != nil {
		return nil, err
	} else if s.toasts, err = toast.New(); err != nil {
		return nil, err
	}

	return s, nil
} // func New(...) (*Session, error)

// Owner returns the user the Session belongs to.
func (s *Session) Owner() string {
	return s.owner
} // func (s *Session) Owner() string

// Tasks returns the task listing for the given Filters.
func (s *Session) Tasks(f *objects.Filters) (*objects.TaskListResponse, error) {
	return s.cache.Tasks(f)
} // func (s *Session) Tasks(f *objects.Filters) (*objects.TaskListResponse, error)

// Deleted returns the listing of soft-deleted tasks.
func (s *Session) Deleted() (*objects.DeletedTaskListResponse, error) {
	return s.cache.Deleted()
} // func (s *Session) Deleted() (*objects.DeletedTaskListResponse, error)

// Toggle flips a task's completion state, with optimistic display.
// Failures surface as a toast on top of the per-item error.
func (s *Session) Toggle(t *objects.Task) error {
	var err = s.coord.ToggleComplete(t)

	if err != nil {
		s.toasts.Add("Failed to update task: "+err.Error(),
			severity.Error, 0)
	}

	return err
} // func (s *Session) Toggle(t *objects.Task) error

// Delete soft-deletes a task, reason and all.
func (s *Session) Delete(id, reason string) error {
	var err = s.coord.Delete(id, reason)

	if err == nil {
		s.toasts.Add("Task deleted", severity.Info, 0)
	}

	return err
} // func (s *Session) Delete(id, reason string) error

// Restore brings a soft-deleted task back.
func (s *Session) Restore(id string) error {
	var err = s.coord.Restore(id)

	if err == nil {
		s.toasts.Add("Task restored", severity.Success, 0)
	}

	return err
} // func (s *Session) Restore(id string) error

// SubmitCreate creates a task from the given form.
func (s *Session) SubmitCreate(f *coordinator.TaskForm) (*objects.Task, error) {
	var t, err = s.coord.SubmitCreate(f)

	if err == nil {
		s.toasts.Add("Task created", severity.Success, 0)
	}

	return t, err
} // func (s *Session) SubmitCreate(f *coordinator.TaskForm) (*objects.Task, error)

// SubmitEdit updates a task from the given form.
func (s *Session) SubmitEdit(id string, f *coordinator.TaskForm) (*objects.Task, error) {
	return s.coord.SubmitEdit(id, f)
} // func (s *Session) SubmitEdit(id string, f *coordinator.TaskForm) (*objects.Task, error)

// OptimisticCompleted returns the completion state a task should be
// displayed with.
func (s *Session) OptimisticCompleted(t *objects.Task) bool {
	return s.coord.OptimisticCompleted(t)
} // func (s *Session) OptimisticCompleted(t *objects.Task) bool

// ItemError returns the error message attached to a task by a failed
// mutation, if any.
func (s *Session) ItemError(id string) string {
	return s.coord.ItemError(id)
} // func (s *Session) ItemError(id string) string

// RequestPermission asks for permission to display desktop alerts, on
// the user's explicit say-so.
func (s *Session) RequestPermission() permission.Permission {
	return s.remind.RequestPermission()
} // func (s *Session) RequestPermission() permission.Permission

// StartReminders fetches the unfiltered task listing and starts the
// periodic reminder check over it. The in-app counters are shown as
// toasts right away.
func (s *Session) StartReminders() error {
	var res, err = s.cache.Tasks(nil)

	if err != nil {
		s.log.Printf("[ERROR] Cannot fetch tasks for the reminder check: %s\n",
			err.Error())
		return err
	}

	s.toasts.ShowTaskAlerts(res.OverdueCount, res.DueTodayCount)
	s.remind.Start(res.Tasks)
	return nil
} // func (s *Session) StartReminders() error

// StopReminders halts the periodic reminder check.
func (s *Session) StopReminders() {
	s.remind.Stop()
} // func (s *Session) StopReminders()

// Toasts returns the in-app messages currently on display.
func (s *Session) Toasts() []objects.Toast {
	return s.toasts.Active()
} // func (s *Session) Toasts() []objects.Toast

// RemoveToast dismisses an in-app message.
func (s *Session) RemoveToast(id string) {
	s.toasts.Remove(id)
} // func (s *Session) RemoveToast(id string)

// Close shuts the Session down, stopping the reminder loop and all
// toast timers.
func (s *Session) Close() {
	s.remind.Stop()
	s.toasts.Stop()
} // func (s *Session) Close()
