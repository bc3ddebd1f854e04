// /home/krylon/go/src/github.com/blicero/ariadne/toast/toast.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-03 21:44:09 krylon>

// Package toast implements the in-app message queue, for the alerts
// and errors the user should see even when desktop notifications are
// not available. Messages expire on their own after a while.
package toast

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/severity"
)

const (
	defaultDuration = time.Second * 5
	alertDuration   = time.Second * 8
)

// Engine holds the active toasts and expires them.
type Engine struct {
	log    *log.Logger
	lock   sync.Mutex
	queue  []objects.Toast
	timers map[string]*time.Timer
}

// New creates an Engine.
func New() (*Engine, error) {
	var (
		err error
		e   = &Engine{
			timers: make(map[string]*time.Timer),
		}
	)

	if e.log, err = common.GetLogger(logdomain.Toast); err != nil {
		return nil, err
	}

	return e, nil
} // func New() (*Engine, error)

// Add queues a message. A duration of zero or less selects the
// default of five seconds. The returned ID can be used to dismiss the
// message early.
func (e *Engine) Add(msg string, sev severity.Severity, dur time.Duration) string {
	if dur <= 0 {
		dur = defaultDuration
	}

	var t = objects.Toast{
		ID:       common.GetUUID(),
		Message:  msg,
		Severity: sev,
		Created:  time.Now(),
		Duration: dur,
	}

	e.lock.Lock()
	e.queue = append(e.queue, t)
	e.timers[t.ID] = time.AfterFunc(dur, func() { e.Remove(t.ID) })
	e.lock.Unlock()

	return t.ID
} // func (e *Engine) Add(msg string, sev severity.Severity, dur time.Duration) string

// Remove dismisses a message, whether it expired or the user clicked
// it away. Removing an unknown ID is a no-op.
func (e *Engine) Remove(id string) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if timer, ok := e.timers[id]; ok {
		timer.Stop()
		delete(e.timers, id)
	}

	for idx := range e.queue {
		if e.queue[idx].ID == id {
			e.queue = append(e.queue[:idx], e.queue[idx+1:]...)
			break
		}
	}
} // func (e *Engine) Remove(id string)

// Active returns the messages currently on display, oldest first.
func (e *Engine) Active() []objects.Toast {
	e.lock.Lock()
	defer e.lock.Unlock()

	var out = make([]objects.Toast, len(e.queue))
	copy(out, e.queue)
	return out
} // func (e *Engine) Active() []objects.Toast

// ShowTaskAlerts queues the in-app counterpart of the reminder alert,
// one message per non-zero count.
func (e *Engine) ShowTaskAlerts(overdue, dueToday int) {
	if overdue > 0 {
		var plural = ""
		if overdue != 1 {
			plural = "s"
		}
		e.Add(fmt.Sprintf("%d overdue task%s", overdue, plural),
			severity.Error,
			alertDuration)
	}

	if dueToday > 0 {
		e.Add(fmt.Sprintf("%d due today", dueToday),
			severity.Warning,
			alertDuration)
	}
} // func (e *Engine) ShowTaskAlerts(overdue, dueToday int)

// Stop dismisses all messages and stops their timers.
func (e *Engine) Stop() {
	e.lock.Lock()
	defer e.lock.Unlock()

	for id, timer := range e.timers {
		timer.Stop()
		delete(e.timers, id)
	}

	e.queue = e.queue[:0]
} // func (e *Engine) Stop()
