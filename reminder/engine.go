// /home/krylon/go/src/github.com/blicero/ariadne/reminder/engine.go
// -*- mode: go; coding: utf-8; -*-
// Created on 23. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-03 20:41:12 krylon>

// Package reminder implements the periodic check that alerts the user
// about overdue and due-today tasks. Alerts are deduplicated through a
// Ledger so no task gets alerted more than once per day.
package reminder

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/permission"
)

const defaultInterval = time.Minute

// PermissionState is the Engine's view of whether it may bother the
// user at all.
type PermissionState struct {
	Permission permission.Permission
	Supported  bool
	Requested  bool
}

// Engine runs the periodic reminder check.
type Engine struct {
	log      *log.Logger
	notifier Notifier
	ledger   *Ledger
	interval time.Duration
	lock     sync.Mutex
	state    PermissionState
	tasks    []objects.Task
	done     chan struct{}
	running  bool

	// now is the Engine's clock, so tests can pin the current time.
	now func() time.Time
}

// New creates an Engine on top of the given Notifier. An interval of
// zero or less selects the default of one minute.
func New(n Notifier, interval time.Duration) (*Engine, error) {
	var (
		err error
		eng = &Engine{
			notifier: n,
			ledger:   NewLedger(),
			interval: interval,
			now:      time.Now,
		}
	)

	if eng.log, err = common.GetLogger(logdomain.Reminder); err != nil {
		return nil, err
	}

	if eng.interval <= 0 {
		eng.interval = defaultInterval
	}

	eng.state.Supported = n.Probe()
	if !eng.state.Supported {
		eng.state.Permission = permission.Denied
	}

	return eng, nil
} // func New(n Notifier, interval time.Duration) (*Engine, error)

// State returns the current permission state.
func (e *Engine) State() PermissionState {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.state
} // func (e *Engine) State() PermissionState

// RequestPermission asks the Notifier for permission to display
// alerts. It only ever asks when the user explicitly triggers it, and
// it asks at most once.
func (e *Engine) RequestPermission() permission.Permission {
	e.lock.Lock()
	defer e.lock.Unlock()

	if !e.state.Supported {
		return permission.Denied
	} else if e.state.Requested {
		return e.state.Permission
	}

	e.state.Permission = e.notifier.RequestPermission()
	e.state.Requested = true

	e.log.Printf("[INFO] Notification permission: %s\n",
		e.state.Permission)

	return e.state.Permission
} // func (e *Engine) RequestPermission() permission.Permission

// IsRunning returns true if the periodic check loop is active.
func (e *Engine) IsRunning() bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.running
} // func (e *Engine) IsRunning() bool

// UpdateTasks replaces the snapshot of tasks the periodic check looks at.
func (e *Engine) UpdateTasks(tasks []objects.Task) {
	e.lock.Lock()
	e.tasks = tasks
	e.lock.Unlock()
} // func (e *Engine) UpdateTasks(tasks []objects.Task)

// Start begins the periodic check over the given tasks. A running
// check loop is stopped first. Stale Ledger entries are purged, then
// one check runs immediately, then the ticker takes over.
func (e *Engine) Start(tasks []objects.Task) {
	e.Stop()

	e.lock.Lock()
	e.tasks = tasks
	e.ledger.Purge(e.now().Format(keyDateFormat))
	e.done = make(chan struct{})
	e.running = true
	var done = e.done
	e.lock.Unlock()

	e.Check()

	go e.loop(done)
} // func (e *Engine) Start(tasks []objects.Task)

// Stop halts the periodic check loop. It is safe to call on a stopped
// Engine.
func (e *Engine) Stop() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if !e.running {
		return
	}

	close(e.done)
	e.done = nil
	e.running = false
} // func (e *Engine) Stop()

func (e *Engine) loop(done <-chan struct{}) {
	defer e.log.Println("[TRACE] Reminder loop is shutting down")

	var ticker = time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			e.Check()
		}
	}
} // func (e *Engine) loop(done <-chan struct{})

// Check runs one pass over the task snapshot and delivers one combined
// alert for the tasks that qualify and have not been alerted today. A
// task that starts qualifying later in the day gets a follow-up alert
// of its own. Check is exported so a pass can be forced without
// waiting for the ticker.
func (e *Engine) Check() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.state.Permission != permission.Granted {
		return
	}

	var (
		ref      = e.now()
		today    = ref.Format(keyDateFormat)
		alerts   []objects.Task
		overdue  int
		dueToday int
	)

	for idx := range e.tasks {
		var t = e.tasks[idx].Clone()

		if t.Completed || t.IsDeleted() || t.Due == nil {
			continue
		}

		t.ComputeFlags(ref)

		if !(t.Overdue || t.DueToday) {
			continue
		} else if e.ledger.Has(TaskKey(today, t.ID)) {
			continue
		}

		if t.Overdue {
			overdue++
		} else {
			dueToday++
		}

		alerts = append(alerts, *t)
	}

	if len(alerts) == 0 {
		return
	}

	var note = composeAlert(alerts, overdue, dueToday)

	if err := e.notifier.Notify(note); err != nil {
		e.log.Printf("[ERROR] Failed to deliver alert %q: %s\n",
			note.Title,
			err.Error())
		return
	}

	for idx := range alerts {
		e.ledger.Add(TaskKey(today, alerts[idx].ID))
	}

	e.log.Printf("[DEBUG] Delivered alert %q (%s) for %d task(s)\n",
		note.Title,
		note.Body,
		len(alerts))
} // func (e *Engine) Check()

// composeAlert builds the notification for a batch of due tasks. A
// single affected task gets named in the message; alerts that include
// overdue tasks are urgent.
func composeAlert(alerts []objects.Task, overdue, dueToday int) *Notification {
	var note = &Notification{Urgent: overdue > 0}

	switch {
	case overdue > 0 && dueToday > 0:
		note.Title = "Tasks Alert"
		note.Body = fmt.Sprintf("%d overdue, %d due today",
			overdue,
			dueToday)
	case overdue == 1:
		note.Title = "Overdue Tasks"
		note.Body = fmt.Sprintf("1 task is overdue: %s",
			alerts[0].Title)
	case overdue > 1:
		note.Title = "Overdue Tasks"
		note.Body = fmt.Sprintf("%d tasks are overdue", overdue)
	case dueToday == 1:
		note.Title = "Tasks Due Today"
		note.Body = fmt.Sprintf("1 task due today: %s",
			alerts[0].Title)
	default:
		note.Title = "Tasks Due Today"
		note.Body = fmt.Sprintf("%d tasks due today", dueToday)
	}

	return note
} // func composeAlert(alerts []objects.Task, overdue, dueToday int) *Notification
