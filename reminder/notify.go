// /home/krylon/go/src/github.com/blicero/ariadne/reminder/notify.go
// -*- mode: go; coding: utf-8; -*-
// Created on 23. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-03 19:12:40 krylon>

package reminder

import (
	"fmt"
	"log"
	"sync"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects/permission"
	"github.com/godbus/dbus/v5"
)

const (
	notifyObj    = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
	notifyProbe  = "org.freedesktop.Notifications.GetServerInformation"
)

// Notification is one desktop notification. Urgent ones are expected to
// stay on screen until the user dismisses them.
type Notification struct {
	Title  string
	Body   string
	Urgent bool
}

// Notifier delivers Notifications to the user.
type Notifier interface {
	Probe() bool
	RequestPermission() permission.Permission
	Notify(n *Notification) error
}

// DBusNotifier delivers Notifications via the desktop's notification
// service on the DBus session bus.
type DBusNotifier struct {
	bus *dbus.Conn
	log *log.Logger
}

// NewDBusNotifier connects to the session bus and returns a notifier
// using it.
func NewDBusNotifier() (*DBusNotifier, error) {
	var (
		err error
		n   = new(DBusNotifier)
	)

	if n.log, err = common.GetLogger(logdomain.Reminder); err != nil {
		return nil, err
	} else if n.bus, err = dbus.SessionBus(); err != nil {
		n.log.Printf("[ERROR] Failed to connect to DBus session bus: %s\n",
			err.Error())
		return nil, err
	}

	return n, nil
} // func NewDBusNotifier() (*DBusNotifier, error)

// Probe checks if a notification service is actually listening on the
// session bus.
func (n *DBusNotifier) Probe() bool {
	var obj = n.bus.Object(notifyObj, notifyPath)

	if obj == nil {
		return false
	}

	var res = obj.Call(notifyProbe, 0)

	if res.Err != nil {
		n.log.Printf("[DEBUG] No notification service on the session bus: %s\n",
			res.Err.Error())
		return false
	}

	return true
} // func (n *DBusNotifier) Probe()  bool

// RequestPermission asks for permission to display notifications. The
// desktop has no permission dialog the way a browser does, so having a
// notification service around is all the permission there is.
func (n *DBusNotifier) RequestPermission() permission.Permission {
	if n.Probe() {
		return permission.Granted
	}

	return permission.Denied
} // func (n *DBusNotifier) RequestPermission() permission.Permission

// Notify displays one Notification.
func (n *DBusNotifier) Notify(note *Notification) error {
	var obj = n.bus.Object(notifyObj, notifyPath)

	if obj == nil {
		var err = fmt.Errorf("Did not find object %s (%s) on session bus",
			notifyObj,
			notifyPath)
		n.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	var (
		hints   = make(map[string]dbus.Variant)
		timeout = int32(5000)
	)

	if note.Urgent {
		hints["urgency"] = dbus.MakeVariant(byte(2))
		// Urgent notifications stay until dismissed.
		timeout = 0
	}

	var res = obj.Call(
		notifyMethod,
		0,
		common.AppName,
		uint32(0),
		"",
		note.Title,
		note.Body,
		[]string{},
		hints,
		timeout,
	)

	if res.Err != nil {
		n.log.Printf("[ERROR] Cannot send Notification %q: %s\n",
			note.Title,
			res.Err.Error())
		return res.Err
	}

	return nil
} // func (n *DBusNotifier) Notify(note *Notification) error

// MemoryNotifier collects Notifications in memory. It exists for
// testing and for running headless.
type MemoryNotifier struct {
	lock      sync.Mutex
	Supported bool
	Grant     permission.Permission
	Sent      []Notification
}

// NewMemoryNotifier creates a MemoryNotifier that will answer a
// permission request with the given verdict.
func NewMemoryNotifier(grant permission.Permission) *MemoryNotifier {
	return &MemoryNotifier{
		Supported: true,
		Grant:     grant,
	}
} // func NewMemoryNotifier(grant permission.Permission) *MemoryNotifier

// Probe says whether the notifier pretends to be available.
func (m *MemoryNotifier) Probe() bool {
	return m.Supported
} // func (m *MemoryNotifier) Probe() bool

// RequestPermission returns the scripted verdict.
func (m *MemoryNotifier) RequestPermission() permission.Permission {
	return m.Grant
} // func (m *MemoryNotifier) RequestPermission() permission.Permission

// Notify records the Notification.
func (m *MemoryNotifier) Notify(n *Notification) error {
	m.lock.Lock()
	m.Sent = append(m.Sent, *n)
	m.lock.Unlock()
	return nil
} // func (m *MemoryNotifier) Notify(n *Notification) error

// Count returns the number of Notifications delivered so far.
func (m *MemoryNotifier) Count() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.Sent)
} // func (m *MemoryNotifier) Count() int

// Last returns the most recently delivered Notification, or nil.
func (m *MemoryNotifier) Last() *Notification {
	m.lock.Lock()
	defer m.lock.Unlock()

	if len(m.Sent) == 0 {
		return nil
	}

	var n = m.Sent[len(m.Sent)-1]
	return &n
} // func (m *MemoryNotifier) Last() *Notification
