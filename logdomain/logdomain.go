// /home/krylon/go/src/github.com/blicero/ariadne/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-04-02 17:31:48 krylon>

// Package logdomain provides symbolic constants to identify the various
// pieces of the application that want to do logging.
package logdomain

//go:generate stringer -type=ID

// ID identifies a log source.
type ID uint8

// These constants identify the various log sources.
const (
	Common ID = iota
	Backend
	Client
	Database
	DBPool
	Cache
	Coordinator
	Reminder
	Toast
	Session
)

// AllDomains returns a slice of all the valid values for ID.
func AllDomains() []ID {
	return []ID{
		Common,
		Backend,
		Client,
		Database,
		DBPool,
		Cache,
		Coordinator,
		Reminder,
		Toast,
		Session,
	}
} // func AllDomains() []ID
