// /home/krylon/go/src/github.com/blicero/ariadne/reminder/ledger.go
// -*- mode: go; coding: utf-8; -*-
// Created on 23. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-03 19:20:05 krylon>

package reminder

import (
	"fmt"
	"strings"
)

// Every key in the Ledger embeds the day it belongs to, so stale keys
// can be recognized by inspection.
const keyDateFormat = "2006-01-02"

// TaskKey is the Ledger key for one task alerted on the given day.
func TaskKey(date, id string) string {
	return fmt.Sprintf("%s/%s", date, id)
} // func TaskKey(date, id string) string

// Ledger records which tasks have been alerted, so no task is alerted
// more than once per day. It is not safe for concurrent use, the
// Engine serializes access to it.
type Ledger struct {
	seen map[string]bool
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{seen: make(map[string]bool)}
} // func NewLedger() *Ledger

// Add records a key.
func (l *Ledger) Add(key string) {
	l.seen[key] = true
} // func (l *Ledger) Add(key string)

// Has checks if a key has been recorded.
func (l *Ledger) Has(key string) bool {
	return l.seen[key]
} // func (l *Ledger) Has(key string) bool

// Len returns the number of recorded keys.
func (l *Ledger) Len() int {
	return len(l.seen)
} // func (l *Ledger) Len() int

// Purge removes all keys that do not belong to the given day, keeping
// today's so a restarted check loop does not alert twice.
func (l *Ledger) Purge(today string) {
	for key := range l.seen {
		if !strings.Contains(key, today) {
			delete(l.seen, key)
		}
	}
} // func (l *Ledger) Purge(today string)
