// /home/krylon/go/src/github.com/blicero/ariadne/objects/task.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-30 18:21:05 krylon>

// Package objects provides the data types used by the application.
package objects

import (
	"fmt"
	"time"

	"github.com/blicero/ariadne/objects/priority"
	"github.com/blicero/ariadne/objects/recurrence"
)

//go:generate ffjson task.go

// Task is a single item on the user's list of things to do.
//
// Overdue, DueToday and Recurring are computed by the data source when a
// Task is handed out, never stored. Overdue and DueToday are mutually
// exclusive: a Task whose due time falls on the current calendar day
// counts as due today, even if the time of day has already passed;
// overdue means the due time lies before the start of the current day.
type Task struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Completed      bool                  `json:"completed"`
	Priority       priority.Priority     `json:"priority"`
	Tags           []string              `json:"tags"`
	Due            *time.Time            `json:"due_date"`
	Recurrence     recurrence.Recurrence `json:"recurrence"`
	ParentID       string                `json:"parent_id"`
	DeletedAt      *time.Time            `json:"deleted_at"`
	DeletionReason string                `json:"deletion_reason"`
	OwnerID        string                `json:"owner_id"`
	Created        time.Time             `json:"created_at"`
	Changed        time.Time             `json:"updated_at"`
	Overdue        bool                  `json:"is_overdue"`
	DueToday       bool                  `json:"is_due_today"`
	Recurring      bool                  `json:"is_recurring"`
}

func (t *Task) String() string {
	return fmt.Sprintf("Task{ ID: %q, Title: %q, Completed: %t, Priority: %s }",
		t.ID,
		t.Title,
		t.Completed,
		t.Priority)
} // func (t *Task) String() string

// IsDeleted returns true if the Task has been soft-deleted.
func (t *Task) IsDeleted() bool {
	return t.DeletedAt != nil
} // func (t *Task) IsDeleted() bool

// ComputeFlags derives the Overdue, DueToday and Recurring flags from the
// Task's state, using ref as the current point in time.
// A completed, deleted, or due-less Task is neither overdue nor due today.
func (t *Task) ComputeFlags(ref time.Time) {
	t.Recurring = t.Recurrence != recurrence.None
	t.Overdue = false
	t.DueToday = false

	if t.Completed || t.Due == nil || t.DeletedAt != nil {
		return
	}

	var (
		due      = t.Due.In(ref.Location())
		dayStart = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	)

	if due.Before(dayStart) {
		t.Overdue = true
	} else if due.Before(dayStart.AddDate(0, 0, 1)) {
		t.DueToday = true
	}
} // func (t *Task) ComputeFlags(ref time.Time)

// NextInstance returns the follow-up instance spawned by completing a
// recurring Task: the same content, the due date advanced by the
// recurrence interval, and ParentID pointing back at the receiver. The
// caller assigns the new ID and timestamps. It returns nil for a Task
// that does not recur or has no due date.
func (t *Task) NextInstance() *Task {
	if t.Recurrence == recurrence.None || t.Due == nil {
		return nil
	}

	var (
		next = t.Clone()
		due  = t.Recurrence.Next(*t.Due)
	)

	next.ID = ""
	next.Completed = false
	next.Due = &due
	next.ParentID = t.ID

	return next
} // func (t *Task) NextInstance() *Task

// Clone returns a deep copy of the Task.
func (t *Task) Clone() *Task {
	var c = *t

	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}

	if t.Due != nil {
		var due = *t.Due
		c.Due = &due
	}

	if t.DeletedAt != nil {
		var del = *t.DeletedAt
		c.DeletedAt = &del
	}

	return &c
} // func (t *Task) Clone() *Task

// IsNewer returns true if the receiver's Changed stamp is
// more recent than the argument's.
func (t *Task) IsNewer(other *Task) bool {
	return t.Changed.After(other.Changed)
} // func (t *Task) IsNewer(other *Task) bool
