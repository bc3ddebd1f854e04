// /home/krylon/go/src/github.com/blicero/ariadne/objects/filter.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-01 20:12:44 krylon>

package objects

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blicero/ariadne/objects/priority"
)

// SortKey names a Task field the list can be ordered by.
type SortKey string

// Valid values for SortKey.
const (
	SortByCreated  SortKey = "created_at"
	SortByDue      SortKey = "due_date"
	SortByPriority SortKey = "priority"
	SortByTitle    SortKey = "title"
)

// SortOrder is the direction of the ordering.
type SortOrder string

// Asc and Desc flip the entire ordering, they do not touch the
// per-field weighting.
const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// DueStatus selects Tasks by their relation to the current day.
type DueStatus string

// Valid values for DueStatus.
const (
	DueAny     DueStatus = ""
	DueOverdue DueStatus = "overdue"
	DueToday   DueStatus = "due_today"
	DueFuture  DueStatus = "future"
)

// Filters describes which slice of a user's Tasks a listing wants,
// and in what order.
type Filters struct {
	Completed *bool
	Priority  *priority.Priority
	Tag       string
	DueStatus DueStatus
	Search    string
	SortBy    SortKey
	SortOrder SortOrder
}

// Signature returns a string that identifies the filter set, for use as
// a cache key. Two Filters with the same Signature describe the same
// listing.
func (f *Filters) Signature() string {
	if f == nil {
		return "all"
	}

	var cmp = "nil"
	if f.Completed != nil {
		cmp = fmt.Sprintf("%t", *f.Completed)
	}

	var prio = "nil"
	if f.Priority != nil {
		prio = f.Priority.String()
	}

	return fmt.Sprintf("%s/%s/%s/%s/%s/%s/%s",
		cmp,
		prio,
		f.Tag,
		f.DueStatus,
		f.Search,
		f.SortBy,
		f.SortOrder)
} // func (f *Filters) Signature() string

// Apply returns the subset of tasks matching the Filters, sorted per
// SortBy/SortOrder. The derived flags of the tasks are assumed to have
// been computed against ref already.
func (f *Filters) Apply(tasks []Task, ref time.Time) []Task {
	var out = make([]Task, 0, len(tasks))

	for idx := range tasks {
		if f.match(&tasks[idx], ref) {
			out = append(out, tasks[idx])
		}
	}

	if f != nil && f.SortBy != "" {
		SortTasks(out, f.SortBy, f.SortOrder)
	}

	return out
} // func (f *Filters) Apply(tasks []Task, ref time.Time) []Task

func (f *Filters) match(t *Task, ref time.Time) bool {
	if f == nil {
		return true
	}

	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}

	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}

	if f.Tag != "" {
		var found bool
		for _, tag := range t.Tags {
			if tag == f.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch f.DueStatus {
	case DueOverdue:
		if !t.Overdue {
			return false
		}
	case DueToday:
		if !t.DueToday {
			return false
		}
	case DueFuture:
		if t.Due == nil || t.Completed {
			return false
		}
		var tomorrow = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
			AddDate(0, 0, 1)
		if t.Due.In(ref.Location()).Before(tomorrow) {
			return false
		}
	}

	if f.Search != "" {
		var needle = strings.ToLower(strings.TrimSpace(f.Search))
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}

	return true
} // func (f *Filters) match(t *Task, ref time.Time) bool

// SortTasks orders tasks in place by the given key and direction.
//
// For the priority key, ascending order puts High first (High outweighs
// Medium outweighs Low); the direction flips the whole ordering, not the
// weight table. Tasks without a due date always sort last, regardless of
// direction.
func SortTasks(tasks []Task, key SortKey, order SortOrder) {
	sort.SliceStable(tasks, func(i, j int) bool {
		var a, b = &tasks[i], &tasks[j]

		if key == SortByDue && (a.Due == nil || b.Due == nil) {
			// nulls last, direction does not apply
			return a.Due != nil && b.Due == nil
		}

		var cmp = compareTasks(a, b, key)

		if order == Desc {
			cmp = -cmp
		}

		return cmp < 0
	})
} // func SortTasks(tasks []Task, key SortKey, order SortOrder)

func compareTasks(a, b *Task, key SortKey) int {
	switch key {
	case SortByDue:
		switch {
		case a.Due.Before(*b.Due):
			return -1
		case b.Due.Before(*a.Due):
			return 1
		default:
			return 0
		}
	case SortByPriority:
		// Higher weight ranks earlier in ascending order.
		return b.Priority.Weight() - a.Priority.Weight()
	case SortByTitle:
		return strings.Compare(a.Title, b.Title)
	default:
		switch {
		case a.Created.Before(b.Created):
			return -1
		case b.Created.Before(a.Created):
			return 1
		default:
			return 0
		}
	}
} // func compareTasks(a, b *Task, key SortKey) int

// CountDue returns the number of overdue and due-today tasks in the
// given list, skipping completed ones.
func CountDue(tasks []Task) (overdue, dueToday int) {
	for idx := range tasks {
		var t = &tasks[idx]
		if t.Completed {
			continue
		}
		if t.Overdue {
			overdue++
		}
		if t.DueToday {
			dueToday++
		}
	}

	return overdue, dueToday
} // func CountDue(tasks []Task) (overdue, dueToday int)
