// /home/krylon/go/src/github.com/blicero/ariadne/coordinator/forms.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-02 23:02:29 krylon>

package coordinator

import (
	"errors"
	"strings"
	"time"

	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/priority"
	"github.com/blicero/ariadne/objects/recurrence"
)

// ErrNoTitle is returned when a form is submitted with an empty or
// whitespace-only title.
var ErrNoTitle = errors.New("title must not be empty")

const (
	formDateFormat = "2006-01-02"
	formTimeFormat = "15:04"
)

// TaskForm holds the raw field values of the create/edit form, the way
// a user typed them in.
type TaskForm struct {
	Title       string
	Description string
	Priority    string
	Tags        string
	DueDate     string
	DueTime     string
	Recurrence  string
}

// ParseTags splits a comma-separated tag string into a list of tags,
// trimming whitespace and dropping empty entries. An input without any
// tags yields nil.
func ParseTags(raw string) []string {
	var tags []string

	for _, piece := range strings.Split(raw, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			tags = append(tags, piece)
		}
	}

	return tags
} // func ParseTags(raw string) []string

// ComposeDue builds a due timestamp from separate date and time-of-day
// strings. An empty date means no due date at all; an empty time of day
// defaults to midnight. The result is in the local timezone.
func ComposeDue(date, tod string) (*time.Time, error) {
	if date == "" {
		return nil, nil
	}

	if tod == "" {
		tod = "00:00"
	}

	var stamp, err = time.ParseInLocation(
		formDateFormat+" "+formTimeFormat,
		date+" "+tod,
		time.Local)
	if err != nil {
		return nil, err
	}

	return &stamp, nil
} // func ComposeDue(date, tod string) (*time.Time, error)

// SplitDue is the inverse of ComposeDue, for pre-filling the edit form.
func SplitDue(stamp *time.Time) (date, tod string) {
	if stamp == nil {
		return "", ""
	}

	var local = stamp.In(time.Local)
	return local.Format(formDateFormat), local.Format(formTimeFormat)
} // func SplitDue(stamp *time.Time) (date, tod string)

// ToCreate turns the form into a create request, validating it along
// the way.
func (f *TaskForm) ToCreate() (*objects.TaskCreate, error) {
	var title = strings.TrimSpace(f.Title)

	if title == "" {
		return nil, ErrNoTitle
	}

	var (
		err  error
		due  *time.Time
		prio priority.Priority
		rec  recurrence.Recurrence
	)

	if due, err = ComposeDue(f.DueDate, f.DueTime); err != nil {
		return nil, err
	} else if prio, err = priority.FromString(f.Priority); err != nil {
		return nil, err
	} else if rec, err = recurrence.FromString(f.Recurrence); err != nil {
		return nil, err
	}

	return &objects.TaskCreate{
		Title:       title,
		Description: strings.TrimSpace(f.Description),
		Priority:    prio,
		Tags:        ParseTags(f.Tags),
		Due:         due,
		Recurrence:  rec,
	}, nil
} // func (f *TaskForm) ToCreate() (*objects.TaskCreate, error)

// ToUpdate turns the form into an update request. The form edits every
// field, so all the optional fields of the update are filled in; an
// empty due date clears any existing one.
func (f *TaskForm) ToUpdate() (*objects.TaskUpdate, error) {
	var title = strings.TrimSpace(f.Title)

	if title == "" {
		return nil, ErrNoTitle
	}

	var (
		err  error
		due  *time.Time
		prio priority.Priority
		rec  recurrence.Recurrence
	)

	if due, err = ComposeDue(f.DueDate, f.DueTime); err != nil {
		return nil, err
	} else if prio, err = priority.FromString(f.Priority); err != nil {
		return nil, err
	} else if rec, err = recurrence.FromString(f.Recurrence); err != nil {
		return nil, err
	}

	var (
		desc = strings.TrimSpace(f.Description)
		tags = ParseTags(f.Tags)
	)

	return &objects.TaskUpdate{
		Title:       title,
		Description: &desc,
		Priority:    &prio,
		Tags:        &tags,
		Due:         due,
		ClearDue:    due == nil,
		Recurrence:  &rec,
	}, nil
} // func (f *TaskForm) ToUpdate() (*objects.TaskUpdate, error)
