// /home/krylon/go/src/github.com/blicero/ariadne/objects/mutation.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-30 19:22:51 krylon>

package objects

import (
	"time"

	"github.com/blicero/ariadne/objects/priority"
	"github.com/blicero/ariadne/objects/recurrence"
)

//go:generate ffjson mutation.go

// TaskCreate carries the fields for creating a Task.
// A nil Tags slice means the Task has no tags.
type TaskCreate struct {
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Priority    priority.Priority     `json:"priority"`
	Tags        []string              `json:"tags,omitempty"`
	Due         *time.Time            `json:"due_date,omitempty"`
	Recurrence  recurrence.Recurrence `json:"recurrence"`
}

// TaskUpdate carries the fields for updating a Task.
// Nil pointer fields are left untouched by the update; ClearDue removes
// an existing due date (a nil Due alone means "unchanged").
type TaskUpdate struct {
	Title       string                 `json:"title"`
	Description *string                `json:"description,omitempty"`
	Priority    *priority.Priority     `json:"priority,omitempty"`
	Tags        *[]string              `json:"tags,omitempty"`
	Due         *time.Time             `json:"due_date,omitempty"`
	ClearDue    bool                   `json:"clear_due,omitempty"`
	Recurrence  *recurrence.Recurrence `json:"recurrence,omitempty"`
}

// TaskDelete carries the reason for soft-deleting a Task.
type TaskDelete struct {
	Reason string `json:"deletion_reason"`
}
