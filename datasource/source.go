// /home/krylon/go/src/github.com/blicero/ariadne/datasource/source.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-02 20:31:08 krylon>

// Package datasource defines the interface the client uses to talk to
// its task storage, plus the two implementations: a remote one that
// speaks to the backend over HTTP, and an in-memory fixture for
// development and testing.
package datasource

import (
	"errors"

	"github.com/blicero/ariadne/objects"
)

// Sentinel errors returned by Source implementations.
var (
	ErrNotFound     = errors.New("no such task")
	ErrUnauthorized = errors.New("not authorized")
	ErrInvalid      = errors.New("invalid request")
)

// Source is the client's view of task storage. All listing results come
// back with the derived flags (overdue, due today) already computed.
type Source interface {
	ListTasks(owner string, f *objects.Filters) (*objects.TaskListResponse, error)
	ListDeletedTasks(owner string) (*objects.DeletedTaskListResponse, error)
	CreateTask(owner string, c *objects.TaskCreate) (*objects.Task, error)
	UpdateTask(owner, id string, u *objects.TaskUpdate) (*objects.Task, error)
	DeleteTask(owner, id, reason string) error
	RestoreTask(owner, id string) (*objects.Task, error)
	ToggleComplete(owner, id string) (*objects.Task, error)
}
