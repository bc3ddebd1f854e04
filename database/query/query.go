// /home/krylon/go/src/github.com/blicero/ariadne/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-02 18:37:29 krylon>

// Package query provides symbolic constants for identifying SQL queries.
package query

//go:generate stringer -type=ID

type ID uint8

const (
	TaskAdd ID = iota
	TaskUpdate
	TaskSetCompleted
	TaskDelete
	TaskRestore
	TaskGetByID
	TaskGetByOwner
	TaskGetDeleted
	UserAdd
	UserGetByEmail
	UserGetByID
)
