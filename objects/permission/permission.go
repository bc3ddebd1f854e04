// /home/krylon/go/src/github.com/blicero/ariadne/objects/permission/permission.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-03-14 21:52:33 krylon>

//go:generate stringer -type=Permission

// Package permission contains symbolic constants describing whether
// the user allows us to pester them with notifications.
package permission

// Permission is the host environment's answer to the question of
// whether we may display notifications.
type Permission uint8

// Default means the user has not been asked yet.
const (
	Default Permission = iota
	Granted
	Denied
)
