// /home/krylon/go/src/github.com/blicero/ariadne/objects/severity/severity.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-03-14 21:44:06 krylon>

//go:generate stringer -type=Severity

// Package severity contains symbolic constants to classify
// in-app alert messages.
package severity

// Severity describes how alarming a Toast is meant to look.
type Severity uint8

// Info is the default.
const (
	Info Severity = iota
	Warning
	Success
	Error
)
