// /home/krylon/go/src/github.com/blicero/ariadne/objects/toast.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-04-22 16:02:17 krylon>

package objects

import (
	"time"

	"github.com/blicero/ariadne/objects/severity"
)

// Toast is a short-lived in-app alert message. It lives in the toast
// engine's queue from creation until its timer fires or the user
// dismisses it.
type Toast struct {
	ID       string
	Message  string
	Severity severity.Severity
	Created  time.Time
	Duration time.Duration
}
