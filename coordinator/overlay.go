// /home/krylon/go/src/github.com/blicero/ariadne/coordinator/overlay.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-02 22:40:12 krylon>

package coordinator

import "github.com/blicero/ariadne/objects"

// Patch is the optimistic overlay for one Task while a mutation is in
// flight. Nil fields leave the underlying value visible.
type Patch struct {
	Completed *bool
}

// Resolve returns the Task as it should be displayed, i.e. the base
// state with the Patch applied on top. The base Task is not modified.
func Resolve(base *objects.Task, p *Patch) objects.Task {
	var t = *base

	if p != nil && p.Completed != nil {
		t.Completed = *p.Completed
	}

	return t
} // func Resolve(base *objects.Task, p *Patch) objects.Task
