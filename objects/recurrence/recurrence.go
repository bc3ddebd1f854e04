// /home/krylon/go/src/github.com/blicero/ariadne/objects/recurrence/recurrence.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-04-19 19:01:27 krylon>

//go:generate stringer -type=Recurrence

// Package recurrence contains symbolic constants to specify
// at what intervals a Task repeats.
package recurrence

import (
	"fmt"
	"strings"
	"time"
)

// Recurrence describes if and how often a Task repeats.
type Recurrence uint8

// None means a Task happens only once.
const (
	None Recurrence = iota
	Daily
	Weekly
	Monthly
)

// FromString parses a Recurrence from its name, ignoring case.
func FromString(s string) (Recurrence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	default:
		return None, fmt.Errorf("Invalid Recurrence %q", s)
	}
} // func FromString(s string) (Recurrence, error)

// Next returns the due time of the instance that follows one due at t.
// Monthly advances by a fixed 30 days, not by calendar month.
func (r Recurrence) Next(t time.Time) time.Time {
	switch r {
	case Daily:
		return t.AddDate(0, 0, 1)
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Monthly:
		return t.AddDate(0, 0, 30)
	default:
		return t
	}
} // func (r Recurrence) Next(t time.Time) time.Time

// MarshalJSON implements the json.Marshaler interface.
func (r Recurrence) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strings.ToLower(r.String()) + `"`), nil
} // func (r Recurrence) MarshalJSON() ([]byte, error)

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *Recurrence) UnmarshalJSON(data []byte) error {
	var (
		err error
		val Recurrence
		s   = strings.Trim(string(data), `"`)
	)

	if val, err = FromString(s); err != nil {
		return err
	}

	*r = val
	return nil
} // func (r *Recurrence) UnmarshalJSON(data []byte) error
