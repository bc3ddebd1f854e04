// /home/krylon/go/src/github.com/blicero/ariadne/objects/priority/priority.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-04-19 18:54:10 krylon>

//go:generate stringer -type=Priority

// Package priority contains symbolic constants to specify
// how important a Task is.
package priority

import (
	"fmt"
	"strings"
)

// Priority describes how urgently a Task wants to be dealt with.
type Priority uint8

// Low means the Task can wait, High means it cannot.
const (
	Low Priority = iota
	Medium
	High
)

// Weight returns the Priority's weight for sorting purposes.
// High outweighs Medium outweighs Low.
func (p Priority) Weight() int {
	switch p {
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	default:
		return 0
	}
} // func (p Priority) Weight() int

// FromString parses a Priority from its name, ignoring case.
func FromString(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium", "":
		return Medium, nil
	case "high":
		return High, nil
	default:
		return Medium, fmt.Errorf("Invalid Priority %q", s)
	}
} // func FromString(s string) (Priority, error)

// MarshalJSON implements the json.Marshaler interface.
// Priorities travel as lowercase strings on the wire.
func (p Priority) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strings.ToLower(p.String()) + `"`), nil
} // func (p Priority) MarshalJSON() ([]byte, error)

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var (
		err error
		val Priority
		s   = strings.Trim(string(data), `"`)
	)

	if val, err = FromString(s); err != nil {
		return err
	}

	*p = val
	return nil
} // func (p *Priority) UnmarshalJSON(data []byte) error
