// /home/krylon/go/src/github.com/blicero/ariadne/objects/user.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-04-02 19:11:38 krylon>

package objects

import "time"

// User is an account that owns Tasks. The Password field holds the
// bcrypt hash, never the cleartext, and stays out of any JSON we emit.
type User struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Created  time.Time `json:"created_at"`
}
