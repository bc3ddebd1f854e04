// /home/krylon/go/src/github.com/blicero/ariadne/objects/response.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-12 17:40:29 krylon>

package objects

//go:generate ffjson response.go

// Response is what the backend sends to a client after processing a
// mutating request.
type Response struct {
	ID      int64
	Status  bool
	Message string
}

// TaskListResponse is the result of listing a user's active Tasks.
// The counts refer to the tasks in the listing, not to the user's
// entire collection.
type TaskListResponse struct {
	Tasks         []Task `json:"tasks"`
	Total         int    `json:"total"`
	OverdueCount  int    `json:"overdue_count"`
	DueTodayCount int    `json:"due_today_count"`
}

// DeletedTaskListResponse is the result of listing a user's
// soft-deleted Tasks.
type DeletedTaskListResponse struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

// AuthResponse is what the backend returns on successful signup or login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}
