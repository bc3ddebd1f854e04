// /home/krylon/go/src/github.com/blicero/ariadne/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-28 20:14:46 krylon>

package database

import "github.com/blicero/ariadne/database/query"

var dbQueries = map[query.ID]string{
	query.TaskAdd: `
INSERT INTO task (id, owner_id, title, description, priority, tags, due, recurrence, parent_id, created, changed)
VALUES           ( ?,        ?,     ?,           ?,        ?,    ?,   ?,          ?,         ?,       ?,       ?)
`,
	query.TaskUpdate: `
UPDATE task
SET title = ?, description = ?, priority = ?, tags = ?, due = ?, recurrence = ?, changed = ?
WHERE id = ?
`,
	query.TaskSetCompleted: `
UPDATE task
SET completed = ?, changed = ?
WHERE id = ?
`,
	query.TaskDelete: `
UPDATE task
SET deleted_at = ?, deletion_reason = ?, changed = ?
WHERE id = ?
`,
	query.TaskRestore: `
UPDATE task
SET deleted_at = NULL, deletion_reason = '', changed = ?
WHERE id = ?
`,
	query.TaskGetByID: `
SELECT
    owner_id,
    title,
    description,
    completed,
    priority,
    tags,
    due,
    recurrence,
    parent_id,
    deleted_at,
    deletion_reason,
    created,
    changed
FROM task
WHERE id = ?
`,
	query.TaskGetByOwner: `
SELECT
    id,
    title,
    description,
    completed,
    priority,
    tags,
    due,
    recurrence,
    parent_id,
    created,
    changed
FROM task
WHERE owner_id = ? AND deleted_at IS NULL
ORDER BY created DESC
`,
	query.TaskGetDeleted: `
SELECT
    id,
    title,
    description,
    completed,
    priority,
    tags,
    due,
    recurrence,
    parent_id,
    deleted_at,
    deletion_reason,
    created,
    changed
FROM task
WHERE owner_id = ? AND deleted_at IS NOT NULL
ORDER BY deleted_at DESC
`,
	query.UserAdd: `
INSERT INTO user (id, email, password, created)
VALUES           ( ?,     ?,        ?,       ?)
`,
	query.UserGetByEmail: `
SELECT
    id,
    password,
    created
FROM user
WHERE email = ?
`,
	query.UserGetByID: `
SELECT
    email,
    password,
    created
FROM user
WHERE id = ?
`,
}
