// /home/krylon/go/src/github.com/blicero/ariadne/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-02 18:40:11 krylon>

package database

var initQueries = []string{
	`
CREATE TABLE user (
    id       TEXT PRIMARY KEY,
    email    TEXT UNIQUE NOT NULL,
    password TEXT NOT NULL,
    created  INTEGER NOT NULL
)
`,
	`
CREATE TABLE task (
    id              TEXT PRIMARY KEY,
    owner_id        TEXT NOT NULL,
    title           TEXT NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    completed       INTEGER NOT NULL DEFAULT 0,
    priority        INTEGER NOT NULL DEFAULT 1,
    tags            TEXT NOT NULL DEFAULT '[]',
    due             INTEGER,
    recurrence      INTEGER NOT NULL DEFAULT 0,
    parent_id       TEXT,
    deleted_at      INTEGER,
    deletion_reason TEXT NOT NULL DEFAULT '',
    created         INTEGER NOT NULL,
    changed         INTEGER NOT NULL,
    FOREIGN KEY (owner_id) REFERENCES user (id),
    FOREIGN KEY (parent_id) REFERENCES task (id),
    CHECK (title <> '')
)
`,
	"CREATE INDEX task_owner_idx ON task (owner_id)",
	"CREATE INDEX task_due_idx ON task (due)",
	"CREATE INDEX task_deleted_idx ON task (deleted_at)",
	"CREATE INDEX task_completed_idx ON task (completed)",
}
