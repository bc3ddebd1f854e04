// /home/krylon/go/src/github.com/blicero/ariadne/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-02 19:48:50 krylon>

// Package database provides the persistence layer of the backend.
// All access to the underlying SQLite database goes through this
// package.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/database/query"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/priority"
	"github.com/blicero/ariadne/objects/recurrence"
	"github.com/blicero/krylib"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pquerna/ffjson/ffjson"
)

var (
	openLock sync.Mutex
	idCnt    int64
)

const retryDelay = time.Millisecond * 25

func worthARetry(e error) bool {
	var se sqlite3.Error
	return errors.As(e, &se) &&
		(se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked)
} // func worthARetry(e error) bool

// Database is a wrapper around the database connection, providing
// prepared statements and transaction handling.
type Database struct {
	id        int64
	db        *sql.DB
	tx        *sql.Tx
	log       *log.Logger
	path      string
	stmtTable map[query.ID]*sql.Stmt
}

// Open opens the database at the given path, creating and initializing
// it if it does not exist yet.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		d        = &Database{
			path:      path,
			stmtTable: make(map[query.ID]*sql.Stmt),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	d.id = idCnt

	if d.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		d.log.Printf("[ERROR] Failed to check if %s exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if d.db, err = sql.Open("sqlite3", connstring); err != nil {
		d.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	d.db.SetMaxOpenConns(1)
	d.db.SetMaxIdleConns(1)

	if !dbExists {
		if err = d.initialize(); err != nil {
			var e2 error
			if e2 = d.db.Close(); e2 != nil {
				d.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
			}
			return nil, err
		}
	}

	return d, nil
} // func Open(path string) (*Database, error)

func (d *Database) initialize() error {
	var (
		err error
		tx  *sql.Tx
	)

	if tx, err = d.db.Begin(); err != nil {
		d.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range initQueries {
		if _, err = tx.Exec(q); err != nil {
			d.log.Printf("[ERROR] Cannot execute init query:\n%s\n%s\n",
				q,
				err.Error())
			if rbErr := tx.Rollback(); rbErr != nil {
				d.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
			}
			return err
		}
	}

	return tx.Commit()
} // func (d *Database) initialize() error

// Close closes the database connection and all prepared statements.
func (d *Database) Close() error {
	var err error

	for key, stmt := range d.stmtTable {
		if err = stmt.Close(); err != nil {
			d.log.Printf("[ERROR] Cannot close statement %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(d.stmtTable, key)
	}

	if err = d.db.Close(); err != nil {
		d.log.Printf("[ERROR] Cannot close database: %s\n",
			err.Error())
		return err
	}

	d.db = nil
	return nil
} // func (d *Database) Close() error

func (d *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt *sql.Stmt
		ok   bool
		err  error
	)

	if stmt, ok = d.stmtTable[id]; ok {
		return stmt, nil
	}

PREPARE_QUERY:
	if stmt, err = d.db.Prepare(dbQueries[id]); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto PREPARE_QUERY
		}

		d.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	d.stmtTable[id] = stmt
	return stmt, nil
} // func (d *Database) getQuery(id query.ID) (*sql.Stmt, error)

// Begin starts a transaction.
func (d *Database) Begin() error {
	var err error

	if d.tx != nil {
		return fmt.Errorf("Database %d already has an open transaction",
			d.id)
	}

BEGIN_TX:
	if d.tx, err = d.db.Begin(); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto BEGIN_TX
		}

		d.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (d *Database) Begin() error

// Commit commits the open transaction.
func (d *Database) Commit() error {
	var err error

	if d.tx == nil {
		return fmt.Errorf("Database %d has no open transaction to commit",
			d.id)
	}

	if err = d.tx.Commit(); err != nil {
		d.log.Printf("[ERROR] Cannot commit transaction: %s\n",
			err.Error())
		return err
	}

	d.tx = nil
	return nil
} // func (d *Database) Commit() error

// Rollback aborts the open transaction.
func (d *Database) Rollback() error {
	var err error

	if d.tx == nil {
		return fmt.Errorf("Database %d has no open transaction to rollback",
			d.id)
	}

	if err = d.tx.Rollback(); err != nil {
		d.log.Printf("[ERROR] Cannot rollback transaction: %s\n",
			err.Error())
		return err
	}

	d.tx = nil
	return nil
} // func (d *Database) Rollback() error

func (d *Database) stmt(id query.ID) (*sql.Stmt, error) {
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = d.getQuery(id); err != nil {
		return nil, err
	}

	if d.tx != nil {
		stmt = d.tx.Stmt(stmt)
	}

	return stmt, nil
} // func (d *Database) stmt(id query.ID) (*sql.Stmt, error)

// TaskAdd adds a Task to the database. If the Task has no ID yet, a
// fresh UUID is assigned.
func (d *Database) TaskAdd(t *objects.Task) error {
	var (
		err  error
		stmt *sql.Stmt
		tags []byte
		now  = time.Now()
	)

	if stmt, err = d.stmt(query.TaskAdd); err != nil {
		return err
	}

	if t.ID == "" {
		t.ID = common.GetUUID()
	}

	if t.Tags == nil {
		tags = []byte("[]")
	} else if tags, err = ffjson.Marshal(t.Tags); err != nil {
		d.log.Printf("[ERROR] Cannot serialize tags of Task %q: %s\n",
			t.Title,
			err.Error())
		return err
	}

	var due *int64
	if t.Due != nil {
		var stamp = t.Due.Unix()
		due = &stamp
	}

	t.Created = now
	t.Changed = now

EXEC_QUERY:
	if _, err = stmt.Exec(
		t.ID,
		t.OwnerID,
		t.Title,
		t.Description,
		t.Priority,
		string(tags),
		due,
		t.Recurrence,
		nullStr(t.ParentID),
		now.Unix(),
		now.Unix()); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot add Task %q to database: %s\n",
			t.Title,
			err.Error())
		return err
	}

	return nil
} // func (d *Database) TaskAdd(t *objects.Task) error

// TaskUpdate updates the mutable fields of a Task.
func (d *Database) TaskUpdate(t *objects.Task) error {
	var (
		err  error
		stmt *sql.Stmt
		tags []byte
		now  = time.Now()
	)

	if stmt, err = d.stmt(query.TaskUpdate); err != nil {
		return err
	}

	if t.Tags == nil {
		tags = []byte("[]")
	} else if tags, err = ffjson.Marshal(t.Tags); err != nil {
		d.log.Printf("[ERROR] Cannot serialize tags of Task %q: %s\n",
			t.Title,
			err.Error())
		return err
	}

	var due *int64
	if t.Due != nil {
		var stamp = t.Due.Unix()
		due = &stamp
	}

EXEC_QUERY:
	if _, err = stmt.Exec(
		t.Title,
		t.Description,
		t.Priority,
		string(tags),
		due,
		t.Recurrence,
		now.Unix(),
		t.ID); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot update Task %s: %s\n",
			t.ID,
			err.Error())
		return err
	}

	t.Changed = now
	return nil
} // func (d *Database) TaskUpdate(t *objects.Task) error

// TaskSetCompleted sets or clears a Task's completion flag.
func (d *Database) TaskSetCompleted(t *objects.Task, flag bool) error {
	var (
		err  error
		stmt *sql.Stmt
		now  = time.Now()
	)

	if stmt, err = d.stmt(query.TaskSetCompleted); err != nil {
		return err
	}

EXEC_QUERY:
	if _, err = stmt.Exec(flag, now.Unix(), t.ID); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot set completion flag on Task %s: %s\n",
			t.ID,
			err.Error())
		return err
	}

	t.Completed = flag
	t.Changed = now
	return nil
} // func (d *Database) TaskSetCompleted(t *objects.Task, flag bool) error

// TaskDelete soft-deletes a Task, recording the time and the reason.
func (d *Database) TaskDelete(t *objects.Task, reason string) error {
	var (
		err  error
		stmt *sql.Stmt
		now  = time.Now()
	)

	if stmt, err = d.stmt(query.TaskDelete); err != nil {
		return err
	}

EXEC_QUERY:
	if _, err = stmt.Exec(now.Unix(), reason, now.Unix(), t.ID); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot delete Task %s: %s\n",
			t.ID,
			err.Error())
		return err
	}

	t.DeletedAt = &now
	t.DeletionReason = reason
	t.Changed = now
	return nil
} // func (d *Database) TaskDelete(t *objects.Task, reason string) error

// TaskRestore un-deletes a soft-deleted Task.
func (d *Database) TaskRestore(t *objects.Task) error {
	var (
		err  error
		stmt *sql.Stmt
		now  = time.Now()
	)

	if stmt, err = d.stmt(query.TaskRestore); err != nil {
		return err
	}

EXEC_QUERY:
	if _, err = stmt.Exec(now.Unix(), t.ID); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot restore Task %s: %s\n",
			t.ID,
			err.Error())
		return err
	}

	t.DeletedAt = nil
	t.DeletionReason = ""
	t.Changed = now
	return nil
} // func (d *Database) TaskRestore(t *objects.Task) error

// TaskGetByID looks up a Task by its ID, returning nil (and no error)
// if no such Task exists.
func (d *Database) TaskGetByID(id string) (*objects.Task, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = d.stmt(query.TaskGetByID); err != nil {
		return nil, err
	}

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot query Task %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	if !rows.Next() {
		return nil, nil
	}

	var (
		t                      = objects.Task{ID: id}
		tags                   string
		parentID               sql.NullString
		due, deleted           sql.NullInt64
		prio, rec              uint8
		createdRaw, changedRaw int64
	)

	if err = rows.Scan(
		&t.OwnerID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&prio,
		&tags,
		&due,
		&rec,
		&parentID,
		&deleted,
		&t.DeletionReason,
		&createdRaw,
		&changedRaw); err != nil {
		d.log.Printf("[ERROR] Cannot scan row for Task %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	t.Priority = priority.Priority(prio)
	t.Recurrence = recurrence.Recurrence(rec)
	t.ParentID = parentID.String
	t.Created = time.Unix(createdRaw, 0)
	t.Changed = time.Unix(changedRaw, 0)

	if due.Valid {
		var stamp = time.Unix(due.Int64, 0)
		t.Due = &stamp
	}

	if deleted.Valid {
		var stamp = time.Unix(deleted.Int64, 0)
		t.DeletedAt = &stamp
	}

	if err = ffjson.Unmarshal([]byte(tags), &t.Tags); err != nil {
		d.log.Printf("[ERROR] Cannot de-serialize tags of Task %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	return &t, nil
} // func (d *Database) TaskGetByID(id string) (*objects.Task, error)

// TaskGetByOwner loads all of a user's active (i.e. not deleted) Tasks.
func (d *Database) TaskGetByOwner(owner string) ([]objects.Task, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = d.stmt(query.TaskGetByOwner); err != nil {
		return nil, err
	}

EXEC_QUERY:
	if rows, err = stmt.Query(owner); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot query Tasks of user %s: %s\n",
			owner,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	var tasks = make([]objects.Task, 0, 16)

	for rows.Next() {
		var (
			t                      = objects.Task{OwnerID: owner}
			tags                   string
			parentID               sql.NullString
			due                    sql.NullInt64
			prio, rec              uint8
			createdRaw, changedRaw int64
		)

		if err = rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Completed,
			&prio,
			&tags,
			&due,
			&rec,
			&parentID,
			&createdRaw,
			&changedRaw); err != nil {
			d.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		t.Priority = priority.Priority(prio)
		t.Recurrence = recurrence.Recurrence(rec)
		t.ParentID = parentID.String
		t.Created = time.Unix(createdRaw, 0)
		t.Changed = time.Unix(changedRaw, 0)

		if due.Valid {
			var stamp = time.Unix(due.Int64, 0)
			t.Due = &stamp
		}

		if err = ffjson.Unmarshal([]byte(tags), &t.Tags); err != nil {
			d.log.Printf("[ERROR] Cannot de-serialize tags of Task %s: %s\n",
				t.ID,
				err.Error())
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, nil
} // func (d *Database) TaskGetByOwner(owner string) ([]objects.Task, error)

// TaskGetDeleted loads all of a user's soft-deleted Tasks.
func (d *Database) TaskGetDeleted(owner string) ([]objects.Task, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = d.stmt(query.TaskGetDeleted); err != nil {
		return nil, err
	}

EXEC_QUERY:
	if rows, err = stmt.Query(owner); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot query deleted Tasks of user %s: %s\n",
			owner,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	var tasks = make([]objects.Task, 0, 8)

	for rows.Next() {
		var (
			t                      = objects.Task{OwnerID: owner}
			tags                   string
			parentID               sql.NullString
			due, deleted           sql.NullInt64
			prio, rec              uint8
			createdRaw, changedRaw int64
		)

		if err = rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Completed,
			&prio,
			&tags,
			&due,
			&rec,
			&parentID,
			&deleted,
			&t.DeletionReason,
			&createdRaw,
			&changedRaw); err != nil {
			d.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		t.Priority = priority.Priority(prio)
		t.Recurrence = recurrence.Recurrence(rec)
		t.ParentID = parentID.String
		t.Created = time.Unix(createdRaw, 0)
		t.Changed = time.Unix(changedRaw, 0)

		if due.Valid {
			var stamp = time.Unix(due.Int64, 0)
			t.Due = &stamp
		}

		if deleted.Valid {
			var stamp = time.Unix(deleted.Int64, 0)
			t.DeletedAt = &stamp
		}

		if err = ffjson.Unmarshal([]byte(tags), &t.Tags); err != nil {
			d.log.Printf("[ERROR] Cannot de-serialize tags of Task %s: %s\n",
				t.ID,
				err.Error())
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, nil
} // func (d *Database) TaskGetDeleted(owner string) ([]objects.Task, error)

// UserAdd adds a User to the database. If the User has no ID yet, a
// fresh UUID is assigned.
func (d *Database) UserAdd(u *objects.User) error {
	var (
		err  error
		stmt *sql.Stmt
		now  = time.Now()
	)

	if stmt, err = d.stmt(query.UserAdd); err != nil {
		return err
	}

	if u.ID == "" {
		u.ID = common.GetUUID()
	}

	u.Created = now

EXEC_QUERY:
	if _, err = stmt.Exec(u.ID, u.Email, u.Password, now.Unix()); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot add User %s to database: %s\n",
			u.Email,
			err.Error())
		return err
	}

	return nil
} // func (d *Database) UserAdd(u *objects.User) error

// UserGetByEmail looks up a User by their email address, returning nil
// (and no error) if no such User exists.
func (d *Database) UserGetByEmail(email string) (*objects.User, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = d.stmt(query.UserGetByEmail); err != nil {
		return nil, err
	}

EXEC_QUERY:
	if rows, err = stmt.Query(email); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot query User %s: %s\n",
			email,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	if !rows.Next() {
		return nil, nil
	}

	var (
		u          = objects.User{Email: email}
		createdRaw int64
	)

	if err = rows.Scan(&u.ID, &u.Password, &createdRaw); err != nil {
		d.log.Printf("[ERROR] Cannot scan row for User %s: %s\n",
			email,
			err.Error())
		return nil, err
	}

	u.Created = time.Unix(createdRaw, 0)
	return &u, nil
} // func (d *Database) UserGetByEmail(email string) (*objects.User, error)

// UserGetByID looks up a User by their ID, returning nil (and no
// error) if no such User exists.
func (d *Database) UserGetByID(id string) (*objects.User, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = d.stmt(query.UserGetByID); err != nil {
		return nil, err
	}

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			time.Sleep(retryDelay)
			goto EXEC_QUERY
		}

		d.log.Printf("[ERROR] Cannot query User %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	if !rows.Next() {
		return nil, nil
	}

	var (
		u          = objects.User{ID: id}
		createdRaw int64
	)

	if err = rows.Scan(&u.Email, &u.Password, &createdRaw); err != nil {
		d.log.Printf("[ERROR] Cannot scan row for User %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	u.Created = time.Unix(createdRaw, 0)
	return &u, nil
} // func (d *Database) UserGetByID(id string) (*objects.User, error)

func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
} // func nullStr(s string) *string
