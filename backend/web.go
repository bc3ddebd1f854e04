// /home/krylon/go/src/github.com/blicero/ariadne/backend/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 05. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-04 21:36:48 krylon>

package backend

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blicero/ariadne/database"
	"github.com/blicero/ariadne/objects"
	"github.com/gorilla/mux"
	"github.com/pquerna/ffjson/ffjson"
)

func (d *Daemon) initWebHandlers() error {
	d.router.HandleFunc("/api/auth/signup", d.handleSignup).Methods("POST")
	d.router.HandleFunc("/api/auth/login", d.handleLogin).Methods("POST")
	d.router.HandleFunc("/api/{owner}/tasks", d.handleTaskList).Methods("GET")
	d.router.HandleFunc("/api/{owner}/tasks", d.handleTaskCreate).Methods("POST")
	d.router.HandleFunc("/api/{owner}/tasks/deleted", d.handleTaskListDeleted).Methods("GET")
	d.router.HandleFunc("/api/{owner}/tasks/{id}", d.handleTaskUpdate).Methods("PUT")
	d.router.HandleFunc("/api/{owner}/tasks/{id}", d.handleTaskDelete).Methods("DELETE")
	d.router.HandleFunc("/api/{owner}/tasks/{id}/restore", d.handleTaskRestore).Methods("POST")
	d.router.HandleFunc("/api/{owner}/tasks/{id}/complete", d.handleTaskToggle).Methods("PATCH")

	return nil
} // func (d *Daemon) initWebHandlers() error

func (d *Daemon) serveHTTP() {
	var err error

	defer d.log.Println("[INFO] Web server is shutting down")

	d.log.Printf("[INFO] REST API is going online at %s\n", d.web.Addr)

	if err = d.web.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			d.log.Printf("[ERROR] ListenAndServe returned an error: %s\n",
				err.Error())
		} else {
			d.log.Println("[INFO] HTTP Server has shut down.")
		}
	}
} // func (d *Daemon) serveHTTP()

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d *Daemon) handleSignup(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		creds credentials
		hash  string
		token string
		user  *objects.User
		db    *database.Database
	)

	if err = readBody(r, &creds); err != nil {
		d.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	creds.Email = strings.TrimSpace(strings.ToLower(creds.Email))

	if creds.Email == "" || creds.Password == "" {
		d.sendError(w, http.StatusUnprocessableEntity,
			"email and password must not be empty")
		return
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if user, err = db.UserGetByEmail(creds.Email); err != nil {
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	} else if user != nil {
		d.sendError(w, http.StatusBadRequest,
			fmt.Sprintf("account %s already exists", creds.Email))
		return
	} else if hash, err = hashPassword(creds.Password); err != nil {
		d.log.Printf("[ERROR] Cannot hash password: %s\n",
			err.Error())
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	user = &objects.User{
		Email:    creds.Email,
		Password: hash,
	}

	if err = db.UserAdd(user); err != nil {
		d.log.Printf("[ERROR] Cannot add User %s: %s\n",
			creds.Email,
			err.Error())
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	} else if token, err = issueToken(user); err != nil {
		d.log.Printf("[ERROR] Cannot issue token for %s: %s\n",
			creds.Email,
			err.Error())
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	d.sendJSON(w, http.StatusCreated, &objects.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		Email:       user.Email,
	})
} // func (d *Daemon) handleSignup(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleLogin(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		creds credentials
		token string
		user  *objects.User
		db    *database.Database
	)

	if err = readBody(r, &creds); err != nil {
		d.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	creds.Email = strings.TrimSpace(strings.ToLower(creds.Email))

	db = d.pool.Get()
	defer d.pool.Put(db)

	if user, err = db.UserGetByEmail(creds.Email); err != nil {
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	} else if user == nil || !checkPassword(user.Password, creds.Password) {
		// Same answer for both, no probing for accounts.
		d.sendError(w, http.StatusUnauthorized, "invalid credentials")
		return
	} else if token, err = issueToken(user); err != nil {
		d.log.Printf("[ERROR] Cannot issue token for %s: %s\n",
			creds.Email,
			err.Error())
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	d.sendJSON(w, http.StatusOK, &objects.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		Email:       user.Email,
	})
} // func (d *Daemon) handleLogin(w http.ResponseWriter, r *http.Request)

// authorize validates the request's bearer token and checks that it
// belongs to the owner named in the URL. On failure the error response
// has been sent already, and the returned flag is false.
func (d *Daemon) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	var (
		err     error
		subject string
		owner   = mux.Vars(r)["owner"]
	)

	if subject, err = checkToken(r); err != nil {
		d.sendError(w, http.StatusUnauthorized, "not authenticated")
		return "", false
	} else if subject != owner {
		d.sendError(w, http.StatusForbidden, "not your tasks")
		return "", false
	}

	return owner, true
} // func (d *Daemon) authorize(w http.ResponseWriter, r *http.Request) (string, bool)

func (d *Daemon) handleTaskList(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err     error
		owner   string
		ok      bool
		db      *database.Database
		tasks   []objects.Task
		filters *objects.Filters
	)

	if owner, ok = d.authorize(w, r); !ok {
		return
	} else if filters, err = parseFilters(r); err != nil {
		d.sendError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if tasks, err = db.TaskGetByOwner(owner); err != nil {
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var now = time.Now()

	for idx := range tasks {
		tasks[idx].ComputeFlags(now)
	}

	tasks = filters.Apply(tasks, now)

	var overdue, dueToday = objects.CountDue(tasks)

	d.sendJSON(w, http.StatusOK, &objects.TaskListResponse{
		Tasks:         tasks,
		Total:         len(tasks),
		OverdueCount:  overdue,
		DueTodayCount: dueToday,
	})
} // func (d *Daemon) handleTaskList(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleTaskListDeleted(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		owner string
		ok    bool
		db    *database.Database
		tasks []objects.Task
	)

	if owner, ok = d.authorize(w, r); !ok {
		return
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if tasks, err = db.TaskGetDeleted(owner); err != nil {
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var now = time.Now()

	for idx := range tasks {
		tasks[idx].ComputeFlags(now)
	}

	d.sendJSON(w, http.StatusOK, &objects.DeletedTaskListResponse{
		Tasks: tasks,
		Total: len(tasks),
	})
} // func (d *Daemon) handleTaskListDeleted(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		owner string
		ok    bool
		req   objects.TaskCreate
		task  objects.Task
		db    *database.Database
	)

	if owner, ok = d.authorize(w, r); !ok {
		return
	} else if err = readBody(r, &req); err != nil {
		d.sendError(w, http.StatusBadRequest, err.Error())
		return
	} else if strings.TrimSpace(req.Title) == "" {
		d.sendError(w, http.StatusUnprocessableEntity,
			"title must not be empty")
		return
	}

	task = objects.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Tags:        req.Tags,
		Due:         req.Due,
		Recurrence:  req.Recurrence,
		OwnerID:     owner,
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if err = db.TaskAdd(&task); err != nil {
		d.log.Printf("[ERROR] Cannot add Task %q: %s\n",
			task.Title,
			err.Error())
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	task.ComputeFlags(time.Now())
	d.sendJSON(w, http.StatusCreated, &task)
} // func (d *Daemon) handleTaskCreate(w http.ResponseWriter, r *http.Request)

// loadOwnTask looks up the task named in the URL and verifies it
// belongs to the given owner. On failure the error response has been
// sent already.
func (d *Daemon) loadOwnTask(w http.ResponseWriter, r *http.Request, db *database.Database, owner string) *objects.Task {
	var (
		err  error
		task *objects.Task
		id   = mux.Vars(r)["id"]
	)

	if task, err = db.TaskGetByID(id); err != nil {
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return nil
	} else if task == nil {
		d.sendError(w, http.StatusNotFound,
			fmt.Sprintf("no such task %s", id))
		return nil
	} else if task.OwnerID != owner {
		d.sendError(w, http.StatusForbidden, "not your task")
		return nil
	}

	return task
} // func (d *Daemon) loadOwnTask(...) *objects.Task

func (d *Daemon) handleTaskUpdate(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		owner string
		ok    bool
		req   objects.TaskUpdate
		task  *objects.Task
		db    *database.Database
	)

	if owner, ok = d.authorize(w, r); !ok {
		return
	} else if err = readBody(r, &req); err != nil {
		d.sendError(w, http.StatusBadRequest, err.Error())
		return
	} else if strings.TrimSpace(req.Title) == "" {
		d.sendError(w, http.StatusUnprocessableEntity,
			"title must not be empty")
		return
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if task = d.loadOwnTask(w, r, db, owner); task == nil {
		return
	} else if task.IsDeleted() {
		d.sendError(w, http.StatusNotFound,
			fmt.Sprintf("no such task %s", task.ID))
		return
	}

	task.Title = req.Title
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Tags != nil {
		task.Tags = *req.Tags
	}
	if req.ClearDue {
		task.Due = nil
	} else if req.Due != nil {
		task.Due = req.Due
	}
	if req.Recurrence != nil {
		task.Recurrence = *req.Recurrence
	}

	if err = db.TaskUpdate(task); err != nil {
		d.log.Printf("[ERROR] Cannot update Task %s: %s\n",
			task.ID,
			err.Error())
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	task.ComputeFlags(time.Now())
	d.sendJSON(w, http.StatusOK, task)
} // func (d *Daemon) handleTaskUpdate(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		owner string
		ok    bool
		req   objects.TaskDelete
		task  *objects.Task
		db    *database.Database
		res   = objects.Response{ID: d.getID()}
	)

	if owner, ok = d.authorize(w, r); !ok {
		return
	} else if err = readBody(r, &req); err != nil {
		d.sendError(w, http.StatusBadRequest, err.Error())
		return
	} else if strings.TrimSpace(req.Reason) == "" {
		d.sendError(w, http.StatusUnprocessableEntity,
			"deletion reason must not be empty")
		return
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if task = d.loadOwnTask(w, r, db, owner); task == nil {
		return
	}

	if err = db.TaskDelete(task, req.Reason); err != nil {
		d.log.Printf("[ERROR] Cannot delete Task %s: %s\n",
			task.ID,
			err.Error())
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	res.Status = true
	res.Message = fmt.Sprintf("Task %s (%q) was deleted",
		task.ID,
		task.Title)
	d.sendJSON(w, http.StatusOK, &res)
} // func (d *Daemon) handleTaskDelete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleTaskRestore(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		owner string
		ok    bool
		task  *objects.Task
		db    *database.Database
	)

	if owner, ok = d.authorize(w, r); !ok {
		return
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if task = d.loadOwnTask(w, r, db, owner); task == nil {
		return
	}

	if err = db.TaskRestore(task); err != nil {
		d.log.Printf("[ERROR] Cannot restore Task %s: %s\n",
			task.ID,
			err.Error())
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	task.ComputeFlags(time.Now())
	d.sendJSON(w, http.StatusOK, task)
} // func (d *Daemon) handleTaskRestore(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleTaskToggle(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		owner string
		ok    bool
		task  *objects.Task
		db    *database.Database
	)

	if owner, ok = d.authorize(w, r); !ok {
		return
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if task = d.loadOwnTask(w, r, db, owner); task == nil {
		return
	} else if task.IsDeleted() {
		d.sendError(w, http.StatusNotFound,
			fmt.Sprintf("no such task %s", task.ID))
		return
	}

	// The flag flip and the spawned follow-up instance go into the
	// database together or not at all.
	if err = db.Begin(); err != nil {
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err = db.TaskSetCompleted(task, !task.Completed); err != nil {
		d.log.Printf("[ERROR] Cannot toggle Task %s: %s\n",
			task.ID,
			err.Error())
		db.Rollback() // nolint: errcheck
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Completing a recurring task spawns its next instance.
	if task.Completed {
		if next := task.NextInstance(); next != nil {
			if err = db.TaskAdd(next); err != nil {
				d.log.Printf("[ERROR] Cannot add follow-up of Task %s: %s\n",
					task.ID,
					err.Error())
				db.Rollback() // nolint: errcheck
				d.sendError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
	}

	if err = db.Commit(); err != nil {
		d.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	task.ComputeFlags(time.Now())
	d.sendJSON(w, http.StatusOK, task)
} // func (d *Daemon) handleTaskToggle(w http.ResponseWriter, r *http.Request)

//////////////////////////////////////////////////////////////////////////////////////////////////
/// Helpers //////////////////////////////////////////////////////////////////////////////////////
//////////////////////////////////////////////////////////////////////////////////////////////////

func readBody(r *http.Request, dst interface{}) error {
	var body, err = io.ReadAll(r.Body)

	if err != nil {
		return err
	}

	return ffjson.Unmarshal(body, dst)
} // func readBody(r *http.Request, dst interface{}) error

func (d *Daemon) sendJSON(w http.ResponseWriter, status int, payload interface{}) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(payload); err != nil {
		d.log.Printf("[ERROR] Cannot serialize response %#v: %s\n",
			payload,
			err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendJSON(w http.ResponseWriter, status int, payload interface{})

func (d *Daemon) sendError(w http.ResponseWriter, status int, msg string) {
	d.sendJSON(w, status, &objects.Response{
		ID:      d.getID(),
		Message: msg,
	})
} // func (d *Daemon) sendError(w http.ResponseWriter, status int, msg string)
