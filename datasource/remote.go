// /home/krylon/go/src/github.com/blicero/ariadne/datasource/remote.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-02 21:44:19 krylon>

package datasource

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
	"github.com/pquerna/ffjson/ffjson"
)

// Remote is a Source that talks to the backend over HTTP.
type Remote struct {
	Server *url.URL
	Client http.Client
	log    *log.Logger
	lock   sync.RWMutex
	token  string
}

// NewRemote creates a Remote talking to the backend at the given address.
func NewRemote(srv string) (*Remote, error) {
	var (
		err error
		r   = &Remote{
			Client: http.Client{
				Timeout: time.Second * 10,
			},
		}
	)

	if r.log, err = common.GetLogger(logdomain.Client); err != nil {
		return nil, err
	} else if r.Server, err = url.Parse(srv); err != nil {
		r.log.Printf("[ERROR] Cannot parse URL %q: %s\n",
			srv,
			err.Error())
		return nil, err
	}

	r.Server.Scheme = "http"
	r.Server.Path = ""

	return r, nil
} // func NewRemote(srv string) (*Remote, error)

// SetToken installs the bearer token to use on subsequent requests.
func (r *Remote) SetToken(token string) {
	r.lock.Lock()
	r.token = token
	r.lock.Unlock()
} // func (r *Remote) SetToken(token string)

// ClearToken discards the bearer token.
func (r *Remote) ClearToken() {
	r.lock.Lock()
	r.token = ""
	r.lock.Unlock()
} // func (r *Remote) ClearToken()

func (r *Remote) getToken() string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.token
} // func (r *Remote) getToken() string

// request performs one HTTP round trip. A non-nil body is serialized as
// JSON; a non-nil dst gets the response body de-serialized into it.
func (r *Remote) request(method, path string, query url.Values, body, dst interface{}) error {
	var (
		err     error
		sendBuf []byte
		rcvBuf  bytes.Buffer
		req     *http.Request
		hres    *http.Response
		addr    = *r.Server
	)

	addr.Path = path
	if query != nil {
		addr.RawQuery = query.Encode()
	}

	var rbody io.Reader

	if body != nil {
		if sendBuf, err = ffjson.Marshal(body); err != nil {
			r.log.Printf("[ERROR] Cannot serialize request body: %s\n",
				err.Error())
			return err
		}

		defer ffjson.Pool(sendBuf)
		rbody = bytes.NewReader(sendBuf)
	}

	if req, err = http.NewRequest(method, addr.String(), rbody); err != nil {
		r.log.Printf("[ERROR] Cannot create request for %s: %s\n",
			addr.String(),
			err.Error())
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := r.getToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if hres, err = r.Client.Do(req); err != nil {
		r.log.Printf("[ERROR] %s request to %s failed: %s\n",
			method,
			addr.String(),
			err.Error())
		return err
	}

	defer hres.Body.Close() // nolint: errcheck

	switch hres.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// carry on below
	case http.StatusUnauthorized:
		// The token is no good, get rid of it.
		r.ClearToken()
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalid
	default:
		var msg = fmt.Sprintf("Unexpected status from %s: %s",
			addr.String(),
			hres.Status)
		r.log.Printf("[ERROR] %s\n", msg)
		return fmt.Errorf("%s", msg)
	}

	if dst == nil {
		return nil
	}

	if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		r.log.Printf("[ERROR] Failed to read response body from %s: %s\n",
			addr.String(),
			err.Error())
		return err
	} else if err = ffjson.Unmarshal(rcvBuf.Bytes(), dst); err != nil {
		r.log.Printf("[ERROR] Cannot de-serialize response from %s: %s\n",
			addr.String(),
			err.Error())
		return err
	}

	return nil
} // func (r *Remote) request(...) error

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new account and installs the returned token.
func (r *Remote) Signup(email, password string) (*objects.AuthResponse, error) {
	var (
		err  error
		auth objects.AuthResponse
	)

	if err = r.request(http.MethodPost, "/api/auth/signup", nil,
		&credentials{Email: email, Password: password}, &auth); err != nil {
		return nil, err
	}

	r.SetToken(auth.AccessToken)
	return &auth, nil
} // func (r *Remote) Signup(email, password string) (*objects.AuthResponse, error)

// Login authenticates against the backend and installs the returned token.
func (r *Remote) Login(email, password string) (*objects.AuthResponse, error) {
	var (
		err  error
		auth objects.AuthResponse
	)

	if err = r.request(http.MethodPost, "/api/auth/login", nil,
		&credentials{Email: email, Password: password}, &auth); err != nil {
		return nil, err
	}

	r.SetToken(auth.AccessToken)
	return &auth, nil
} // func (r *Remote) Login(email, password string) (*objects.AuthResponse, error)

func filterValues(f *objects.Filters) url.Values {
	if f == nil {
		return nil
	}

	var values = make(url.Values)

	if f.Completed != nil {
		values.Set("completed", strconv.FormatBool(*f.Completed))
	}
	if f.Priority != nil {
		values.Set("priority", f.Priority.String())
	}
	if f.Tag != "" {
		values.Set("tag", f.Tag)
	}
	if f.DueStatus != objects.DueAny {
		values.Set("due_status", string(f.DueStatus))
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.SortBy != "" {
		values.Set("sort_by", string(f.SortBy))
	}
	if f.SortOrder != "" {
		values.Set("sort_order", string(f.SortOrder))
	}

	return values
} // func filterValues(f *objects.Filters) url.Values

// ListTasks fetches the owner's active Tasks per the given Filters.
func (r *Remote) ListTasks(owner string, f *objects.Filters) (*objects.TaskListResponse, error) {
	var (
		err  error
		res  objects.TaskListResponse
		path = fmt.Sprintf("/api/%s/tasks", owner)
	)

	if err = r.request(http.MethodGet, path, filterValues(f), nil, &res); err != nil {
		return nil, err
	}

	return &res, nil
} // func (r *Remote) ListTasks(owner string, f *objects.Filters) (*objects.TaskListResponse, error)

// ListDeletedTasks fetches the owner's soft-deleted Tasks.
func (r *Remote) ListDeletedTasks(owner string) (*objects.DeletedTaskListResponse, error) {
	var (
		err  error
		res  objects.DeletedTaskListResponse
		path = fmt.Sprintf("/api/%s/tasks/deleted", owner)
	)

	if err = r.request(http.MethodGet, path, nil, nil, &res); err != nil {
		return nil, err
	}

	return &res, nil
} // func (r *Remote) ListDeletedTasks(owner string) (*objects.DeletedTaskListResponse, error)

// CreateTask submits a new Task to the backend.
func (r *Remote) CreateTask(owner string, c *objects.TaskCreate) (*objects.Task, error) {
	var (
		err  error
		t    objects.Task
		path = fmt.Sprintf("/api/%s/tasks", owner)
	)

	if err = r.request(http.MethodPost, path, nil, c, &t); err != nil {
		return nil, err
	}

	return &t, nil
} // func (r *Remote) CreateTask(owner string, c *objects.TaskCreate) (*objects.Task, error)

// UpdateTask submits an update for an existing Task.
func (r *Remote) UpdateTask(owner, id string, u *objects.TaskUpdate) (*objects.Task, error) {
	var (
		err  error
		t    objects.Task
		path = fmt.Sprintf("/api/%s/tasks/%s", owner, id)
	)

	if err = r.request(http.MethodPut, path, nil, u, &t); err != nil {
		return nil, err
	}

	return &t, nil
} // func (r *Remote) UpdateTask(owner, id string, u *objects.TaskUpdate) (*objects.Task, error)

// DeleteTask soft-deletes a Task, with the given reason.
func (r *Remote) DeleteTask(owner, id, reason string) error {
	var path = fmt.Sprintf("/api/%s/tasks/%s", owner, id)

	return r.request(http.MethodDelete, path, nil,
		&objects.TaskDelete{Reason: reason}, nil)
} // func (r *Remote) DeleteTask(owner, id, reason string) error

// RestoreTask un-deletes a soft-deleted Task.
func (r *Remote) RestoreTask(owner, id string) (*objects.Task, error) {
	var (
		err  error
		t    objects.Task
		path = fmt.Sprintf("/api/%s/tasks/%s/restore", owner, id)
	)

	if err = r.request(http.MethodPost, path, nil, nil, &t); err != nil {
		return nil, err
	}

	return &t, nil
} // func (r *Remote) RestoreTask(owner, id string) (*objects.Task, error)

// ToggleComplete flips a Task's completion flag on the backend.
func (r *Remote) ToggleComplete(owner, id string) (*objects.Task, error) {
	var (
		err  error
		t    objects.Task
		path = fmt.Sprintf("/api/%s/tasks/%s/complete", owner, id)
	)

	if err = r.request(http.MethodPatch, path, nil, nil, &t); err != nil {
		return nil, err
	}

	return &t, nil
} // func (r *Remote) ToggleComplete(owner, id string) (*objects.Task, error)
