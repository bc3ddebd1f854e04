// /home/krylon/go/src/github.com/blicero/ariadne/cache/cache.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-02 22:14:31 krylon>

// Package cache keeps the task listings the client has fetched, keyed
// by the filter set that produced them, so switching between views does
// not hit the data source every time. Mutations invalidate the affected
// listings wholesale rather than patching them in place.
package cache

import (
	"log"
	"sync"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/datasource"
	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/ariadne/objects"
)

// Cache is a fetch-through cache in front of a datasource.Source.
type Cache struct {
	src     datasource.Source
	log     *log.Logger
	owner   string
	lock    sync.Mutex
	lists   map[string]*objects.TaskListResponse
	deleted *objects.DeletedTaskListResponse
}

// New creates a Cache for the given owner on top of the given Source.
func New(src datasource.Source, owner string) (*Cache, error) {
	var (
		err error
		c   = &Cache{
			src:   src,
			owner: owner,
			lists: make(map[string]*objects.TaskListResponse),
		}
	)

	if c.log, err = common.GetLogger(logdomain.Cache); err != nil {
		return nil, err
	}

	return c, nil
} // func New(src datasource.Source, owner string) (*Cache, error)

// Tasks returns the listing for the given Filters, fetching it from the
// Source if it is not cached yet.
func (c *Cache) Tasks(f *objects.Filters) (*objects.TaskListResponse, error) {
	var key = f.Signature()

	c.lock.Lock()
	defer c.lock.Unlock()

	if res, ok := c.lists[key]; ok {
		return res, nil
	}

	var (
		err error
		res *objects.TaskListResponse
	)

	if res, err = c.src.ListTasks(c.owner, f); err != nil {
		c.log.Printf("[ERROR] Cannot fetch task list %q: %s\n",
			key,
			err.Error())
		return nil, err
	}

	c.log.Printf("[TRACE] Cached task list %q (%d tasks)\n",
		key,
		res.Total)
	c.lists[key] = res
	return res, nil
} // func (c *Cache) Tasks(f *objects.Filters) (*objects.TaskListResponse, error)

// Deleted returns the listing of soft-deleted tasks, fetching it from
// the Source if it is not cached yet.
func (c *Cache) Deleted() (*objects.DeletedTaskListResponse, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.deleted != nil {
		return c.deleted, nil
	}

	var (
		err error
		res *objects.DeletedTaskListResponse
	)

	if res, err = c.src.ListDeletedTasks(c.owner); err != nil {
		c.log.Printf("[ERROR] Cannot fetch deleted task list: %s\n",
			err.Error())
		return nil, err
	}

	c.deleted = res
	return res, nil
} // func (c *Cache) Deleted() (*objects.DeletedTaskListResponse, error)

// InvalidateTasks drops all cached task listings.
func (c *Cache) InvalidateTasks() {
	c.lock.Lock()
	c.lists = make(map[string]*objects.TaskListResponse)
	c.lock.Unlock()
} // func (c *Cache) InvalidateTasks()

// InvalidateDeleted drops the cached listing of deleted tasks.
func (c *Cache) InvalidateDeleted() {
	c.lock.Lock()
	c.deleted = nil
	c.lock.Unlock()
} // func (c *Cache) InvalidateDeleted()
