// /home/krylon/go/src/github.com/blicero/ariadne/database/pool.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-28 21:03:17 krylon>

package database

import (
	"sync"

	"github.com/blicero/ariadne/common"
)

// Pool is a fixed-size pool of database connections, so the backend's
// request handlers do not have to open fresh connections all the time.
type Pool struct {
	lock        sync.Mutex
	cond        *sync.Cond
	connections []*Database
}

// NewPool opens cnt database connections and returns the Pool
// containing them.
func NewPool(cnt int) (*Pool, error) {
	var (
		err  error
		pool = &Pool{
			connections: make([]*Database, 0, cnt),
		}
	)

	pool.cond = sync.NewCond(&pool.lock)

	for i := 0; i < cnt; i++ {
		var db *Database

		if db, err = Open(common.DbPath); err != nil {
			return nil, err
		}

		pool.connections = append(pool.connections, db)
	}

	return pool, nil
} // func NewPool(cnt int) (*Pool, error)

// Get returns a connection from the Pool, blocking until one becomes
// available if the Pool is currently empty.
func (p *Pool) Get() *Database {
	p.lock.Lock()
	defer p.lock.Unlock()

	for len(p.connections) == 0 {
		p.cond.Wait()
	}

	var db = p.connections[len(p.connections)-1]
	p.connections = p.connections[:len(p.connections)-1]

	return db
} // func (p *Pool) Get() *Database

// Put returns a connection to the Pool.
func (p *Pool) Put(db *Database) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.connections = append(p.connections, db)
	p.cond.Signal()
} // func (p *Pool) Put(db *Database)

// Close closes all connections currently in the Pool.
func (p *Pool) Close() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	var err error

	for _, db := range p.connections {
		if err = db.Close(); err != nil {
			return err
		}
	}

	p.connections = p.connections[:0]
	return nil
} // func (p *Pool) Close() error
