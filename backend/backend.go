// /home/krylon/go/src/github.com/blicero/ariadne/backend/backend.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 05. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-04 18:22:30 krylon>

// Package backend implements the server side of the application, the
// part that owns the database and answers the REST API.
package backend

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/database"
	"github.com/blicero/ariadne/logdomain"
	"github.com/gorilla/mux"
	"github.com/grandcat/zeroconf"
)

const poolSize = 4

// Daemon is the centerpiece of the backend, coordinating between the
// database and the clients.
type Daemon struct {
	log        *log.Logger
	pool       *database.Pool
	lock       sync.RWMutex
	active     bool
	web        http.Server
	router     *mux.Router
	dnssd      *zeroconf.Server
	hostname   string
	listenAddr string
	idLock     sync.Mutex
	idCnt      int64
}

// Summon summons a Daemon and returns it. No sacrifice or idolatry is required.
func Summon(addr string) (*Daemon, error) {
	var (
		err error
		d   = &Daemon{
			listenAddr: addr,
			active:     true,
			router:     mux.NewRouter(),
		}
	)

	if d.log, err = common.GetLogger(logdomain.Backend); err != nil {
		fmt.Printf("ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	} else if d.pool, err = database.NewPool(poolSize); err != nil {
		d.log.Printf("[ERROR] Cannot initialize database pool: %s\n",
			err.Error())
		return nil, err
	} else if d.hostname, err = os.Hostname(); err != nil {
		d.log.Printf("[ERROR] Cannot query hostname: %s\n",
			err.Error())
		return nil, err
	}

	d.web.Addr = addr
	d.web.ErrorLog = d.log
	d.web.Handler = d.router

	if err = d.initWebHandlers(); err != nil {
		d.log.Printf("[ERROR] Failed to initialize web server: %s\n",
			err.Error())
		return nil, err
	}

	if err = d.initDNSSd(); err != nil {
		// Running without service discovery is inconvenient, not fatal.
		d.log.Printf("[INFO] Continuing without DNS-SD: %s\n",
			err.Error())
	}

	go d.serveHTTP()

	return d, nil
} // func Summon(addr string) (*Daemon, error)

// IsAlive returns true if the Daemon's active flag is set.
func (d *Daemon) IsAlive() bool {
	d.lock.RLock()
	var alive = d.active
	d.lock.RUnlock()

	return alive
} // func (d *Daemon) IsAlive() bool

// Banish clears the Daemon's active flag and shuts the server down.
func (d *Daemon) Banish() error {
	var (
		err         error
		ctx, cancel = context.WithTimeout(context.Background(), time.Second*3)
	)
	defer cancel()

	if d.dnssd != nil {
		d.dnssd.Shutdown()
		d.dnssd = nil
	}

	if err = d.web.Shutdown(ctx); err != nil {
		d.log.Printf("[ERROR] Failed to shutdown web server: %s\n",
			err.Error())
	}

	if ctx.Err() != nil {
		err = ctx.Err()
		d.log.Printf("[ERROR] Failed to gracefully shut down web server: %s\n",
			ctx.Err().Error())
		d.web.Close() // nolint: errcheck
	}

	d.lock.Lock()
	d.active = false
	d.lock.Unlock()
	return err
} // func (d *Daemon) Banish() error

func (d *Daemon) getID() int64 {
	d.idLock.Lock()
	d.idCnt++
	var id = d.idCnt
	d.idLock.Unlock()
	return id
} // func (d *Daemon) getID() int64
