// /home/krylon/go/src/github.com/blicero/ariadne/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-04 23:10:52 krylon>

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blicero/ariadne/backend"
	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/datasource"
	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/permission"
	"github.com/blicero/ariadne/reminder"
	"github.com/blicero/ariadne/session"
)

func main() {
	fmt.Printf("%s %s (built %s)\n",
		common.AppName,
		common.Version,
		common.BuildStamp)

	var (
		err                error
		appDir, mode, addr string
		email, password    string
		mock               bool
		interval           time.Duration
	)

	flag.StringVar(
		&appDir,
		"appdir",
		common.BaseDir,
		"The directory where application-specific files live")

	flag.StringVar(
		&mode,
		"mode",
		"backend",
		"Whether to run the *backend* or the *client*",
	)

	flag.StringVar(
		&addr,
		"address",
		fmt.Sprintf("localhost:%d", common.DefaultPort),
		"Address to either listen on (backend) or connect to (client)",
	)

	flag.StringVar(&email, "email", "", "Email address to log in with (client)")
	flag.StringVar(&password, "password", "", "Password to log in with (client)")
	flag.BoolVar(&mock, "mock", false, "Run the client on sample data, without a backend")
	flag.DurationVar(&interval, "interval", time.Minute, "How often to check for due tasks")

	flag.Parse()

	if appDir != common.BaseDir {
		if err = common.SetBaseDir(appDir); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Cannot set application directory to %s: %s\n",
				appDir,
				err.Error())
			os.Exit(1)
		}
	}

	switch mode {
	case "backend":
		runBackend(addr)
	case "client":
		runClient(addr, email, password, mock, interval)
	default:
		fmt.Fprintf(
			os.Stderr,
			"Unknown mode %q",
			mode,
		)

		os.Exit(1)
	}
} // func main()

func runBackend(addr string) {
	var (
		err    error
		daemon *backend.Daemon
	)

	if daemon, err = backend.Summon(addr); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Failed to initialize backend: %s\n",
			err.Error())
		os.Exit(1)
	}

	var sigQ = make(chan os.Signal, 1)
	var ticker = time.NewTicker(time.Second * 2)

	signal.Notify(sigQ, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	for daemon.IsAlive() {
		select {
		case sig := <-sigQ:
			fmt.Printf("Quitting on signal %s\n", sig)
			daemon.Banish() // nolint: errcheck
			os.Exit(0)
		case <-ticker.C:
			continue
		}
	}
} // func runBackend(addr string)

func runClient(addr, email, password string, mock bool, interval time.Duration) {
	var (
		err   error
		src   datasource.Source
		owner string
	)

	if mock {
		owner = "mock-user-001"

		var fix *datasource.Fixture
		if fix, err = datasource.NewFixture(owner, true); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Cannot create sample data source: %s\n",
				err.Error())
			os.Exit(1)
		}

		src = fix
	} else {
		if email == "" || password == "" {
			fmt.Fprintln(os.Stderr,
				"Client mode needs -email and -password (or -mock)")
			os.Exit(1)
		}

		var remote *datasource.Remote
		if remote, err = datasource.NewRemote("http://" + addr); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Cannot create client for %s: %s\n",
				addr,
				err.Error())
			os.Exit(1)
		}

		var auth *objects.AuthResponse
		if auth, err = remote.Login(email, password); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Cannot log in as %s: %s\n",
				email,
				err.Error())
			os.Exit(1)
		}

		owner = auth.UserID
		src = remote
	}

	var notifier reminder.Notifier

	if notifier, err = reminder.NewDBusNotifier(); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"No DBus session bus, desktop alerts are unavailable: %s\n",
			err.Error())
		notifier = reminder.NewMemoryNotifier(permission.Denied)
	}

	var s *session.Session

	if s, err = session.New(src, notifier, owner, interval); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot create session: %s\n",
			err.Error())
		os.Exit(1)
	}

	defer s.Close()

	s.RequestPermission()

	if err = s.StartReminders(); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot start reminder checks: %s\n",
			err.Error())
		os.Exit(1)
	}

	var sigQ = make(chan os.Signal, 1)

	signal.Notify(sigQ, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	var sig = <-sigQ
	fmt.Printf("Quitting on signal %s\n", sig)
} // func runClient(...)
