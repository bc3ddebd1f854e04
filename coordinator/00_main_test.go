// /home/krylon/go/src/github.com/blicero/ariadne/coordinator/00_main_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-30 19:01:27 krylon>

package coordinator

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/blicero/ariadne/common"
)

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/ariadne_coordinator_test_20060102_150405")
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	} else if result = m.Run(); result == 0 {
		os.RemoveAll(baseDir)
	}

	os.Exit(result)
} // func TestMain(m *testing.M)
