// /home/krylon/go/src/github.com/blicero/ariadne/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-28 19:02:33 krylon>

// Package common provides constants and helpers used throughout
// the application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blicero/ariadne/logdomain"
	"github.com/blicero/krylib"
	"github.com/hashicorp/logutils"
	"github.com/odeke-em/go-uuid"
)

// Debug, if true, causes the log level to be lowered to TRACE.
const (
	Debug                    = true
	AppName                  = "Ariadne"
	Version                  = "0.3.1"
	TimestampFormat          = "2006-01-02 15:04:05"
	TimestampFormatMinute    = "2006-01-02 15:04"
	TimestampFormatSubSecond = "2006-01-02 15:04:05.0000 MST"
	TimestampFormatTime      = "15:04:05"
	TimestampFormatDate      = "2006-01-02"
	DefaultPort              = 6881
)

// BuildStamp is the time at which the application was built.
var BuildStamp = time.Unix(1685293353, 0)

// MinLogLevel is the log level beneath which messages are discarded.
var MinLogLevel logutils.LogLevel = "TRACE"

// LogLevels are the valid log levels, in ascending order of severity.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// BaseDir is the directory where the application keeps its files.
var BaseDir = filepath.Join(
	os.Getenv("HOME"),
	fmt.Sprintf("%s.d", strings.ToLower(AppName)))

// LogPath is the path of the log file.
var LogPath = filepath.Join(BaseDir, fmt.Sprintf("%s.log", strings.ToLower(AppName)))

// DbPath is the path of the database.
var DbPath = filepath.Join(BaseDir, fmt.Sprintf("%s.db", strings.ToLower(AppName)))

func init() {
	if !Debug {
		MinLogLevel = "INFO"
	}
} // func init()

// SetBaseDir sets the application's base directory and adjusts the paths
// of the log file and the database accordingly.
func SetBaseDir(path string) error {
	BaseDir = path
	LogPath = filepath.Join(BaseDir, fmt.Sprintf("%s.log", strings.ToLower(AppName)))
	DbPath = filepath.Join(BaseDir, fmt.Sprintf("%s.db", strings.ToLower(AppName)))

	return InitApp()
} // func SetBaseDir(path string) error

// InitApp creates the application's base directory, if it does not exist
// already.
func InitApp() error {
	var (
		err error
		ex  bool
	)

	if ex, err = krylib.Fexists(BaseDir); err != nil {
		return err
	} else if !ex {
		if err = os.MkdirAll(BaseDir, 0755); err != nil {
			return fmt.Errorf("Error creating directory %s: %s",
				BaseDir,
				err.Error())
		}
	}

	return nil
} // func InitApp() error

// GetLogger returns a Logger for the given log domain.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err error
		fh  *os.File
	)

	if err = InitApp(); err != nil {
		return nil, err
	}

	if fh, err = os.OpenFile(LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644); err != nil {
		return nil, fmt.Errorf("Error opening log file %s: %s",
			LogPath,
			err.Error())
	}

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: MinLogLevel,
		Writer:   io.MultiWriter(os.Stdout, fh),
	}

	var logger = log.New(
		filter,
		fmt.Sprintf("%s ", dom),
		log.Ldate|log.Ltime|log.Lshortfile)

	return logger, nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// GetUUID returns a fresh UUID.
func GetUUID() string {
	return uuid.New()
} // func GetUUID() string

// TimeEqual returns true if the two timestamps refer to the same point in
// time, at one-second granularity.
func TimeEqual(t1, t2 time.Time) bool {
	return t1.Unix() == t2.Unix()
} // func TimeEqual(t1, t2 time.Time) bool
