// /home/krylon/go/src/github.com/blicero/ariadne/cache/01_cache_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-02 22:31:58 krylon>

package cache

import (
	"testing"

	"github.com/blicero/ariadne/datasource"
	"github.com/blicero/ariadne/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "user-001"

// countingSource wraps a Source and counts how often the listings are
// actually fetched.
type countingSource struct {
	datasource.Source
	listCalls    int
	deletedCalls int
}

func (c *countingSource) ListTasks(owner string, f *objects.Filters) (*objects.TaskListResponse, error) {
	c.listCalls++
	return c.Source.ListTasks(owner, f)
} // func (c *countingSource) ListTasks(...)

func (c *countingSource) ListDeletedTasks(owner string) (*objects.DeletedTaskListResponse, error) {
	c.deletedCalls++
	return c.Source.ListDeletedTasks(owner)
} // func (c *countingSource) ListDeletedTasks(owner string)

var (
	src *countingSource
	tc  *Cache
)

func TestCacheCreate(t *testing.T) {
	var (
		err error
		fix *datasource.Fixture
	)

	if fix, err = datasource.NewFixture(testOwner, true); err != nil {
		t.Fatalf("Cannot create Fixture: %s", err.Error())
	}

	src = &countingSource{Source: fix}

	if tc, err = New(src, testOwner); err != nil {
		tc = nil
		t.Fatalf("Cannot create Cache: %s", err.Error())
	}
} // func TestCacheCreate(t *testing.T)

func TestCacheFetchThrough(t *testing.T) {
	if tc == nil {
		t.SkipNow()
	}

	var res, err = tc.Tasks(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 1, src.listCalls)

	// The second lookup must be served from the cache.
	res, err = tc.Tasks(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 1, src.listCalls)

	// A different filter set is a different listing.
	var f = &objects.Filters{Tag: "work"}
	res, err = tc.Tasks(f)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, src.listCalls)
} // func TestCacheFetchThrough(t *testing.T)

func TestCacheInvalidate(t *testing.T) {
	if tc == nil {
		t.SkipNow()
	}

	tc.InvalidateTasks()

	var _, err = tc.Tasks(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, src.listCalls)
} // func TestCacheInvalidate(t *testing.T)

func TestCacheDeleted(t *testing.T) {
	if tc == nil {
		t.SkipNow()
	}

	var res, err = tc.Deleted()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, src.deletedCalls)

	res, err = tc.Deleted()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, src.deletedCalls)

	tc.InvalidateDeleted()

	_, err = tc.Deleted()
	require.NoError(t, err)
	assert.Equal(t, 2, src.deletedCalls)
} // func TestCacheDeleted(t *testing.T)
