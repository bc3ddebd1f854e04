// /home/krylon/go/src/github.com/blicero/ariadne/coordinator/01_forms_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 04. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-03 17:40:19 krylon>

package coordinator

import (
	"testing"
	"time"

	"github.com/blicero/ariadne/objects/priority"
	"github.com/blicero/ariadne/objects/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	type testCase struct {
		input    string
		expected []string
	}

	var cases = []testCase{
		{"work, docs", []string{"work", "docs"}},
		{"  work ,, docs ,", []string{"work", "docs"}},
		{"solo", []string{"solo"}},
		{"", nil},
		{" , , ", nil},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ParseTags(c.input),
			"input %q", c.input)
	}
} // func TestParseTags(t *testing.T)

func TestComposeDue(t *testing.T) {
	var stamp, err = ComposeDue("2023-05-15", "14:30")
	require.NoError(t, err)
	require.NotNil(t, stamp)

	assert.Equal(t, 2023, stamp.Year())
	assert.Equal(t, time.May, stamp.Month())
	assert.Equal(t, 15, stamp.Day())
	assert.Equal(t, 14, stamp.Hour())
	assert.Equal(t, 30, stamp.Minute())
	assert.Equal(t, time.Local, stamp.Location())

	// No time of day means midnight.
	stamp, err = ComposeDue("2023-05-15", "")
	require.NoError(t, err)
	require.NotNil(t, stamp)
	assert.Equal(t, 0, stamp.Hour())
	assert.Equal(t, 0, stamp.Minute())

	// No date means no due date.
	stamp, err = ComposeDue("", "14:30")
	require.NoError(t, err)
	assert.Nil(t, stamp)

	_, err = ComposeDue("yesterday", "")
	assert.Error(t, err)
} // func TestComposeDue(t *testing.T)

func TestSplitDue(t *testing.T) {
	var stamp, err = ComposeDue("2023-05-15", "14:30")
	require.NoError(t, err)

	var date, tod = SplitDue(stamp)
	assert.Equal(t, "2023-05-15", date)
	assert.Equal(t, "14:30", tod)

	date, tod = SplitDue(nil)
	assert.Equal(t, "", date)
	assert.Equal(t, "", tod)
} // func TestSplitDue(t *testing.T)

func TestFormToCreate(t *testing.T) {
	var form = &TaskForm{
		Title:       "  Water the plants  ",
		Description: "The ones on the balcony, too.",
		Priority:    "High",
		Tags:        "personal, garden",
		DueDate:     "2023-05-20",
		Recurrence:  "weekly",
	}

	var req, err = form.ToCreate()
	require.NoError(t, err)

	assert.Equal(t, "Water the plants", req.Title)
	assert.Equal(t, priority.High, req.Priority)
	assert.Equal(t, []string{"personal", "garden"}, req.Tags)
	assert.Equal(t, recurrence.Weekly, req.Recurrence)
	require.NotNil(t, req.Due)

	form.Title = "   "
	_, err = form.ToCreate()
	assert.ErrorIs(t, err, ErrNoTitle)
} // func TestFormToCreate(t *testing.T)

func TestFormToUpdate(t *testing.T) {
	var form = &TaskForm{
		Title:    "Water the plants",
		Priority: "low",
	}

	var req, err = form.ToUpdate()
	require.NoError(t, err)

	// The form edits all fields, so everything is set.
	require.NotNil(t, req.Priority)
	assert.Equal(t, priority.Low, *req.Priority)
	require.NotNil(t, req.Description)
	assert.Equal(t, "", *req.Description)
	assert.True(t, req.ClearDue)
	assert.Nil(t, req.Due)

	form.DueDate = "2023-05-20"
	form.DueTime = "09:00"
	req, err = form.ToUpdate()
	require.NoError(t, err)
	assert.False(t, req.ClearDue)
	require.NotNil(t, req.Due)
} // func TestFormToUpdate(t *testing.T)
