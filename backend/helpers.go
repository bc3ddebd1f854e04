// /home/krylon/go/src/github.com/blicero/ariadne/backend/helpers.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 05. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-04 21:49:27 krylon>

package backend

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/blicero/ariadne/objects"
	"github.com/blicero/ariadne/objects/priority"
)

// parseFilters extracts the listing filters from the request's query
// string.
func parseFilters(r *http.Request) (*objects.Filters, error) {
	var (
		err    error
		f      objects.Filters
		values = r.URL.Query()
	)

	if raw := values.Get("completed"); raw != "" {
		var flag bool
		if flag, err = strconv.ParseBool(raw); err != nil {
			return nil, fmt.Errorf("invalid completed flag %q", raw)
		}
		f.Completed = &flag
	}

	if raw := values.Get("priority"); raw != "" {
		var prio priority.Priority
		if prio, err = priority.FromString(raw); err != nil {
			return nil, err
		}
		f.Priority = &prio
	}

	f.Tag = values.Get("tag")
	f.Search = values.Get("search")

	switch status := objects.DueStatus(values.Get("due_status")); status {
	case objects.DueAny, objects.DueOverdue, objects.DueToday, objects.DueFuture:
		f.DueStatus = status
	default:
		return nil, fmt.Errorf("invalid due status %q", status)
	}

	switch key := objects.SortKey(values.Get("sort_by")); key {
	case "", objects.SortByCreated, objects.SortByDue, objects.SortByPriority, objects.SortByTitle:
		f.SortBy = key
	default:
		return nil, fmt.Errorf("invalid sort key %q", key)
	}

	switch order := objects.SortOrder(values.Get("sort_order")); order {
	case "", objects.Asc, objects.Desc:
		f.SortOrder = order
	default:
		return nil, fmt.Errorf("invalid sort order %q", order)
	}

	return &f, nil
} // func parseFilters(r *http.Request) (*objects.Filters, error)
