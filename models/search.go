// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MediaType selects which media provider handles a search.
type MediaType string

const (
	Images MediaType = "images"
	Audio  MediaType = "audio"
	Videos MediaType = "videos"
)

// String implements [fmt.Stringer].
func (m MediaType) String() string {
	return string(m)
}

// SearchHistoryEntry is one recorded search call.
//
// UserID is stored as given by the caller; it is not checked against the
// users table.
type SearchHistoryEntry struct {
	ID         int64     `json:"-"`
	UserID     int64     `json:"-"`
	Query      string    `json:"query"`
	MediaType  MediaType `json:"media_type"`
	SearchTime time.Time `json:"search_time"`
}

// TableName returns the name of the database table
// associated with the SearchHistoryEntry model.
func (e SearchHistoryEntry) TableName() string {
	return "search_history"
}

// SearchResult is the provider-independent shape of a single search hit.
// URL is nil when the provider has no playable/viewable link for the item;
// Title is nil when the provider sent an explicit null.
type SearchResult struct {
	URL   *string `json:"url"`
	Title *string `json:"title"`
}

// SearchEvent is emitted after a search has been recorded in history.
type SearchEvent struct {
	UserID     int64     `json:"user_id"`
	Query      string    `json:"query"`
	MediaType  MediaType `json:"media_type"`
	OccurredAt time.Time `json:"occurred_at"`
}
