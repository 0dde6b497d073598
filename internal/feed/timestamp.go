// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// minPlausibleYear rejects timestamps that parse but clearly belong to a
// different record (the port authority's feeds have been seen to emit
// stray placeholder dates from the 1990s on malformed rows).
const minPlausibleYear = 2020

// knownLayouts are tried in order before falling back to permissive
// parsing. Earlier entries are the formats the port authority's feeds
// are documented to emit; later ones catch the occasional variant.
var knownLayouts = []string{
	"02-Jan-2006 15:04",
	"2006/01/02 15:04",
	"2006-01-02 15:04",
	"02/01/2006 15:04",
}

// ParseInstant parses a vessel feed timestamp, trying each known layout in
// order before falling back to permissive parsing. It returns an error if
// the raw string is empty, if no layout matches, or if the parsed year is
// implausibly old.
func ParseInstant(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("feed: empty timestamp")
	}

	for _, layout := range knownLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return checkPlausible(t)
		}
	}

	t, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("feed: unrecognized timestamp %q: %w", trimmed, err)
	}
	return checkPlausible(t)
}

func checkPlausible(t time.Time) (time.Time, error) {
	if t.Year() < minPlausibleYear {
		return time.Time{}, fmt.Errorf("feed: implausible year %d", t.Year())
	}
	return t, nil
}
