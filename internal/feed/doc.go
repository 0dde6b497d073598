// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package feed turns the port authority's XML vessel feeds into vessel.Frame
// values: XML repair and parsing, timestamp normalization, and ship/location
// categorization, orchestrated by a Loader that knows the four well-known
// feed files.
package feed
