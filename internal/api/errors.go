// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

// Error codes returned in APIError.Code. These are stable identifiers a
// client can branch on; Message is free-form and may change.
const (
	codeUnknownFeed    = "UNKNOWN_FEED"
	codeDataUnavailable = "DATA_UNAVAILABLE"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)
