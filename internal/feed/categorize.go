// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package feed

import (
	"strings"

	"github.com/tomtom215/port-twin/internal/vessel"
)

// CategorizeShipType maps a raw ship-type string from the feed to one of
// the standard categories. Matching is substring-based and case
// insensitive, checked in a fixed precedence order so a string matching
// more than one term (e.g. "General Cargo Tanker") resolves consistently.
func CategorizeShipType(raw string) vessel.ShipCategory {
	if raw == "" {
		return vessel.ShipCategoryUnknown
	}
	lower := strings.ToLower(raw)

	switch {
	case strings.Contains(lower, "container"):
		return vessel.ShipCategoryContainer
	case containsAny(lower, "bulk", "ore", "cement", "woodchip"):
		return vessel.ShipCategoryBulkCarrier
	case strings.Contains(lower, "chemical"):
		return vessel.ShipCategoryChemicalTanker
	case containsAny(lower, "general", "cargo", "heavy lift"):
		return vessel.ShipCategoryGeneralCargo
	case strings.Contains(lower, "tanker"):
		return vessel.ShipCategoryTanker
	default:
		return vessel.ShipCategoryOther
	}
}

// CategorizeLocation maps a raw current-location string to a LocationKind.
func CategorizeLocation(raw string) vessel.LocationKind {
	if raw == "" {
		return vessel.LocationKindUnknown
	}
	lower := strings.ToLower(raw)

	switch {
	case containsAny(lower, "berth", "terminal"):
		return vessel.LocationKindBerth
	case strings.Contains(lower, "anchorage"):
		return vessel.LocationKindAnchorage
	case containsAny(lower, "channel", "buoy"):
		return vessel.LocationKindChannel
	default:
		return vessel.LocationKindOther
	}
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
