// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package feed

import (
	"testing"

	"github.com/tomtom215/port-twin/internal/vessel"
)

func TestCategorizeShipType(t *testing.T) {
	cases := map[string]vessel.ShipCategory{
		"":                        vessel.ShipCategoryUnknown,
		"Container Ship":          vessel.ShipCategoryContainer,
		"Bulk Carrier":            vessel.ShipCategoryBulkCarrier,
		"Ore Carrier":             vessel.ShipCategoryBulkCarrier,
		"Cement Carrier":          vessel.ShipCategoryBulkCarrier,
		"Woodchip Carrier":        vessel.ShipCategoryBulkCarrier,
		"Chemical Tanker":         vessel.ShipCategoryChemicalTanker,
		"General Cargo Vessel":    vessel.ShipCategoryGeneralCargo,
		"Heavy Lift Ship":         vessel.ShipCategoryGeneralCargo,
		"Crude Oil Tanker":        vessel.ShipCategoryTanker,
		"Passenger Ferry":         vessel.ShipCategoryOther,
	}

	for raw, want := range cases {
		if got := CategorizeShipType(raw); got != want {
			t.Errorf("CategorizeShipType(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestCategorizeLocation(t *testing.T) {
	cases := map[string]vessel.LocationKind{
		"":                         vessel.LocationKindUnknown,
		"Kwai Chung Berth 12":      vessel.LocationKindBerth,
		"Container Terminal 9":     vessel.LocationKindBerth,
		"Eastern Anchorage":        vessel.LocationKindAnchorage,
		"Fairway Channel":          vessel.LocationKindChannel,
		"Buoy 3":                   vessel.LocationKindChannel,
		"Open Sea":                 vessel.LocationKindOther,
	}

	for raw, want := range cases {
		if got := CategorizeLocation(raw); got != want {
			t.Errorf("CategorizeLocation(%q) = %s, want %s", raw, got, want)
		}
	}
}
