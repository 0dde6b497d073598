// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package feed

import "testing"

func TestParseInstantKnownLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want string // RFC3339-ish check via formatting
	}{
		{"17-Aug-2025 12:30", "2025-08-17 12:30"},
		{"2025/08/17 12:30", "2025-08-17 12:30"},
		{"2025-08-17 12:30", "2025-08-17 12:30"},
		{"17/08/2025 12:30", "2025-08-17 12:30"},
	}

	for _, tc := range cases {
		got, err := ParseInstant(tc.raw)
		if err != nil {
			t.Errorf("ParseInstant(%q) returned error: %v", tc.raw, err)
			continue
		}
		if got.Format("2006-01-02 15:04") != tc.want {
			t.Errorf("ParseInstant(%q) = %v, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestParseInstantRejectsImplausibleYear(t *testing.T) {
	_, err := ParseInstant("1999-01-01 00:00")
	if err == nil {
		t.Error("expected an error for a year before the plausible cutoff")
	}
}

func TestParseInstantRejectsEmpty(t *testing.T) {
	if _, err := ParseInstant("   "); err == nil {
		t.Error("expected an error for an empty timestamp")
	}
}

func TestParseInstantFallsBackPermissively(t *testing.T) {
	// Not one of the four known layouts, but a format dateparse understands.
	got, err := ParseInstant("August 17, 2025 12:30")
	if err != nil {
		t.Fatalf("expected permissive fallback to succeed, got error: %v", err)
	}
	if got.Year() != 2025 {
		t.Errorf("expected year 2025, got %d", got.Year())
	}
}
