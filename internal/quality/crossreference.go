// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package quality

import "github.com/tomtom215/port-twin/internal/vessel"

// DefaultAvgTEUPerShip is the assumed average container load per ship,
// used to translate monthly TEU throughput into an expected vessel count.
const DefaultAvgTEUPerShip = 2000.0

// recentMonthsWindow bounds how many trailing months of throughput feed
// the rolling average, mirroring the "last 6 months" window used upstream.
const recentMonthsWindow = 6

// CrossReferenceResult compares today's observed vessel count against the
// count implied by recent container-throughput figures.
type CrossReferenceResult struct {
	AvgMonthlyTEUs       float64 `json:"avg_monthly_teus"`
	ExpectedDailyVessels float64 `json:"expected_daily_vessels"`
	ActualVesselCount    int     `json:"actual_vessel_count"`
	VarianceFromExpected float64 `json:"variance_from_expected"`
	VariancePct          float64 `json:"variance_pct"`
	Anomalous            bool    `json:"anomalous"`
}

// CrossReference computes expected daily vessel traffic from the trailing
// window of historical throughput points and compares it to
// actualVesselCount. A result is "anomalous" when the variance exceeds
// varianceThresholdPct of the expected count. avgTEUPerShip of 0 falls
// back to DefaultAvgTEUPerShip.
//
// CrossReference returns false for ok when there is no historical data to
// compare against — callers must treat that as "skip, not an error" per
// this analyzer's best-effort contract.
func CrossReference(history []vessel.HistoricalThroughputPoint, actualVesselCount int, avgTEUPerShip, varianceThresholdPct float64) (result CrossReferenceResult, ok bool) {
	if len(history) == 0 {
		return CrossReferenceResult{}, false
	}
	if avgTEUPerShip <= 0 {
		avgTEUPerShip = DefaultAvgTEUPerShip
	}

	window := history
	if len(window) > recentMonthsWindow {
		window = window[len(window)-recentMonthsWindow:]
	}

	var sum float64
	for _, p := range window {
		sum += p.TotalTEU
	}
	avgMonthlyTEUs := sum / float64(len(window))

	expectedDaily := (avgMonthlyTEUs * 1000) / (30 * avgTEUPerShip)
	variance := float64(actualVesselCount) - expectedDaily

	variancePct := 0.0
	if expectedDaily != 0 {
		variancePct = 100 * variance / expectedDaily
	}

	abs := variancePct
	if abs < 0 {
		abs = -abs
	}

	return CrossReferenceResult{
		AvgMonthlyTEUs:       avgMonthlyTEUs,
		ExpectedDailyVessels: expectedDaily,
		ActualVesselCount:    actualVesselCount,
		VarianceFromExpected: variance,
		VariancePct:          variancePct,
		Anomalous:            abs > varianceThresholdPct,
	}, true
}
