// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package quality

import (
	"math"
	"sort"
	"time"

	"github.com/tomtom215/port-twin/internal/vessel"
)

// VesselFrameReport is the validation result for one loaded feed frame.
type VesselFrameReport struct {
	RecordsCount     int            `json:"records_count"`
	UniqueVessels    int            `json:"unique_vessels"`
	DateRangeStart   *time.Time     `json:"date_range_start,omitempty"`
	DateRangeEnd     *time.Time     `json:"date_range_end,omitempty"`
	MissingValues    map[string]int `json:"missing_values"`
	CompletenessPct  float64        `json:"completeness_pct"`
	DuplicateRecords int            `json:"duplicate_records"`
	Valid            bool           `json:"valid"`
	Message          string         `json:"message,omitempty"`
}

// ValidateVesselFrame checks a frame against the two required fields,
// vessel_name and event_time. The frame is invalid if it is empty, if
// every record is missing vessel_name, or if every event_time failed to
// parse.
func ValidateVesselFrame(records []vessel.Record) VesselFrameReport {
	n := len(records)
	if n == 0 {
		return VesselFrameReport{
			MissingValues: map[string]int{},
			Valid:         false,
			Message:       "frame is empty",
		}
	}

	missingVesselName := 0
	missingEventTime := 0
	seen := make(map[vessel.Key]int, n)

	var earliest, latest time.Time
	var haveRange bool

	for _, r := range records {
		if r.VesselName == "" {
			missingVesselName++
		}
		if r.EventTime == nil {
			missingEventTime++
		} else {
			if !haveRange || r.EventTime.Before(earliest) {
				earliest = *r.EventTime
			}
			if !haveRange || r.EventTime.After(latest) {
				latest = *r.EventTime
			}
			haveRange = true
		}
		seen[r.Key()]++
	}

	duplicates := 0
	for _, count := range seen {
		if count > 1 {
			duplicates += count - 1
		}
	}

	totalCells := n * 2
	missingCells := missingVesselName + missingEventTime
	completeness := 100 * float64(totalCells-missingCells) / float64(totalCells)

	valid := true
	message := ""
	switch {
	case missingEventTime == n:
		valid = false
		message = "all event_time values are missing"
	case missingVesselName == n:
		valid = false
		message = "vessel_name is missing from every record"
	}

	report := VesselFrameReport{
		RecordsCount:     n,
		UniqueVessels:    len(seen),
		MissingValues:    map[string]int{"vessel_name": missingVesselName, "event_time": missingEventTime},
		CompletenessPct:  completeness,
		DuplicateRecords: duplicates,
		Valid:            valid,
		Message:          message,
	}
	if haveRange {
		report.DateRangeStart = &earliest
		report.DateRangeEnd = &latest
	}
	return report
}

// SuddenChange flags a month-over-month swing exceeding the 20% threshold
// in one numeric column of the historical-throughput series.
type SuddenChange struct {
	Month     string  `json:"month"`
	Field     string  `json:"field"`
	PctChange float64 `json:"pct_change"`
}

// Outlier flags a value outside the IQR fence for its column.
type Outlier struct {
	Month string  `json:"month"`
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

// HistoricalThroughputReport is the validation result for the historical
// container-throughput series.
type HistoricalThroughputReport struct {
	RecordsCount      int            `json:"records_count"`
	DateRangeStart    string         `json:"date_range_start"`
	DateRangeEnd      string         `json:"date_range_end"`
	MissingValues     int            `json:"missing_values"`
	CompletenessPct   float64        `json:"completeness_pct"`
	ConsistencyErrors int            `json:"consistency_errors"`
	SuddenChanges     []SuddenChange `json:"sudden_changes"`
	Outliers          []Outlier      `json:"outliers"`
}

// suddenChangeThresholdPct is the month-over-month swing, in percent,
// above which a change is flagged as sudden.
const suddenChangeThresholdPct = 20.0

// consistencyTolerancePct is how far total may diverge from
// seaborne+river, as a fraction of total, before it's an error.
const consistencyTolerancePct = 1.0

// ValidateHistoricalThroughput checks internal consistency of the monthly
// throughput series and flags anomalies.
func ValidateHistoricalThroughput(points []vessel.HistoricalThroughputPoint) HistoricalThroughputReport {
	n := len(points)
	report := HistoricalThroughputReport{RecordsCount: n}
	if n == 0 {
		return report
	}

	report.DateRangeStart = points[0].Month
	report.DateRangeEnd = points[n-1].Month

	missing := 0
	for _, p := range points {
		if p.Month == "" {
			missing++
		}
	}
	report.MissingValues = missing
	report.CompletenessPct = 100 * float64(n-missing) / float64(n)

	for _, p := range points {
		if p.TotalTEU == 0 {
			continue
		}
		diff := p.TotalTEU - (p.SeaborneTEU + p.RiverTEU)
		if diff < 0 {
			diff = -diff
		}
		if diff > (consistencyTolerancePct/100)*p.TotalTEU {
			report.ConsistencyErrors++
		}
	}

	report.SuddenChanges = detectSuddenChanges(points)
	report.Outliers = detectOutliers(points)
	return report
}

func detectSuddenChanges(points []vessel.HistoricalThroughputPoint) []SuddenChange {
	var changes []SuddenChange
	fields := []struct {
		name string
		get  func(vessel.HistoricalThroughputPoint) float64
	}{
		{"seaborne_teu", func(p vessel.HistoricalThroughputPoint) float64 { return p.SeaborneTEU }},
		{"river_teu", func(p vessel.HistoricalThroughputPoint) float64 { return p.RiverTEU }},
		{"total_teu", func(p vessel.HistoricalThroughputPoint) float64 { return p.TotalTEU }},
	}

	for i := 1; i < len(points); i++ {
		for _, f := range fields {
			prev, curr := f.get(points[i-1]), f.get(points[i])
			if prev == 0 {
				continue
			}
			pctChange := 100 * (curr - prev) / prev
			abs := pctChange
			if abs < 0 {
				abs = -abs
			}
			if abs > suddenChangeThresholdPct {
				changes = append(changes, SuddenChange{Month: points[i].Month, Field: f.name, PctChange: pctChange})
			}
		}
	}
	return changes
}

func detectOutliers(points []vessel.HistoricalThroughputPoint) []Outlier {
	var outliers []Outlier
	fields := []struct {
		name string
		get  func(vessel.HistoricalThroughputPoint) float64
	}{
		{"seaborne_teu", func(p vessel.HistoricalThroughputPoint) float64 { return p.SeaborneTEU }},
		{"river_teu", func(p vessel.HistoricalThroughputPoint) float64 { return p.RiverTEU }},
		{"total_teu", func(p vessel.HistoricalThroughputPoint) float64 { return p.TotalTEU }},
	}

	for _, f := range fields {
		values := make([]float64, len(points))
		for i, p := range points {
			values[i] = f.get(p)
		}
		lower, upper := iqrFence(values)
		for i, v := range values {
			if v < lower || v > upper {
				outliers = append(outliers, Outlier{Month: points[i].Month, Field: f.name, Value: v})
			}
		}
	}
	return outliers
}

// iqrFence returns the Tukey fence [Q1-1.5*IQR, Q3+1.5*IQR] for values.
// With fewer than 4 points the quartiles aren't meaningful, so it returns
// an unbounded fence that flags nothing rather than a (0, 0) fence that
// would flag every non-zero value as an outlier.
func iqrFence(values []float64) (lower, upper float64) {
	if len(values) < 4 {
		return math.Inf(-1), math.Inf(1)
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	q1 := percentile(sorted, 0.25)
	q3 := percentile(sorted, 0.75)
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}

// percentile uses linear interpolation between closest ranks, the same
// method pandas' default quantile() uses.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
