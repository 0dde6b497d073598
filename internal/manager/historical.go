// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package manager

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tomtom215/port-twin/internal/vessel"
)

// LoadHistoricalThroughput reads a CSV of monthly container-throughput
// figures with header columns month, seaborne_teu, river_teu, total_teu.
// No third-party CSV library appears anywhere in this lineage's
// dependency set, so this one reader uses encoding/csv directly (see
// DESIGN.md).
func LoadHistoricalThroughput(path string) ([]vessel.HistoricalThroughputPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manager: open historical throughput file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("manager: read historical throughput CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}
	required := []string{"month", "seaborne_teu", "river_teu", "total_teu"}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("manager: historical throughput CSV missing column %q", name)
		}
	}

	points := make([]vessel.HistoricalThroughputPoint, 0, len(records)-1)
	for _, row := range records[1:] {
		seaborne, _ := strconv.ParseFloat(row[col["seaborne_teu"]], 64)
		river, _ := strconv.ParseFloat(row[col["river_teu"]], 64)
		total, _ := strconv.ParseFloat(row[col["total_teu"]], 64)
		points = append(points, vessel.HistoricalThroughputPoint{
			Month:       row[col["month"]],
			SeaborneTEU: seaborne,
			RiverTEU:    river,
			TotalTEU:    total,
		})
	}
	return points, nil
}
