// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package feed

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// skippedPreamblePrefixes marks lines the port authority's export tool
// prepends to every file. They are not valid XML and must be dropped
// before parsing.
var skippedPreamblePrefixes = []string{
	"This XML file",
	"associated with it",
}

// element is one <G_SQL1> row as it appears on the wire. Every field is
// optional text content; absence becomes an empty string, never a parse
// error.
type element struct {
	CallSign        string `xml:"CALL_SIGN"`
	VesselName      string `xml:"VESSEL_NAME"`
	ShipType        string `xml:"SHIP_TYPE"`
	AgentName       string `xml:"AGENT_NAME"`
	CurrentLocation string `xml:"CURRENT_LOCATION"`
	ArrivalTime     string `xml:"ARRIVAL_TIME"`
	DepartureTime   string `xml:"DEPARTURE_TIME"`
	ExpectedTime    string `xml:"EXPECTED_TIME"`
	Remark          string `xml:"REMARK"`
}

// ParseError wraps a failure to locate a well-formed set of G_SQL1
// elements in the document at all, as opposed to a single malformed row
// (which is skipped with a warning by the caller, not surfaced as an
// error).
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("feed: parse XML: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

const (
	sql1OpenTag  = "<G_SQL1"
	sql1CloseTag = "</G_SQL1>"
)

// repair strips the non-XML preamble lines the export tool emits and
// escapes bare ` & ` occurrences so each row parses as well-formed XML.
// It operates line by line to match exactly what produces the malformed
// bytes in the first place.
func repair(raw []byte) []byte {
	var out bytes.Buffer
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		skip := false
		for _, prefix := range skippedPreamblePrefixes {
			if strings.HasPrefix(line, prefix) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		line = strings.ReplaceAll(line, " & ", " &amp; ")
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// extractRows slices out each top-level <G_SQL1>...</G_SQL1> span by
// string search rather than by decoding the whole document as one tree.
// That keeps one malformed row from poisoning the parse of every row
// after it — the document's root element is never actually decoded, only
// scanned for row boundaries, so nothing about the root's own well-
// formedness matters.
func extractRows(content []byte) ([][]byte, error) {
	var rows [][]byte
	rest := content
	for {
		idx := bytes.Index(rest, []byte(sql1OpenTag))
		if idx == -1 {
			break
		}
		rest = rest[idx:]
		closeIdx := bytes.Index(rest, []byte(sql1CloseTag))
		if closeIdx == -1 {
			return rows, fmt.Errorf("unterminated %s element", sql1OpenTag)
		}
		end := closeIdx + len(sql1CloseTag)
		row := make([]byte, end)
		copy(row, rest[:end])
		rows = append(rows, row)
		rest = rest[end:]
	}
	return rows, nil
}

// ParseElements scans a document for every G_SQL1 row. A row that fails
// to decode is skipped; onRowError, if non-nil, is called with the
// decode error for each one. A document with no G_SQL1 rows yields no
// elements and no error; a G_SQL1 element with no closing tag (e.g. a
// document truncated mid-element) is returned as a *ParseError.
func ParseElements(raw []byte, onRowError func(error)) ([]element, error) {
	cleaned := repair(raw)

	rawRows, err := extractRows(cleaned)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	elements := make([]element, 0, len(rawRows))
	for _, row := range rawRows {
		var el element
		if err := xml.Unmarshal(row, &el); err != nil {
			if onRowError != nil {
				onRowError(fmt.Errorf("feed: skipping malformed row: %w", err))
			}
			continue
		}
		elements = append(elements, el)
	}
	return elements, nil
}
