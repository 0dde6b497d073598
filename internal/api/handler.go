// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/port-twin/internal/logging"
	"github.com/tomtom215/port-twin/internal/manager"
)

// Handler serves the read-only vessel API out of a single manager.Manager.
type Handler struct {
	mgr       *manager.Manager
	startedAt time.Time
	defaultMaxAge time.Duration
}

// NewHandler builds a Handler backed by mgr. defaultMaxAge is used when a
// request omits the max_age query parameter.
func NewHandler(mgr *manager.Manager, defaultMaxAge time.Duration) *Handler {
	return &Handler{mgr: mgr, startedAt: time.Now(), defaultMaxAge: defaultMaxAge}
}

// maxAgeFromQuery parses the max_age query parameter (seconds) off r, falling
// back to h.defaultMaxAge when absent, empty, or unparseable.
func (h *Handler) maxAgeFromQuery(r *http.Request) time.Duration {
	raw := r.URL.Query().Get("max_age")
	if raw == "" {
		return h.defaultMaxAge
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return h.defaultMaxAge
	}
	return time.Duration(seconds) * time.Second
}

// sanitizeLogValue strips control characters from a value before it reaches
// a log line, guarding against log injection via request-derived input.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// generateETag computes a cheap FNV-1a hash of the response body.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

func respondJSON(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=5")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(resp)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal API response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write API response")
	}
}

func respondOK(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, &Response{
		Status:   "success",
		Data:     data,
		Metadata: newMetadata(),
	})
}

func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("api error")
	}
	respondJSON(w, status, &Response{
		Status:   "error",
		Error:    &APIError{Code: code, Message: message},
		Metadata: newMetadata(),
	})
}
