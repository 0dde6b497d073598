// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/port-twin/internal/manager"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	mgr := manager.New(manager.DefaultConfig(), zerolog.Nop(), nil)
	return NewHandler(mgr, time.Hour)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHandleVessels_NoDataYet(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/vessels", nil)
	rec := httptest.NewRecorder()

	h.handleVessels(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	resp := decodeResponse(t, rec)
	if resp.Status != "error" || resp.Error == nil || resp.Error.Code != codeDataUnavailable {
		t.Fatalf("unexpected error envelope: %+v", resp)
	}
}

func TestHandleVesselFrame_UnknownFeed(t *testing.T) {
	h := newTestHandler(t)
	router := NewRouter(h, DefaultRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/vessels/not-a-feed", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	resp := decodeResponse(t, rec)
	if resp.Error == nil || resp.Error.Code != codeUnknownFeed {
		t.Fatalf("unexpected error envelope: %+v", resp)
	}
}

func TestHandleVesselFrame_KnownFeedNoDataYet(t *testing.T) {
	h := newTestHandler(t)
	router := NewRouter(h, DefaultRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/vessels/arrived", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHandleAnalysis_NoDataYet(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/analysis", nil)
	rec := httptest.NewRecorder()

	h.handleAnalysis(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHandleStatus_AlwaysAvailable(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()

	h.handleStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	resp := decodeResponse(t, rec)
	if resp.Status != "success" {
		t.Fatalf("status field = %q, want success", resp.Status)
	}
}

func TestHandleQuality_EmptyReport(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/quality", nil)
	rec := httptest.NewRecorder()

	h.handleQuality(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMaxAgeFromQuery(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		query string
		want  time.Duration
	}{
		{"", time.Hour},
		{"max_age=30", 30 * time.Second},
		{"max_age=not-a-number", time.Hour},
		{"max_age=-5", time.Hour},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/vessels?"+tc.query, nil)
		if got := h.maxAgeFromQuery(req); got != tc.want {
			t.Errorf("maxAgeFromQuery(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}
