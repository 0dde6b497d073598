// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/port-twin/internal/vessel"
)

// handleVessels serves GET /vessels: the deduplicated merge of every feed.
func (h *Handler) handleVessels(w http.ResponseWriter, r *http.Request) {
	view, ok := h.mgr.GetMergedView(h.maxAgeFromQuery(r))
	if !ok {
		respondError(w, http.StatusServiceUnavailable, codeDataUnavailable, "no merged vessel view available yet", nil)
		return
	}
	respondOK(w, view)
}

// handleVesselFrame serves GET /vessels/{feed}: one feed's last-loaded frame.
func (h *Handler) handleVesselFrame(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "feed")
	id := vessel.FeedID(raw)

	known := false
	for _, f := range vessel.AllFeeds {
		if f == id {
			known = true
			break
		}
	}
	if !known {
		respondError(w, http.StatusNotFound, codeUnknownFeed, "unknown feed: "+sanitizeLogValue(raw), nil)
		return
	}

	frame, ok := h.mgr.GetFrame(id, h.maxAgeFromQuery(r))
	if !ok {
		respondError(w, http.StatusServiceUnavailable, codeDataUnavailable, "no frame cached yet for feed "+string(id), nil)
		return
	}
	respondOK(w, frame)
}

// handleAnalysis serves GET /analysis: the most recently computed summary.
func (h *Handler) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, ok := h.mgr.GetComprehensiveAnalysis()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, codeDataUnavailable, "no analysis available yet", nil)
		return
	}
	respondOK(w, analysis)
}

// handleStatus serves GET /status: breaker/scheduler/cache health.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := h.mgr.Status()

	lastErr := ""
	if st.SchedulerStatus.LastErr != nil {
		lastErr = st.SchedulerStatus.LastErr.Error()
	}

	respondOK(w, StatusResponse{
		BreakerState:   st.BreakerState,
		LastRunAt:      st.SchedulerStatus.LastRunAt,
		LastErr:        lastErr,
		TickCount:      st.SchedulerStatus.TickCount,
		SkipCount:      st.SchedulerStatus.SkipCount,
		CacheHits:      st.CacheStats.Hits,
		CacheMisses:    st.CacheStats.Misses,
		CacheEvictions: st.CacheStats.Evictions,
		CacheTotalKeys: st.CacheStats.TotalKeys,
		UptimeSeconds:  time.Since(h.startedAt).Seconds(),
	})
}

// handleQuality serves GET /quality: per-feed and historical validation
// reports for whatever is currently cached.
func (h *Handler) handleQuality(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.mgr.DataQualityReport())
}
