// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package api exposes the real-time manager's cached vessel data over a
read-only HTTP surface, routed with go-chi/chi.

# Routes

	GET /vessels              -> Manager.GetMergedView
	GET /vessels/{feed}       -> Manager.GetFrame
	GET /analysis             -> Manager.GetComprehensiveAnalysis
	GET /status               -> Manager.Status
	GET /quality               -> Manager.DataQualityReport
	GET /metrics              -> promhttp.Handler()

max_age is accepted as a query parameter (seconds) on the /vessels
routes: it bounds how stale a cached value may be before the handler
reports it unavailable rather than serving it.

# Response Envelope

Every handler responds with the same envelope used across the rest of
the stack:

	{
	    "status": "success",
	    "data": ...,
	    "metadata": {"timestamp": "..."}
	}

or, on failure:

	{
	    "status": "error",
	    "error": {"code": "...", "message": "..."},
	    "metadata": {"timestamp": "..."}
	}

# Server Construction

NewRouter wires request ID propagation, panic recovery, and request
metrics ahead of the route table; NewServer wraps the router in an
*http.Server built from config.ServerConfig, ready to be handed to
services.NewHTTPServerService for supervision.
*/
package api
