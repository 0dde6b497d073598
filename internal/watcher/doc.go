// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package watcher polls a set of files for mtime/size/content-hash changes
// and dispatches registered callbacks when a change is observed. It polls
// rather than using OS-level filesystem notifications because the feed
// files it watches live on mounted/shared volumes where inotify-style
// events are frequently unreliable.
package watcher
