// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package config loads the ingestion core's configuration through three
layered sources, lowest priority first:

 1. Defaults: built-in sensible values for every setting.
 2. Config file: an optional YAML file (config.yaml by default).
 3. Environment variables: PORT_TWIN_-prefixed vars override anything
    set by the first two layers.

Load() returns a validated *Config or an error describing the first
invalid field found.
*/
package config
