// Package config loads, normalizes, and validates draftd configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// DRAFTD_API_BIND. The Config type centralizes every knob the daemon and CLI
// need: data/log directories, the catalog database location, the API bind
// address, and logging behaviour.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
