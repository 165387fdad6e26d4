// Package config loads and validates vport's YAML configuration: engine
// defaults (size estimate, overscan), demo dataset parameters, and logging
// settings. The file carries a semver schema version so incompatible
// future layouts are rejected up front instead of half-applied.
package config
