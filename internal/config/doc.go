// Package config loads, normalizes, and validates cueplan's TOML
// configuration. Every engine constant with a spec default is configurable
// here; the zero-value file is fully usable.
package config
