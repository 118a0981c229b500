// Package file provides a TOML-backed settings store. Engine tuning
// (result limits, cache capacity, debounce delay, extra stop words and
// synonyms, boost overrides) lives in ~/.scriptura/config.toml so
// tests and deployments can inject fixture configurations.
package file
