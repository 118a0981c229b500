// Package driven defines the interfaces the core depends on.
// Adapters under internal/adapters/driven implement them.
package driven
