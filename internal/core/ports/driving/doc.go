// Package driving defines the interfaces through which callers drive
// the core. The CLI, TUI, and MCP adapters all consume these.
package driving
