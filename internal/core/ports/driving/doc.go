// Package driving defines the interfaces through which external
// actors (CLI, TUI, HTTP API, MCP) drive the core services.
//
// These are the "driving" or "primary" ports in hexagonal
// architecture. Adapters call these interfaces; core services
// implement them.
package driving
