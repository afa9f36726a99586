// Package driving defines the driving (inbound) ports of the core:
// the service interfaces the CLI and TUI adapters call. Services in
// internal/core/services implement them.
package driving
