// Package driven defines the driven (outbound) ports of the core.
// Adapters implement these interfaces: durable storage, baseline trip
// data. The core depends only on the interfaces, so tests substitute
// in-memory fakes.
package driven
