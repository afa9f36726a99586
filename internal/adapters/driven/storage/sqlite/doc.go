// Package sqlite provides the durable key-value medium backing the
// annotation store, a single SQLite table keyed by collection name
// with JSON-text values. The pure-Go driver keeps the binary free of
// cgo.
package sqlite
