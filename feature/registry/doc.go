// Package registry keeps an optional MySQL-backed log of artifacts the
// storage layer touched: datasets uploaded as CSV and model archives loaded
// from the bucket.
//
// The registry is best-effort tooling around the pipeline, not part of the
// storage contract. Commands create it with a nil database when the
// connection is unavailable, and every operation degrades to a no-op.
package registry
