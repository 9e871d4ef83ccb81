// Package solstore persists solved tour-improvement instances in SQLite.
//
// Each record captures one solve: a stable key for the instance input, the
// instance size, the worker count, initial and final cost, total gain,
// driver rounds, the final tour, and per-phase timings. Records are
// upserted by key, so re-solving the same instance refreshes its row.
//
// The store wraps database/sql over the pure-Go modernc.org/sqlite driver;
// a single write lock serializes mutations, reads share an RLock.
package solstore
