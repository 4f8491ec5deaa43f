// Package store provides SQLite-backed storage for pandasql.
//
// Two kinds of database are handled:
//   - History databases, opened with Open, hold a conversions table recording
//     each expression, the table it targeted, the matched pattern and the SQL
//     produced. Rows are keyed by UUIDv7 and ordered by a logical seq counter.
//   - Dataset databases, opened with OpenDataset, belong to the user. They are
//     opened read-only and only queried with generated SQL.
//
// # Database Configuration
//
// History databases use:
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
