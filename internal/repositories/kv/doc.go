// Package kv provides the key-value persistence used by the shared store.
//
// # Overview
//
// Repository is a flat mapping from fixed string keys to serialized blobs,
// the same shape as a platform "user defaults" domain. SQLiteRepository
// persists it in a `defaults` table through a dbx.DBTX (either *sql.DB or
// *sql.Tx); MemoryRepository keeps it in process memory.
//
// # Contract
//
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites any previous value.
//   - DeleteKeys ignores absent keys and removes the rest atomically.
//
// # Concurrency
//
// SQLiteRepository is safe for concurrent use when backed by *sql.DB, and
// several processes may open the same file; SQLite's own locking (with the
// busy timeout set by dbx.OpenSQLite) orders their writes.
// MemoryRepository guards its map with a mutex.
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "diary_entries_key", blob)
//	blob, _ := repo.Get(ctx, "diary_entries_key")
package kv
