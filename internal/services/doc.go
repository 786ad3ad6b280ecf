// Package services holds the journal's stateful core: the entry store, the
// profile sub-store and the Journal facade the presentation layer talks to.
//
// All mutations run on the caller's goroutine under a per-service mutex and
// persist through storage.Store. Storage failures never reach the caller;
// they are logged and the in-memory state stays authoritative for the
// running process.
package services
