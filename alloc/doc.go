// Package alloc defines the boundary to the MAPI buffer allocator.
//
// # Overview
//
// Every buffer this library hands out is owned by the MAPI subsystem, not by
// the Go runtime. The Allocator interface captures the three-call contract of
// that subsystem:
//
//   - Allocate(byteCount): create a root allocation
//   - AllocateMore(byteCount, root): create an allocation chained to a root
//   - Free(root): release a root and, transitively, everything chained to it
//
// plus FreeRows, the dedicated release call for row set structures returned
// by table queries.
//
// # Implementations
//
// MAPI: production allocator bound to mapi32.dll (Windows only; on other
// platforms every call fails with ErrUnavailable).
//
// Slab: portable allocator backed by Go memory that honors the same chaining
// and release contract. Used by tests and by tooling that runs where
// mapi32.dll is not present.
//
// Recorder: wrapper that counts calls to an inner Allocator, for verifying
// exactly-once release behavior in tests.
//
// # Free Contract
//
// Free must be called exactly once per root allocation. It is not idempotent
// on the foreign side; callers get exactly-once behavior from the wrapper
// types in the buffer and rows packages, which swap their handle to nil
// before calling Free.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
