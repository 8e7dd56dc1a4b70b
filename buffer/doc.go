// Package buffer provides typed, bounds-checked views over allocations owned
// by the MAPI allocator.
//
// # Overview
//
// The allocator hands back untyped memory whose lifetimes form a tree: one
// root allocation owns a set of chained sub-allocations, and the whole tree
// is released in a single Free call on the root. Buffer wraps one node of
// that tree and guards three things:
//
//   - sizing: every typed view is checked against the node's byte capacity,
//     and size arithmetic never silently truncates to the allocator's 32-bit
//     size parameter
//   - initialization: a buffer starts Uninitialized and transitions to Ready
//     exactly once, via Commit or CommitSlice
//   - release: only the root node frees, exactly once, no matter how many
//     nodes were chained from it
//
// # Usage
//
//	tags, err := buffer.New[prop.Tag](allocator, 2)
//	if err != nil { ... }
//	defer tags.Close()
//
//	// Fill the memory through the foreign API or an uninit view, then:
//	s, err := tags.CommitSlice(2)
//
// # The Commit Contract
//
// Commit and CommitSlice are the single trust boundary of the package: the
// caller asserts the memory has been fully written. Everything else is safe
// given that assertion holds. Reading a typed view whose bytes were never
// written is not checked and not checkable here.
//
// # Thread Safety
//
// Buffers are not thread-safe and must not be shared across goroutines
// without external synchronization.
package buffer
