// Package engine implements the checklist reconciliation core: optimistic
// local mutations with immediate aggregate recomputation, per-item debounced
// cost writes, merge of authoritative server responses into local state, and
// rollback to the last confirmed-good snapshot when a write fails.
//
// # State ownership
//
// The engine exclusively owns one in-memory checklist per open view. The
// rendering layer only ever sees deep copies through Snapshot; the backup
// snapshot is likewise an independent copy with no aliasing to the live
// instance.
//
// # Merge policies
//
// Which parts of a server response overwrite local state depends on the
// operation that produced it:
//
//   - item edit: scalars, counts and the single touched item are taken from
//     the server; every other item is preserved as held locally.
//   - checklist transition: scalars and counts are taken; the response's
//     item list is never adopted.
//   - append: the entire response replaces local state, items included.
//
// After every merge the estimated total is recomputed locally from the
// resulting item sequence so the derived-field invariant cannot drift.
//
// # Concurrency
//
// Mutation entry points run on the caller's goroutine and return after the
// optimistic apply; the actual writes run on their own goroutines and their
// completions synchronize on the engine mutex. At most one write per item is
// in flight, tracked by a per-item flag; writes to distinct items may
// overlap and their merges commute because they touch disjoint slots.
package engine
