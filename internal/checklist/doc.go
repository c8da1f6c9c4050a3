// Package checklist holds the domain model for service-revision checklists:
// the Checklist and Item types shared with the wire protocol, the pure
// aggregate calculator, deep cloning, the adaptive item templates, and the
// validation guards applied before any state changes.
//
// The package has no dependencies on the engine or transport layers; both
// build on it. Aggregate fields (the four status counts and the estimated
// total) are always derived from the item sequence via Recompute and never
// trusted from a cache after the sequence changes.
package checklist
