// Package remote defines the authoritative checklist store interface and its
// two implementations: an HTTP client for the workshop API and an in-memory
// store for offline runs and tests.
//
// The package also owns the failure taxonomy the engine's rollback logic
// keys on: NotFoundError, ValidationError (rejected before any state
// changed), NetworkError (no response reached the server) and ServerError
// (the server answered with a failure).
package remote
