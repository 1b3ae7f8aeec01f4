// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// orchestration of the involved ports, and a best-effort notification
// publish that never affects the command's outcome.
//
// The order store is in-process and non-transactional, so unlike a
// database-backed write model there is no unit-of-work layer here: handlers
// talk to the repository port directly and atomicity of the single mutating
// operation is the repository's contract.
package commands
