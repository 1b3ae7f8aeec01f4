// Package queries implements the read side of the application layer.
//
// Queries never mutate state. Each query is a constructor-guarded value
// paired with a handler that reads from a port and maps aggregates into
// flat response structs for the transport layer. Order statuses in the
// responses are derived at read time, so two reads of the same order may
// legitimately report different statuses as its delivery progresses.
package queries
