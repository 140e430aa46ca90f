// Package engine implements the pricing and availability rules of the
// reservation system: date-interval overlap, per-night price resolution
// with breakdown aggregation, the booking conflict check and the
// two-tier blocking rules between ordinary bookings and holiday
// packages.  The engine performs no I/O: every function operates on
// already-fetched in-memory records and is deterministic given the
// same inputs.  Callers are expected to invoke it inside whatever
// transaction boundary serializes reads and writes for a room.
package engine

import "errors"

// ErrValidation is returned for caller-correctable input problems such
// as inverted date ranges, a blank room type or a non-positive price.
// Handlers should translate this into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned when a referenced room, package or period is
// absent from the supplied data.  Handlers should translate this into
// an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a date overlap, double booking or
// package blocking prevents an operation.  The wrapping message names
// the blocking entity so the caller can adjust the request.  Handlers
// should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
