// Package repository defines error values that are reused across
// multiple repositories. These sentinel values allow higher layers
// such as handlers to distinguish between different failure scenarios
// without inspecting SQL errors. Lookups that find nothing return
// sql.ErrNoRows untouched; handlers translate it into 404 responses.
package repository

import "errors"

// ErrConflict is returned when a delete or insert cannot be performed
// because of conflicting state, such as deleting a room that still
// has bookings. Handlers should translate this into an HTTP 409
// response.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned by user creation when the email address
// is already registered.
var ErrEmailExists = errors.New("email already exists")
