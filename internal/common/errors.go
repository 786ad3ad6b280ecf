// Package common defines shared constants and sentinel errors used across
// the journal core and the widget host. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Payload stored under a key could not be decoded.
	ErrDecode = errors.New("decode failure")

	// Neither the local nor the shared store accepted a write.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Validation errors.
	ErrInvalidWritingTime = errors.New("invalid writing time")
	ErrInvalidDate        = errors.New("invalid date")
)
