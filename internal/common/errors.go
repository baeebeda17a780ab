// Package common defines shared constants and sentinel errors used across
// client and server layers of filebin. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.

	// ErrNameTaken reports that an insert lost the race on the unique
	// obfuscated-name column. It is absorbed by the allocator's retry
	// loop and never reaches callers of Allocate.
	ErrNameTaken = errors.New("name already taken")

	// ErrNotFound is returned by lookups that matched no row.
	ErrNotFound = errors.New("not found")
)
