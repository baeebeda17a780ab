// Package names implements allocation of short obfuscated file names.
//
// An allocated name is a 6-character string over [a-z0-9], unique across all
// non-purged rows of the assets table, paired with an advisory expiration
// instant (midnight UTC on the first day of the following month). Insertion
// into the store is the reservation: there is no separate reserve/commit
// step, and rows are never mutated afterwards.
package names

import "time"

// IssuedName is one allocated name together with its expiration.
type IssuedName struct {
	Value    string
	ExpireAt time.Time
}
