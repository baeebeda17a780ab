package names

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// alphabet is the restricted set the public identifiers are drawn from:
// 36^6 ≈ 2.2e9 combinations.
const (
	alphabet   = "abcdefghijklmnopqrstuvwxyz0123456789"
	NameLength = 6
)

var alphabetLen = big.NewInt(int64(len(alphabet)))

// randomName draws a NameLength-character candidate uniformly from alphabet.
func randomName() (string, error) {
	b := make([]byte, NameLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("rand: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}

// nextMonthStart returns midnight UTC on the first day of the month
// following t. time.Date normalizes month 13 into January of the next year.
func nextMonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}
