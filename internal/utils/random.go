// internal/utils/random.go
package utils

import (
	"crypto/rand"
	"math/big"
)

// RandomNumericString returns a digits-only string of the given length,
// drawn uniformly so leading zeros are as likely as any other digit. Used
// for verification codes; a failed read from the system entropy source is
// unrecoverable, hence the panic.
func RandomNumericString(length int) string {
	const digits = "0123456789"
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			panic(err)
		}
		b[i] = digits[num.Int64()]
	}
	return string(b)
}
