package report

import (
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/redactyl/secretscan/internal/types"
)

// Fingerprint is a stable 16-hex-digit identifier for an offender, derived
// from its path and reason.
func Fingerprint(o types.Offender) string {
	return fastHash([]byte(o.Path + "|" + o.Reason()))
}

func fastHash(b []byte) string {
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
