// internal/stats/checksum.go
//
// Tamper-deterrent checksum over serialized stats.
//
// The fingerprint is a 32-bit rolling hash (h = h*31 + byte, int32
// wraparound) over the JSON form of Stats plus a fixed salt, reduced to
// base 36. encoding/json serializes struct fields in declaration order
// and map keys sorted, so equal stats always hash equal.
//
// This is a deterrent against casual localStorage-style edits, not a
// security boundary: the salt ships inside the binary and the hash is
// trivially reproducible by anyone reading this file.

package stats

import (
	"encoding/json"
	"strconv"
)

// checksumSalt is embedded on purpose; see the package note above.
const checksumSalt = "BahnBingo2024!Salz"

// Checksum returns the deterministic fingerprint for s.
func Checksum(s Stats) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Stats contains only marshalable field types; unreachable.
		panic("stats: marshal: " + err.Error())
	}
	b = append(b, checksumSalt...)

	var h int32
	for _, c := range b {
		h = (h << 5) - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
