package bookpesa

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// newID generates a record identifier: the base-36 unix-milli timestamp of
// insertion followed by a 4-character random base-36 suffix. The suffix keeps
// the collision probability negligible even for two records created within
// the same millisecond.
func newID(at time.Time) string {
	suffix := strconv.FormatUint(uint64(rand.Uint32()), 36)
	for len(suffix) < 4 {
		suffix = "0" + suffix
	}
	return strconv.FormatInt(at.UnixMilli(), 36) + suffix[:4]
}
