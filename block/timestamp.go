package block

import (
	"strconv"
	"strings"

	"github.com/aperturerobotics/billcoin/utils/numeric"
)

// Timestamp is a block creation time since the epoch.
type Timestamp struct {
	// Seconds is the number of whole seconds.
	Seconds int64
	// Nanoseconds is the sub-second component.
	Nanoseconds int64
}

// ParseTimestamp parses a seconds.nanoseconds string.
// Components that are missing or not numbers read as zero.
func ParseTimestamp(s string) Timestamp {
	secs, nanos, _ := strings.Cut(s, ".")
	if i := strings.IndexByte(nanos, '.'); i >= 0 {
		nanos = nanos[:i]
	}
	return Timestamp{
		Seconds:     numeric.LeadingInt(secs),
		Nanoseconds: numeric.LeadingInt(nanos),
	}
}

// Valid checks that neither component is negative.
func (t Timestamp) Valid() bool {
	return t.Seconds >= 0 && t.Nanoseconds >= 0
}

// After checks if t is strictly later than prev.
func (t Timestamp) After(prev Timestamp) bool {
	if t.Seconds != prev.Seconds {
		return t.Seconds > prev.Seconds
	}
	return t.Nanoseconds > prev.Nanoseconds
}

// String renders the timestamp as seconds.nanoseconds.
func (t Timestamp) String() string {
	return strconv.FormatInt(t.Seconds, 10) + "." + strconv.FormatInt(t.Nanoseconds, 10)
}
