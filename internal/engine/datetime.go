package engine

import "time"

// fileTimeOffset is the number of .NET ticks (100ns units) between
// 0001-01-01 (the .NET DateTime epoch) and 1601-01-01 (the Windows
// FILETIME epoch Go's time package is easiest to anchor against).
const fileTimeOffset int64 = 504911232000000000

// fileTimeToUnixTicks is the number of ticks between 1601-01-01 and the
// Unix epoch, 1970-01-01.
const fileTimeToUnixTicks int64 = 116444736000000000

const ticksPerSecond int64 = 10_000_000

// utcFlagBit marks a DistanceDateTime's tick value as UTC (bit 62 of the
// .NET DateTime binary representation).
const utcFlagBit = int64(1) << 62

const (
	minTicks int64 = 0
	maxTicks int64 = 3155378975999999999
)

// DateTime is a .NET-style tick-count timestamp as stored on the wire: a
// 64-bit tick count with a UTC flag in bit 62.
type DateTime int64

// ToTime converts the wire value to a time.Time in UTC.
func (d DateTime) ToTime() time.Time {
	ticks := int64(d) &^ utcFlagBit
	unixNanos := (ticks - fileTimeOffset - fileTimeToUnixTicks) * (int64(time.Second) / ticksPerSecond)
	return time.Unix(0, unixNanos).UTC()
}

// FromTime builds a DateTime from a time.Time, always setting the UTC
// flag bit, and clamping into the documented valid tick range.
func FromTime(t time.Time) DateTime {
	t = t.UTC()
	ticks := t.UnixNano()/(int64(time.Second)/ticksPerSecond) + fileTimeToUnixTicks + fileTimeOffset
	if ticks < minTicks {
		ticks = minTicks
	}
	if ticks > maxTicks {
		ticks = maxTicks
	}
	return DateTime(ticks | utcFlagBit)
}
