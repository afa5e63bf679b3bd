package token

import "time"

// Expiration instants travel on the wire as 100-nanosecond ticks since
// 0001-01-01T00:00:00 UTC. The range outgrows time.Duration, so the
// conversion goes through Unix seconds instead of time.Sub.
const (
	ticksPerSecond = 10_000_000
	unixEpochTicks = 621_355_968_000_000_000
)

// toTicks converts a time to wire ticks, truncating below 100 ns.
func toTicks(t time.Time) int64 {
	t = t.UTC()
	return unixEpochTicks + t.Unix()*ticksPerSecond + int64(t.Nanosecond())/100
}

// fromTicks converts wire ticks back to a UTC instant.
func fromTicks(ticks int64) time.Time {
	rel := ticks - unixEpochTicks
	return time.Unix(rel/ticksPerSecond, (rel%ticksPerSecond)*100).UTC()
}
