package token

import (
	"testing"
	"time"
)

func TestTicksUnixEpoch(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()
	if got := toTicks(epoch); got != unixEpochTicks {
		t.Errorf("expected %d ticks at the Unix epoch, got %d", unixEpochTicks, got)
	}
}

func TestTicksRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		when time.Time
	}{
		{"unix epoch", time.Unix(0, 0)},
		{"recent instant", time.Date(2026, 8, 30, 12, 34, 56, 0, time.UTC)},
		{"with sub-second", time.Date(2026, 8, 30, 12, 34, 56, 789_000_100, time.UTC)},
		{"far future", time.Date(2120, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := fromTicks(toTicks(tc.when))
			want := tc.when.UTC().Truncate(100 * time.Nanosecond)
			if !got.Equal(want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestTicksResolution(t *testing.T) {
	// Anything below 100 ns is truncated on the wire.
	a := time.Date(2026, 1, 1, 0, 0, 0, 150, time.UTC)
	b := time.Date(2026, 1, 1, 0, 0, 0, 100, time.UTC)
	if toTicks(a) != toTicks(b) {
		t.Error("expected sub-100ns difference to truncate to the same tick")
	}
}

func TestTicksOrdering(t *testing.T) {
	earlier := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Minute)
	if toTicks(earlier) >= toTicks(later) {
		t.Error("ticks should preserve ordering")
	}
}
