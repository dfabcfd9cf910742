package board

import (
	"testing"
	"time"
)

func TestMinutesUntil(t *testing.T) {
	now := time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		timeStr string
		now     time.Time
		want    int
		wantOK  bool
	}{
		{"later today", "08:00", now, 60, true},
		{"exactly now", "07:00", now, 0, true},
		{"already departed", "06:30", now, -30, true},
		{"seconds ignored", "08:00:30", now, 60, true},
		{"past midnight rollover", "00:05", time.Date(2026, 8, 28, 23, 58, 0, 0, time.UTC), 7, true},
		{"early morning from evening", "05:30", time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC), 390, true},
		{"past time after 6 does not roll", "11:00", time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), -60, true},
		{"empty", "", now, 0, false},
		{"no separator", "0800", now, 0, false},
		{"not numeric", "ab:cd", now, 0, false},
		{"hour out of range", "24:00", now, 0, false},
		{"minute out of range", "10:75", now, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MinutesUntil(tc.timeStr, tc.now)
			if ok != tc.wantOK {
				t.Fatalf("MinutesUntil(%q) ok = %v, want %v", tc.timeStr, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("MinutesUntil(%q) = %d, want %d", tc.timeStr, got, tc.want)
			}
		})
	}
}
