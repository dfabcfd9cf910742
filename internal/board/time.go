package board

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// MinutesUntil converts a wall-clock "HH:MM" string (seconds, if present,
// are ignored) into whole minutes from now. A candidate that is already in
// the past with an hour component below 6 is rolled into the next day,
// which keeps trains scheduled shortly after midnight positive while "now"
// is still late evening. The result may be negative. ok is false when the
// input is absent or unparseable.
func MinutesUntil(timeStr string, now time.Time) (mins int, ok bool) {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return 0, false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, false
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, false
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, now.Location())
	if target.Before(now) && hh < 6 {
		target = target.AddDate(0, 0, 1)
	}
	return int(math.Round(target.Sub(now).Minutes())), true
}
