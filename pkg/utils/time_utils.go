package utils

import "time"

// Jakarta time (WIB, +07:00) for donor-facing formatting.
var wibLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsWIB converts an epoch value in seconds to Jakarta time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsWIB(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(wibLoc)
}

func FormatRFC3339WIB(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(wibLoc).Format(time.RFC3339)
}
