package timezone

import (
	"os"
	"time"
)

// All schedule math runs in a single canonical zone. Timestamps are never
// normalized per request.
const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location() *time.Location {
	if tz := os.Getenv("APP_TIMEZONE"); IsValid(tz) {
		loc, _ := time.LoadLocation(tz)
		return loc
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
