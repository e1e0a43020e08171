package appointment

import (
	"time"

	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/models"
)

// WeekdayIndex maps a timestamp to the 0=Monday .. 6=Sunday convention used
// by BusinessHours rows.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func parseHM(hm string, day time.Time) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}

// DayWindow resolves the operating window of a rule on a concrete day.
// ok is false when the day is closed or the rule has no usable bounds.
func DayWindow(bh *models.BusinessHours, day time.Time) (Interval, bool) {
	if bh == nil || bh.IsClosed || bh.OpenTime == "" || bh.CloseTime == "" {
		return Interval{}, false
	}

	open, ok1 := parseHM(bh.OpenTime, day)
	close, ok2 := parseHM(bh.CloseTime, day)
	if !ok1 || !ok2 || !close.After(open) {
		return Interval{}, false
	}

	return Interval{Start: open, End: close}, true
}

// LunchWindow resolves the lunch interval on a concrete day, if configured.
func LunchWindow(bh *models.BusinessHours, day time.Time) (Interval, bool) {
	if bh == nil || bh.LunchStart == "" || bh.LunchEnd == "" {
		return Interval{}, false
	}

	start, ok1 := parseHM(bh.LunchStart, day)
	end, ok2 := parseHM(bh.LunchEnd, day)
	if !ok1 || !ok2 {
		return Interval{}, false
	}

	return Interval{Start: start, End: end}, true
}

// ValidateBusinessHours enforces the rule invariants before an upsert.
func ValidateBusinessHours(bh *models.BusinessHours) error {
	if bh.Weekday < 0 || bh.Weekday > 6 {
		return httperr.ValidationErr("invalid_weekday", "weekday must be 0 (Monday) to 6 (Sunday).")
	}

	if bh.IsClosed {
		return nil
	}

	if bh.OpenTime == "" || bh.CloseTime == "" {
		return httperr.ValidationErr("missing_bounds", "open_time and close_time are required when the day is open.")
	}

	ref := time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC)
	open, ok1 := parseHM(bh.OpenTime, ref)
	close, ok2 := parseHM(bh.CloseTime, ref)
	if !ok1 || !ok2 {
		return httperr.ValidationErr("invalid_time_format", "times must be in HH:MM format.")
	}
	if !close.After(open) {
		return httperr.ValidationErr("inverted_hours", "close_time must be after open_time.")
	}

	if (bh.LunchStart == "") != (bh.LunchEnd == "") {
		return httperr.ValidationErr("partial_lunch", "lunch_start and lunch_end must be set together.")
	}

	if bh.LunchStart != "" {
		ls, ok1 := parseHM(bh.LunchStart, ref)
		le, ok2 := parseHM(bh.LunchEnd, ref)
		if !ok1 || !ok2 {
			return httperr.ValidationErr("invalid_time_format", "times must be in HH:MM format.")
		}
		if !le.After(ls) {
			return httperr.ValidationErr("inverted_lunch", "lunch_end must be after lunch_start.")
		}
		if ls.Before(open) || le.After(close) {
			return httperr.ValidationErr("lunch_outside_hours", "lunch interval must lie within the operating window.")
		}
	}

	return nil
}
