package appointment

import (
	"time"

	"github.com/nobrecorte/booking-api/internal/models"
)

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses the half-open test: aStart < bEnd AND aEnd > bStart.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

func (a Interval) OverlapsAny(busy []Interval) bool {
	for _, b := range busy {
		if a.Overlaps(b) {
			return true
		}
	}
	return false
}

// BusyIntervals unions appointment intervals and block intervals into the
// set of occupied ranges. Appointments are expected to be pre-filtered to
// non-canceled ones; their width comes from the duration snapshot. Entries
// are not merged: callers only test membership.
func BusyIntervals(appts []models.Appointment, blocks []models.TimeBlock) []Interval {
	busy := make([]Interval, 0, len(appts)+len(blocks))

	for _, ap := range appts {
		busy = append(busy, Interval{
			Start: ap.AppointmentTime,
			End:   ap.EndTime(),
		})
	}

	for _, b := range blocks {
		busy = append(busy, Interval{
			Start: b.StartTime,
			End:   b.EndTime,
		})
	}

	return busy
}
