package appointment

import "time"

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type HoursWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayAvailability is the result of enumerating bookable slots for one day.
type DayAvailability struct {
	IsClosed        bool         `json:"is_closed"`
	Slots           []Slot       `json:"slots"`
	BusinessHours   *HoursWindow `json:"business_hours,omitempty"`
	LunchBreak      *HoursWindow `json:"lunch_break,omitempty"`
	DurationMinutes int          `json:"duration_minutes,omitempty"`
	StepMinutes     int          `json:"slot_step_minutes,omitempty"`
}

// FreeSlots walks the operating window at a fixed step and emits every
// candidate [cur, cur+duration) that fits before window.End and overlaps no
// busy interval. The grid is anchored at window.Start, not at appointment
// boundaries, so services of different duration see different grids.
func FreeSlots(window Interval, duration, step time.Duration, busy []Interval) []Slot {
	slots := []Slot{}

	for cur := window.Start; !cur.Add(duration).After(window.End); cur = cur.Add(step) {
		candidate := Interval{Start: cur, End: cur.Add(duration)}
		if candidate.OverlapsAny(busy) {
			continue
		}
		slots = append(slots, Slot{Start: candidate.Start, End: candidate.End})
	}

	return slots
}
