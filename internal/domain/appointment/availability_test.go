package appointment

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 2, 13, hour, min, 0, 0, time.UTC)
}

func TestFreeSlots_OpenDayNoBusy(t *testing.T) {
	window := Interval{Start: mustTime(t, 8, 0), End: mustTime(t, 20, 0)}

	slots := FreeSlots(window, 30*time.Minute, 15*time.Minute, nil)

	if len(slots) == 0 {
		t.Fatalf("expected slots, got none")
	}

	if !slots[0].Start.Equal(mustTime(t, 8, 0)) {
		t.Fatalf("expected first slot at 08:00, got %v", slots[0].Start)
	}

	last := slots[len(slots)-1]
	if !last.Start.Equal(mustTime(t, 19, 30)) {
		t.Fatalf("expected last slot start at 19:30, got %v", last.Start)
	}
	if !last.End.Equal(mustTime(t, 20, 0)) {
		t.Fatalf("expected last slot to end exactly at close, got %v", last.End)
	}

	// 08:00 through 19:30 at a 15-minute step
	if len(slots) != 47 {
		t.Fatalf("expected 47 slots, got %d", len(slots))
	}

	for _, s := range slots {
		if s.End.Sub(s.Start) != 30*time.Minute {
			t.Fatalf("slot %v has wrong width", s)
		}
		if s.Start.Before(window.Start) || s.End.After(window.End) {
			t.Fatalf("slot %v escapes the operating window", s)
		}
	}
}

func TestFreeSlots_SecondSlotOnGrid(t *testing.T) {
	window := Interval{Start: mustTime(t, 8, 0), End: mustTime(t, 20, 0)}

	slots := FreeSlots(window, 30*time.Minute, 15*time.Minute, nil)

	if !slots[1].Start.Equal(mustTime(t, 8, 15)) {
		t.Fatalf("expected second slot at 08:15, got %v", slots[1].Start)
	}
}

func TestFreeSlots_DurationLongerThanWindow(t *testing.T) {
	window := Interval{Start: mustTime(t, 9, 0), End: mustTime(t, 10, 0)}

	slots := FreeSlots(window, 2*time.Hour, 15*time.Minute, nil)

	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestFreeSlots_BusyCoversWindow(t *testing.T) {
	window := Interval{Start: mustTime(t, 9, 0), End: mustTime(t, 12, 0)}
	busy := []Interval{{Start: mustTime(t, 9, 0), End: mustTime(t, 12, 0)}}

	slots := FreeSlots(window, 30*time.Minute, 15*time.Minute, busy)

	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestFreeSlots_SkipsBusyInterval(t *testing.T) {
	window := Interval{Start: mustTime(t, 8, 0), End: mustTime(t, 20, 0)}
	busy := []Interval{{Start: mustTime(t, 10, 0), End: mustTime(t, 10, 30)}}

	slots := FreeSlots(window, 30*time.Minute, 15*time.Minute, busy)

	for _, s := range slots {
		if (Interval{Start: s.Start, End: s.End}).Overlaps(busy[0]) {
			t.Fatalf("slot %v overlaps busy interval", s)
		}
	}

	found := false
	for _, s := range slots {
		if s.Start.Equal(mustTime(t, 10, 30)) {
			found = true
		}
		if s.Start.Equal(mustTime(t, 9, 45)) {
			t.Fatalf("09:45 slot ends inside the busy interval, must not be emitted")
		}
	}
	if !found {
		t.Fatalf("expected a slot starting exactly when the busy interval ends")
	}
}

func TestIntervalOverlaps_HalfOpen(t *testing.T) {
	a := Interval{Start: mustTime(t, 10, 0), End: mustTime(t, 10, 30)}
	b := Interval{Start: mustTime(t, 10, 30), End: mustTime(t, 11, 0)}

	if a.Overlaps(b) {
		t.Fatalf("back-to-back intervals must not overlap")
	}

	c := Interval{Start: mustTime(t, 10, 15), End: mustTime(t, 10, 45)}
	if !a.Overlaps(c) {
		t.Fatalf("expected overlap for partially intersecting intervals")
	}
}
