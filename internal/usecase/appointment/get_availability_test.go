package appointment

import (
	"context"
	"testing"

	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/models"
)

func TestGetAvailability_ClosedDay(t *testing.T) {
	repo, at := seedMonday(t, "", "")
	repo.hours[hoursKey{10, 0}].IsClosed = true
	uc := NewGetAvailability(repo, 15)

	out, err := uc.Execute(context.Background(), 1, at(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsClosed {
		t.Fatalf("expected IsClosed")
	}
	if len(out.Slots) != 0 {
		t.Fatalf("closed day emitted %d slots", len(out.Slots))
	}
}

func TestGetAvailability_UnknownService(t *testing.T) {
	repo, at := seedMonday(t, "", "")
	uc := NewGetAvailability(repo, 15)

	_, err := uc.Execute(context.Background(), 99, at(0, 0))
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestGetAvailability_ExcludesBookedAndLunch(t *testing.T) {
	repo, at := seedMonday(t, "12:00", "13:00")
	create := NewCreateAppointment(repo, newTestDispatcher(t))
	uc := NewGetAvailability(repo, 15)

	if _, err := create.Execute(context.Background(), 7, CreateAppointmentInput{
		ServiceID: 1,
		StartTime: at(10, 0),
	}); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	out, err := uc.Execute(context.Background(), 1, at(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.IsClosed {
		t.Fatalf("open day reported closed")
	}
	if out.DurationMinutes != 30 || out.StepMinutes != 15 {
		t.Fatalf("wrong slot parameters: %+v", out)
	}
	if out.BusinessHours == nil || out.BusinessHours.Start != "08:00" {
		t.Fatalf("business hours missing: %+v", out.BusinessHours)
	}
	if out.LunchBreak == nil || out.LunchBreak.Start != "12:00" {
		t.Fatalf("lunch break missing: %+v", out.LunchBreak)
	}

	starts := map[string]bool{}
	for _, s := range out.Slots {
		starts[s.Start.Format("15:04")] = true
	}

	for _, blocked := range []string{"09:45", "10:00", "10:15", "11:45", "12:00", "12:45"} {
		if starts[blocked] {
			t.Fatalf("slot %s should be excluded", blocked)
		}
	}
	for _, free := range []string{"08:00", "09:30", "10:30", "11:15", "13:00", "19:30"} {
		if !starts[free] {
			t.Fatalf("slot %s should be available", free)
		}
	}
}

func TestGetAvailability_TimeBlock(t *testing.T) {
	repo, at := seedMonday(t, "", "")
	repo.blocks = append(repo.blocks, models.TimeBlock{
		ID:        1,
		BarberID:  10,
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
	})
	uc := NewGetAvailability(repo, 15)

	out, err := uc.Execute(context.Background(), 1, at(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range out.Slots {
		if s.Start.Before(at(10, 0)) && s.End.After(at(9, 0)) {
			t.Fatalf("slot %v overlaps the time block", s.Start)
		}
	}
}
