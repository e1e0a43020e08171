package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/models"
	"github.com/nobrecorte/booking-api/internal/timezone"
)

func seedBooking(repo *fakeRepo, startsIn time.Duration) *models.Appointment {
	ap := &models.Appointment{
		ClientID:                7,
		BarberID:                10,
		ServiceID:               1,
		AppointmentTime:         timezone.Now().Add(startsIn),
		ServiceDurationSnapshot: 30,
		Status:                  "pending",
		PaymentStatus:           "unpaid",
	}
	_ = repo.CreateAppointment(context.Background(), ap)
	return ap
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelAppointment(repo, newTestDispatcher(t), domain.CancelPolicy{MinNotice: 2 * time.Hour})

	_, err := uc.Execute(context.Background(), domain.Actor{ID: 7, Role: domain.RoleClient}, 99, "")
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCancelAppointment_ClientBlockedInsideWindow(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelAppointment(repo, newTestDispatcher(t), domain.CancelPolicy{MinNotice: 2 * time.Hour})
	ap := seedBooking(repo, 90*time.Minute)

	_, err := uc.Execute(context.Background(), domain.Actor{ID: 7, Role: domain.RoleClient}, ap.ID, "imprevisto")
	if !httperr.IsBusiness(err, "cancellation_window_passed") {
		t.Fatalf("expected cancellation_window_passed, got %v", err)
	}

	// the barber cancels the same booking without restriction
	got, err := uc.Execute(context.Background(), domain.Actor{ID: 10, Role: domain.RoleBarber}, ap.ID, "emergencia")
	if err != nil {
		t.Fatalf("barber cancel failed: %v", err)
	}
	if got.Status != "canceled" || got.CanceledBy != "barber" {
		t.Fatalf("wrong cancel record: %+v", got)
	}
}

func TestCancelAppointment_ClientOutsideWindow(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelAppointment(repo, newTestDispatcher(t), domain.CancelPolicy{MinNotice: 2 * time.Hour})
	ap := seedBooking(repo, 3*time.Hour)

	got, err := uc.Execute(context.Background(), domain.Actor{ID: 7, Role: domain.RoleClient}, ap.ID, "imprevisto")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if got.Status != "canceled" || got.CanceledBy != "client" || got.CanceledAt == nil {
		t.Fatalf("wrong cancel record: %+v", got)
	}

	stored, _ := repo.GetAppointmentByID(context.Background(), ap.ID)
	if stored.Status != "canceled" {
		t.Fatalf("cancel not persisted: %s", stored.Status)
	}
}

func TestCancelAppointment_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelAppointment(repo, newTestDispatcher(t), domain.CancelPolicy{MinNotice: 2 * time.Hour})
	ap := seedBooking(repo, 3*time.Hour)
	actor := domain.Actor{ID: 7, Role: domain.RoleClient}

	first, err := uc.Execute(context.Background(), actor, ap.ID, "imprevisto")
	if err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	second, err := uc.Execute(context.Background(), actor, ap.ID, "outro motivo")
	if err != nil {
		t.Fatalf("repeat cancel failed: %v", err)
	}
	if !second.CanceledAt.Equal(*first.CanceledAt) || second.CancelReason != first.CancelReason {
		t.Fatalf("repeat cancel rewrote the record: %+v vs %+v", first, second)
	}
}
