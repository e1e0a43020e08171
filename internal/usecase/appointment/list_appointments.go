package appointment

import (
	"context"
	"time"

	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lists the actor's own appointments: a client sees their bookings,
// a barber sees their agenda.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor domain.Actor,
) ([]models.Appointment, error) {

	switch actor.Role {
	case domain.RoleClient:
		return uc.repo.ListAppointmentsForClient(ctx, actor.ID)
	case domain.RoleBarber:
		return uc.repo.ListAppointmentsForBarber(ctx, actor.ID)
	}
	return []models.Appointment{}, nil
}

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	day time.Time,
) ([]models.Appointment, error) {

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	return uc.repo.ListAppointmentsForPeriod(ctx, barberID, start, end)
}
