package appointment

import (
	"context"

	"github.com/nobrecorte/booking-api/internal/audit"
	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/models"
)

type MarkAppointmentPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkAppointmentPaid(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *MarkAppointmentPaid {
	return &MarkAppointmentPaid{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *MarkAppointmentPaid) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFoundErr("appointment_not_found", "Appointment not found.")
	}

	changed, err := domain.MarkPaid(ap, barberID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return ap, nil
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "appointment_marked_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
