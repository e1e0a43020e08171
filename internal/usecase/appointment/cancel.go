package appointment

import (
	"context"

	"github.com/nobrecorte/booking-api/internal/audit"
	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/models"
	"github.com/nobrecorte/booking-api/internal/timezone"
)

type CancelAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	policy domain.CancelPolicy
}

func NewCancelAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	policy domain.CancelPolicy,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		audit:  auditD,
		policy: policy,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFoundErr("appointment_not_found", "Appointment not found.")
	}

	now := timezone.Now()
	changed, err := domain.Cancel(ap, actor, reason, now, uc.policy)
	if err != nil {
		return nil, err
	}
	if !changed {
		// already canceled: idempotent no-op, record returned as-is
		return ap, nil
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"canceled_by": actor.Role.String(), "reason": reason},
	})

	return ap, nil
}
