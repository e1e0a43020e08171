package appointment

import (
	"context"
	"time"

	"github.com/nobrecorte/booking-api/internal/audit"
	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// CreateAppointmentInput is deliberately narrow: only the service and the
// requested start are accepted. Everything else (client, barber, status,
// snapshots) is derived server-side.
type CreateAppointmentInput struct {
	ServiceID uint
	StartTime time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditD,
	}
}

// Execute validates and persists a booking for the calling client. The whole
// check-then-insert runs inside one transaction, serialized per barber+day by
// an advisory lock, so two overlapping requests cannot both commit.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	clientID uint,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	var created *models.Appointment

	err := uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		service, err := tx.GetServiceByID(ctx, in.ServiceID)
		if err != nil {
			return err
		}
		if service == nil || !service.Active {
			return httperr.NotFoundErr("service_not_found", "Service not found or inactive.")
		}

		// the barber is implied by the service, never chosen by the client
		barberID := service.BarberID

		start := in.StartTime
		end := start.Add(time.Duration(service.DurationMin) * time.Minute)

		if err := tx.LockBarberDay(ctx, barberID, start); err != nil {
			return err
		}

		bh, err := tx.GetBusinessHours(ctx, barberID, domain.WeekdayIndex(start))
		if err != nil {
			return err
		}

		window, open := domain.DayWindow(bh, start)
		if !open {
			return httperr.ConflictErr("day_closed", "Barber closed or no schedule configured for this day.")
		}

		if start.Before(window.Start) || end.After(window.End) {
			return httperr.ConflictErr("outside_business_hours", "Requested time is outside business hours.")
		}

		requested := domain.Interval{Start: start, End: end}

		lunch, hasLunch := domain.LunchWindow(bh, start)
		if hasLunch && requested.Overlaps(lunch) {
			return httperr.ConflictErr("lunch_break", "Requested time overlaps the lunch break.")
		}

		appts, err := tx.ListAppointmentsForDay(ctx, barberID, window.Start, window.End)
		if err != nil {
			return err
		}
		blocks, err := tx.ListTimeBlocksOverlapping(ctx, barberID, window.Start, window.End)
		if err != nil {
			return err
		}

		busy := domain.BusyIntervals(appts, blocks)
		if hasLunch {
			busy = append(busy, lunch)
		}

		if requested.OverlapsAny(busy) {
			return httperr.ConflictErr("slot_unavailable", "Requested time is no longer available.")
		}

		ap := &models.Appointment{
			ClientID:        clientID,
			BarberID:        barberID,
			ServiceID:       service.ID,
			AppointmentTime: start,

			ServiceNameSnapshot:     service.Name,
			ServicePriceSnapshot:    service.Price,
			ServiceDurationSnapshot: service.DurationMin,

			Status:        string(domain.InitialStatus()),
			PaymentStatus: string(domain.InitialPaymentStatus()),
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
