package appointment

import (
	"context"
	"time"

	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
	step time.Duration
}

func NewGetAvailability(repo domain.Repository, stepMinutes int) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		step: time.Duration(stepMinutes) * time.Minute,
	}
}

// Execute enumerates the bookable slots for a service on a given day.
// Recomputed on every call; nothing is cached.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	serviceID uint,
	day time.Time,
) (*domain.DayAvailability, error) {

	service, err := uc.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.Active {
		return nil, httperr.NotFoundErr("service_not_found", "Service not found or inactive.")
	}

	bh, err := uc.repo.GetBusinessHours(ctx, service.BarberID, domain.WeekdayIndex(day))
	if err != nil {
		return nil, err
	}

	window, open := domain.DayWindow(bh, day)
	if !open {
		return &domain.DayAvailability{IsClosed: true, Slots: []domain.Slot{}}, nil
	}

	appts, err := uc.repo.ListAppointmentsForDay(ctx, service.BarberID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	blocks, err := uc.repo.ListTimeBlocksOverlapping(ctx, service.BarberID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	busy := domain.BusyIntervals(appts, blocks)

	out := &domain.DayAvailability{
		IsClosed: false,
		BusinessHours: &domain.HoursWindow{
			Start: bh.OpenTime,
			End:   bh.CloseTime,
		},
		DurationMinutes: service.DurationMin,
		StepMinutes:     int(uc.step / time.Minute),
	}

	if lunch, ok := domain.LunchWindow(bh, day); ok {
		busy = append(busy, lunch)
		out.LunchBreak = &domain.HoursWindow{
			Start: bh.LunchStart,
			End:   bh.LunchEnd,
		}
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	out.Slots = domain.FreeSlots(window, duration, uc.step, busy)

	return out, nil
}
