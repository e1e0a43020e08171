package appointment

import (
	"context"
	"time"

	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/models"
)

type hoursKey struct {
	barberID uint
	weekday  int
}

// fakeRepo is an in-memory Repository for use case tests.
type fakeRepo struct {
	services map[uint]*models.Service
	hours    map[hoursKey]*models.BusinessHours
	appts    []*models.Appointment
	blocks   []models.TimeBlock
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[uint]*models.Service{},
		hours:    map[hoursKey]*models.BusinessHours{},
	}
}

func (f *fakeRepo) addService(s models.Service) *models.Service {
	f.services[s.ID] = &s
	return &s
}

func (f *fakeRepo) addHours(bh models.BusinessHours) {
	f.hours[hoursKey{bh.BarberID, bh.Weekday}] = &bh
}

func (f *fakeRepo) InTransaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) LockBarberDay(ctx context.Context, barberID uint, day time.Time) error {
	return nil
}

func (f *fakeRepo) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	return f.services[id], nil
}

func (f *fakeRepo) GetBusinessHours(ctx context.Context, barberID uint, weekday int) (*models.BusinessHours, error) {
	return f.hours[hoursKey{barberID, weekday}], nil
}

func (f *fakeRepo) ListAppointmentsForDay(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.BarberID != barberID || ap.Status == string(domain.StatusCanceled) {
			continue
		}
		if ap.AppointmentTime.Before(start) || !ap.AppointmentTime.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListTimeBlocksOverlapping(ctx context.Context, barberID uint, start, end time.Time) ([]models.TimeBlock, error) {
	var out []models.TimeBlock
	for _, b := range f.blocks {
		if b.BarberID != barberID {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	ap.CreatedAt = time.Now()
	stored := *ap
	f.appts = append(f.appts, &stored)
	return nil
}

func (f *fakeRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range f.appts {
		if ap.ID == id {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i, stored := range f.appts {
		if stored.ID == ap.ID {
			cp := *ap
			f.appts[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) ListAppointmentsForClient(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForBarber(ctx context.Context, barberID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.BarberID == barberID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.BarberID != barberID {
			continue
		}
		if ap.AppointmentTime.Before(start) || !ap.AppointmentTime.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
