package appointment

import (
	"context"
	"time"

	"github.com/nobrecorte/booking-api/internal/models"
)

type Repository interface {
	// InTransaction runs fn against a transactional view of the repository.
	// Every read and write inside fn shares one storage transaction.
	InTransaction(ctx context.Context, fn func(tx Repository) error) error

	// LockBarberDay serializes concurrent bookings for the same barber and
	// day for the remainder of the enclosing transaction.
	LockBarberDay(ctx context.Context, barberID uint, day time.Time) error

	// -------- Service --------
	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Business hours --------
	GetBusinessHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.BusinessHours, error)

	// -------- Busy-interval sources --------
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListTimeBlocksOverlapping(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.TimeBlock, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
