package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Transaction / locking
// --------------------------------------------------

func (r *AppointmentGormRepository) InTransaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// LockBarberDay takes a Postgres advisory lock scoped to the enclosing
// transaction, keyed on (barber, day). Concurrent bookings for the same
// barber and day serialize on it; other drivers (sqlite in tests) skip it.
func (r *AppointmentGormRepository) LockBarberDay(
	ctx context.Context,
	barberID uint,
	day time.Time,
) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}

	dayKey := int32(day.Year()*1000 + day.YearDay())
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?::int, ?::int)", int32(barberID), dayKey).
		Error
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Business hours
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.BusinessHours, error) {

	var bh models.BusinessHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&bh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &bh, nil
}

// --------------------------------------------------
// Busy-interval sources
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var appts []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status <> ? AND appointment_time >= ? AND appointment_time < ?",
			barberID, string(domain.StatusCanceled), start, end,
		).
		Order("appointment_time ASC").
		Find(&appts).Error; err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *AppointmentGormRepository) ListTimeBlocksOverlapping(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.TimeBlock, error) {

	var blocks []models.TimeBlock
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_time < ? AND end_time > ?",
			barberID, end, start,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Create(ap).Error
	if err == nil {
		return nil
	}

	// a unique/exclusion constraint racing another insert surfaces as a
	// schedule conflict, not an internal error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httperr.ConflictErr("slot_unavailable", "Requested time is no longer available.")
	}
	return err
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var appts []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("appointment_time ASC").
		Find(&appts).Error; err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {

	var appts []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("appointment_time ASC").
		Find(&appts).Error; err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var appts []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND appointment_time >= ? AND appointment_time < ?",
			barberID, start, end,
		).
		Order("appointment_time ASC").
		Find(&appts).Error; err != nil {
		return nil, err
	}

	return appts, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
