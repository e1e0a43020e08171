package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/models"
)

func newTestRepo(t *testing.T) *AppointmentGormRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.BusinessHours{},
		&models.TimeBlock{},
		&models.Appointment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewAppointmentGormRepository(db)
}

func day(h, m int) time.Time {
	return time.Date(2026, 2, 9, h, m, 0, 0, time.UTC)
}

func TestGetServiceByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	svc, err := repo.GetServiceByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc != nil {
		t.Fatalf("expected nil for missing service, got %+v", svc)
	}
}

func TestGetBusinessHours_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	seed := models.BusinessHours{
		BarberID:  10,
		Weekday:   0,
		OpenTime:  "08:00",
		CloseTime: "20:00",
	}
	if err := repo.db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	bh, err := repo.GetBusinessHours(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bh == nil || bh.OpenTime != "08:00" || bh.CloseTime != "20:00" {
		t.Fatalf("wrong row: %+v", bh)
	}

	missing, err := repo.GetBusinessHours(context.Background(), 10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unconfigured weekday, got %+v", missing)
	}
}

func TestListAppointmentsForDay_FiltersCanceledAndRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rows := []models.Appointment{
		{BarberID: 10, ClientID: 1, AppointmentTime: day(9, 0), Status: "pending"},
		{BarberID: 10, ClientID: 2, AppointmentTime: day(10, 0), Status: "canceled"},
		{BarberID: 10, ClientID: 3, AppointmentTime: day(11, 0), Status: "confirmed"},
		// other barber
		{BarberID: 11, ClientID: 4, AppointmentTime: day(9, 0), Status: "pending"},
		// previous day
		{BarberID: 10, ClientID: 5, AppointmentTime: day(9, 0).AddDate(0, 0, -1), Status: "pending"},
	}
	for i := range rows {
		if err := repo.CreateAppointment(ctx, &rows[i]); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	appts, err := repo.ListAppointmentsForDay(ctx, 10, day(8, 0), day(20, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts))
	}
	if !appts[0].AppointmentTime.Equal(day(9, 0)) || !appts[1].AppointmentTime.Equal(day(11, 0)) {
		t.Fatalf("wrong rows or order: %v, %v", appts[0].AppointmentTime, appts[1].AppointmentTime)
	}
}

func TestListTimeBlocksOverlapping_Boundaries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	blocks := []models.TimeBlock{
		{BarberID: 10, StartTime: day(9, 0), EndTime: day(10, 0)},   // inside
		{BarberID: 10, StartTime: day(7, 0), EndTime: day(8, 0)},    // ends at window start
		{BarberID: 10, StartTime: day(20, 0), EndTime: day(21, 0)},  // starts at window end
		{BarberID: 10, StartTime: day(7, 0), EndTime: day(21, 0)},   // covers window
		{BarberID: 11, StartTime: day(9, 0), EndTime: day(10, 0)},   // other barber
	}
	for i := range blocks {
		if err := repo.db.Create(&blocks[i]).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	got, err := repo.ListTimeBlocksOverlapping(ctx, 10, day(8, 0), day(20, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 overlapping blocks, got %d", len(got))
	}
	for _, b := range got {
		if !(b.StartTime.Before(day(20, 0)) && b.EndTime.After(day(8, 0))) {
			t.Fatalf("non-overlapping block returned: %v-%v", b.StartTime, b.EndTime)
		}
	}
}

func TestAppointmentCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ap := &models.Appointment{
		BarberID:                10,
		ClientID:                7,
		ServiceID:               1,
		AppointmentTime:         day(10, 0),
		ServiceNameSnapshot:     "Corte",
		ServicePriceSnapshot:    50,
		ServiceDurationSnapshot: 30,
		Status:                  "pending",
		PaymentStatus:           "unpaid",
	}
	if err := repo.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("create: %v", err)
	}
	if ap.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := repo.GetAppointmentByID(ctx, ap.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ServiceNameSnapshot != "Corte" {
		t.Fatalf("wrong row: %+v", got)
	}

	got.Status = "confirmed"
	if err := repo.UpdateAppointment(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := repo.GetAppointmentByID(ctx, ap.ID)
	if again.Status != "confirmed" {
		t.Fatalf("update not persisted: %s", again.Status)
	}

	missing, err := repo.GetAppointmentByID(ctx, 999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil,nil for missing row, got %+v, %v", missing, err)
	}
}

func TestInTransaction_RollsBackOnError(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sentinel := errors.New("boom")
	err := repo.InTransaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateAppointment(ctx, &models.Appointment{
			BarberID:        10,
			ClientID:        7,
			AppointmentTime: day(10, 0),
			Status:          "pending",
		}); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	appts, err := repo.ListAppointmentsForBarber(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appts) != 0 {
		t.Fatalf("insert survived rollback: %d rows", len(appts))
	}
}

func TestInTransaction_Commits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.InTransaction(ctx, func(tx domain.Repository) error {
		if err := tx.LockBarberDay(ctx, 10, day(10, 0)); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, &models.Appointment{
			BarberID:        10,
			ClientID:        7,
			AppointmentTime: day(10, 0),
			Status:          "pending",
		})
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	appts, err := repo.ListAppointmentsForBarber(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("expected 1 committed row, got %d", len(appts))
	}
}
