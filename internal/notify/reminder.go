package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"github.com/nobrecorte/booking-api/internal/config"
	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/models"
	"github.com/nobrecorte/booking-api/internal/timezone"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB, cfg *config.Config) *ReminderService {
	var client *twilio.RestClient
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return &ReminderService{
		db:     db,
		client: client,
		from:   cfg.TwilioFrom,
	}
}

// StartScheduler registers the daily reminder run. Sends at 09:00 in the
// canonical zone.
func (s *ReminderService) StartScheduler() {
	c := cron.New(cron.WithLocation(timezone.Location()))

	if _, err := c.AddFunc("0 9 * * *", s.SendTomorrowReminders); err != nil {
		log.Printf("failed to register reminder job: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendTomorrowReminders notifies clients of tomorrow's pending or confirmed
// appointments. Send failures are logged and skipped, never fatal.
func (s *ReminderService) SendTomorrowReminders() {
	now := timezone.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	var appts []models.Appointment
	if err := s.db.
		Preload("Client").
		Where(
			"appointment_time >= ? AND appointment_time < ? AND status IN ?",
			start, end,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		).
		Find(&appts).Error; err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}

	sent := 0
	for _, ap := range appts {
		if ap.Client.Phone == "" {
			continue
		}

		body := fmt.Sprintf(
			"Reminder: %s tomorrow at %s.",
			ap.ServiceNameSnapshot,
			ap.AppointmentTime.In(timezone.Location()).Format("15:04"),
		)

		if err := s.sendSMS(ap.Client.Phone, body); err != nil {
			log.Printf("reminder for appointment %d failed: %v", ap.ID, err)
			continue
		}
		sent++
	}

	log.Printf("reminders sent: %d of %d", sent, len(appts))
}

func (s *ReminderService) sendSMS(to, body string) error {
	if s.client == nil || s.from == "" {
		return fmt.Errorf("twilio not configured")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
