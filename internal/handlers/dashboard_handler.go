package handlers

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/httpresp"
	"github.com/nobrecorte/booking-api/internal/middleware"
	"github.com/nobrecorte/booking-api/internal/models"
	"github.com/nobrecorte/booking-api/internal/timezone"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type topService struct {
	ServiceID uint   `json:"service_id"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}

type dashboardSummary struct {
	Day               string         `json:"day"`
	BarberID          uint           `json:"barber_id"`
	TotalAppointments int            `json:"total_appointments"`
	Status            map[string]int `json:"status"`
	RevenueCompleted  float64        `json:"revenue_completed"`
	MinutesCompleted  int            `json:"minutes_completed"`
	CapacityMinutes   *int           `json:"capacity_minutes"`
	OccupancyPercent  *float64       `json:"occupancy_percent"`
	TopServices       []topService   `json:"top_services"`
}

// Summary aggregates one day of the barber's agenda: counts by status,
// revenue and minutes from completed work, and occupancy against the
// configured window net of lunch.
func (h *DashboardHandler) Summary(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	day, err := time.ParseInLocation("2006-01-02", c.Query("day"), timezone.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_day", "day must be YYYY-MM-DD.")
		return
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var appts []models.Appointment
	if err := h.db.
		Where(
			"barber_id = ? AND appointment_time >= ? AND appointment_time < ?",
			barberID, start, end,
		).
		Find(&appts).Error; err != nil {
		httperr.Internal(c, "failed_to_load_summary", "Could not load dashboard summary.")
		return
	}

	out := dashboardSummary{
		Day:         day.Format("2006-01-02"),
		BarberID:    barberID,
		Status:      map[string]int{},
		TopServices: []topService{},
	}
	out.TotalAppointments = len(appts)

	serviceCount := map[uint]int{}
	serviceName := map[uint]string{}

	for _, a := range appts {
		out.Status[a.Status]++
		serviceCount[a.ServiceID]++
		serviceName[a.ServiceID] = a.ServiceNameSnapshot

		if domain.Status(a.Status) == domain.StatusCompleted {
			out.RevenueCompleted += a.ServicePriceSnapshot
			out.MinutesCompleted += a.ServiceDurationSnapshot
		}
	}

	var bh models.BusinessHours
	err = h.db.
		Where("barber_id = ? AND weekday = ?", barberID, domain.WeekdayIndex(day)).
		First(&bh).Error

	if err == nil {
		if window, open := domain.DayWindow(&bh, day); open {
			capacity := int(window.End.Sub(window.Start) / time.Minute)
			if lunch, ok := domain.LunchWindow(&bh, day); ok {
				capacity -= int(lunch.End.Sub(lunch.Start) / time.Minute)
			}
			out.CapacityMinutes = &capacity

			if capacity > 0 {
				occupancy := float64(out.MinutesCompleted) / float64(capacity) * 100
				out.OccupancyPercent = &occupancy
			}
		}
	}

	for id, count := range serviceCount {
		out.TopServices = append(out.TopServices, topService{
			ServiceID: id,
			Name:      serviceName[id],
			Count:     count,
		})
	}
	sort.Slice(out.TopServices, func(i, j int) bool {
		return out.TopServices[i].Count > out.TopServices[j].Count
	})
	if len(out.TopServices) > 5 {
		out.TopServices = out.TopServices[:5]
	}

	httpresp.OK(c, out)
}
