package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `gorm:"index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AppointmentTime time.Time `gorm:"index" json:"appointment_time"`

	// Snapshot of the service at booking time. Never re-read from the live
	// service, so later edits do not rewrite history.
	ServiceNameSnapshot     string  `gorm:"size:100" json:"service_name_snapshot"`
	ServicePriceSnapshot    float64 `json:"service_price_snapshot"`
	ServiceDurationSnapshot int     `json:"service_duration_snapshot"`

	Status        string `gorm:"size:20;default:'pending';index" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'unpaid';index" json:"payment_status"`

	CanceledAt   *time.Time `json:"canceled_at"`
	CanceledBy   string     `gorm:"size:20" json:"canceled_by"`
	CancelReason string     `gorm:"size:255" json:"cancel_reason"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) EndTime() time.Time {
	return a.AppointmentTime.Add(time.Duration(a.ServiceDurationSnapshot) * time.Minute)
}
