package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// "manual" or "mercadopago"
	Provider string `gorm:"size:20;not null" json:"provider"`

	// Mercado Pago preference id, or an internal reference for manual payments
	ExternalID string `gorm:"size:100" json:"external_id"`

	// checkout URL when the provider supplies one
	CheckoutURL string `gorm:"size:255" json:"checkout_url"`

	Amount float64 `json:"amount"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	CreatedAt time.Time  `json:"created_at"`
	PaidAt    *time.Time `json:"paid_at"`
}
