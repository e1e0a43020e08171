package models

import "time"

// BusinessHours is the recurring weekly rule for one barber and one weekday.
// Weekday follows 0=Monday .. 6=Sunday. Times are "15:04" strings; empty
// means not configured.
type BusinessHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:idx_barber_weekday" json:"weekday"`

	IsClosed bool `json:"is_closed"`

	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`

	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
