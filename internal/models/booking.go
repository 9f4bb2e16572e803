package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName string `gorm:"size:140;not null" json:"customer_name"`
	Email        string `gorm:"size:200" json:"email"`
	Phone        string `gorm:"size:60;not null" json:"phone"`

	Service string  `gorm:"size:80;not null" json:"service"`
	Amount  float64 `json:"amount"`

	// Calendar date (YYYY-MM-DD) and one of the fixed daily slot labels.
	Date string `gorm:"size:10;not null;index:idx_bookings_slot" json:"date"`
	Time string `gorm:"size:20;not null;index:idx_bookings_slot" json:"time"`

	Address string `gorm:"size:255" json:"address"`
	Notes   string `gorm:"type:text" json:"notes"`

	Status string `gorm:"size:30;default:'pending'" json:"status"`
	Paid   bool   `gorm:"default:false" json:"paid"`

	Technician string `gorm:"size:100" json:"technician"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
