package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID uint  `gorm:"index;column:room_id" json:"room_id"`
	UserID *uint `gorm:"index;column:user_id" json:"user_id,omitempty"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Email     string `gorm:"index;size:150" json:"email"`
	Phone     string `gorm:"size:50" json:"phone"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"check_out_date"`
	NumGuests    int       `gorm:"column:num_guests" json:"num_guests"`

	Status          string  `gorm:"size:32;default:pending" json:"status"`
	TotalAmount     float64 `gorm:"column:total_amount" json:"total_amount"`
	Currency        string  `gorm:"size:8" json:"currency"`
	SpecialRequests string  `gorm:"type:text" json:"special_requests,omitempty"`

	Room    Room     `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Payment *Payment `gorm:"foreignKey:BookingID" json:"payment,omitempty"`
}
