package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
)

// Payment is created together with its Booking and shares its lifecycle:
// there is never a Booking row without a Payment row.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"uniqueIndex;column:booking_id" json:"booking_id"`

	AmountPaid float64 `gorm:"column:amount_paid" json:"amount_paid"`
	Status     string  `gorm:"column:payment_status;size:32;default:pending" json:"payment_status"`
	Currency   string  `gorm:"size:8" json:"currency"`

	RazorpayOrderID   string `gorm:"column:razorpay_order_id;size:64" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `gorm:"column:razorpay_payment_id;size:64" json:"razorpay_payment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
