// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"motel-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	MaxGuestsPerBooking = 10
	DefaultCurrency     = "INR"
)

// BookingService wraps *gorm.DB and owns the booking workflow.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingRequest carries the "details" step of the booking form. Dates are
// ISO yyyy-mm-dd strings, matching what the availability check receives.
type BookingRequest struct {
	RoomSlug        string `json:"room_slug" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	NumGuests       int    `json:"num_guests" binding:"required"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// ValidateBookingRequest gates progression past the details step. It makes
// no database calls.
func ValidateBookingRequest(r BookingRequest) (checkIn, checkOut time.Time, err error) {
	if strings.TrimSpace(r.RoomSlug) == "" {
		return checkIn, checkOut, errors.New("validation: please select a room")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return checkIn, checkOut, errors.New("validation: first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return checkIn, checkOut, errors.New("validation: last name is required")
	}
	if _, mailErr := mail.ParseAddress(strings.TrimSpace(r.Email)); mailErr != nil {
		return checkIn, checkOut, errors.New("validation: invalid email address")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return checkIn, checkOut, errors.New("validation: phone number is required")
	}
	if r.NumGuests < 1 || r.NumGuests > MaxGuestsPerBooking {
		return checkIn, checkOut, fmt.Errorf("validation: number of guests must be between 1 and %d", MaxGuestsPerBooking)
	}

	checkIn, err = time.Parse("2006-01-02", r.CheckIn)
	if err != nil {
		return checkIn, checkOut, errors.New("validation: invalid check_in date")
	}
	checkOut, err = time.Parse("2006-01-02", r.CheckOut)
	if err != nil {
		return checkIn, checkOut, errors.New("validation: invalid check_out date")
	}
	if !checkOut.After(checkIn) {
		return checkIn, checkOut, errors.New("validation: check-out date must be after check-in date")
	}
	return checkIn, checkOut, nil
}

// Nights counts billable nights between two dates, never less than one.
func Nights(checkIn, checkOut time.Time) int {
	n := int(checkOut.Sub(checkIn).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

func overlapQuery(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) *gorm.DB {
	return db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
}

// IsRoomAvailable answers "is this room free for this date range".
func (s *BookingService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	if err := overlapQuery(s.DB, roomID, checkIn, checkOut).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check availability: %w", err)
	}
	return count == 0, nil
}

// GetRoomBySlug resolves a catalog slug to its persisted room row.
func (s *BookingService) GetRoomBySlug(slug string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Where("slug = ?", slug).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room_not_found")
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	return &room, nil
}

// CreateBooking inserts a pending Booking together with its pending Payment.
// The capacity check happens before any write; the availability check is
// repeated inside the transaction under a row lock on the room, so a
// concurrent booking for the same dates cannot slip between check and
// insert.
func (s *BookingService) CreateBooking(userID uint, req BookingRequest) (*models.Booking, error) {
	checkIn, checkOut, err := ValidateBookingRequest(req)
	if err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, errors.New("not_authenticated")
	}

	room, err := s.GetRoomBySlug(req.RoomSlug)
	if err != nil {
		return nil, err
	}
	if req.NumGuests > room.Capacity {
		return nil, fmt.Errorf("too_many_guests: this room can accommodate a maximum of %d guests", room.Capacity)
	}

	nights := Nights(checkIn, checkOut)
	total := float64(nights) * room.PricePerNight

	uid := userID
	booking := models.Booking{
		RoomID:          room.ID,
		UserID:          &uid,
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       req.NumGuests,
		Status:          models.BookingStatusPending,
		TotalAmount:     total,
		Currency:        DefaultCurrency,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var locked models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, room.ID).Error; err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		var count int64
		if err := overlapQuery(tx, room.ID, checkIn, checkOut).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}
		if count > 0 {
			return errors.New("room_unavailable: selected room is no longer available for the chosen dates")
		}

		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		payment := models.Payment{
			BookingID: booking.ID,
			Status:    models.PaymentStatusPending,
			Currency:  DefaultCurrency,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		booking.Payment = &payment
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	booking.Room = *room
	return &booking, nil
}

// ConfirmPayment flips the Payment to succeeded and the Booking to
// confirmed after the gateway signature has been verified. Both updates run
// in one transaction.
func (s *BookingService) ConfirmPayment(bookingID uint, orderID, paymentID string, amountPaid float64) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Payment{}).
			Where("booking_id = ?", bookingID).
			Updates(map[string]interface{}{
				"payment_status":      models.PaymentStatusSucceeded,
				"razorpay_order_id":   orderID,
				"razorpay_payment_id": paymentID,
				"amount_paid":         amountPaid,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update payment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return errors.New("booking_not_found")
		}

		if err := tx.Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Update("status", models.BookingStatusConfirmed).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		return nil
	})
}

// MergeBookings unions two result sets, dropping duplicate ids and keeping
// newest-first ordering. A booking matching both lookup strategies appears
// exactly once.
func MergeBookings(byAccount, byEmail []models.Booking) []models.Booking {
	seen := make(map[uint]bool, len(byAccount)+len(byEmail))
	merged := make([]models.Booking, 0, len(byAccount)+len(byEmail))
	for _, list := range [][]models.Booking{byAccount, byEmail} {
		for _, b := range list {
			if seen[b.ID] {
				continue
			}
			seen[b.ID] = true
			merged = append(merged, b)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged
}

// ListUserBookings returns the union of bookings linked to the account id
// and bookings made under the account's email before sign-up, newest first.
func (s *BookingService) ListUserBookings(userID uint, email string) ([]models.Booking, error) {
	var byAccount []models.Booking
	if err := s.DB.Preload("Room").Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&byAccount).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings by account: %w", err)
	}

	var byEmail []models.Booking
	if strings.TrimSpace(email) != "" {
		if err := s.DB.Preload("Room").Preload("Payment").
			Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
			Order("created_at DESC").
			Find(&byEmail).Error; err != nil {
			return nil, fmt.Errorf("failed to load bookings by email: %w", err)
		}
	}

	return MergeBookings(byAccount, byEmail), nil
}

// GetBookingForUser re-fetches a single booking with its room joined and
// checks it belongs to the requesting account (by id or by email).
func (s *BookingService) GetBookingForUser(bookingID, userID uint, email string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").Preload("Payment").
		First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	owned := booking.UserID != nil && *booking.UserID == userID
	if !owned && !strings.EqualFold(booking.Email, strings.TrimSpace(email)) {
		return nil, errors.New("booking_not_found")
	}
	return &booking, nil
}
