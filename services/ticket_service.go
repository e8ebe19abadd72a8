// services/ticket_service.go
package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"motel-backend/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders the downloadable PDF booking receipt.
type TicketService struct {
	Bookings *BookingService
}

func NewTicketService(bookings *BookingService) *TicketService {
	return &TicketService{Bookings: bookings}
}

// receiptData is the fixed field set the receipt renders.
type receiptData struct {
	BookingID   uint
	BookedAt    time.Time
	Status      string
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	RoomName    string
	CheckIn     time.Time
	CheckOut    time.Time
	TotalAmount float64
	Currency    string
	PaymentID   string
}

// GenerateReceipt re-fetches the booking with its room joined, maps it to
// the receipt field set and renders the PDF. The booking must belong to the
// requesting account.
func (s *TicketService) GenerateReceipt(bookingID, userID uint, email string) ([]byte, string, error) {
	booking, err := s.Bookings.GetBookingForUser(bookingID, userID, email)
	if err != nil {
		return nil, "", err
	}

	data := receiptData{
		BookingID:   booking.ID,
		BookedAt:    booking.CreatedAt,
		Status:      booking.Status,
		GuestName:   strings.TrimSpace(booking.FirstName + " " + booking.LastName),
		GuestEmail:  booking.Email,
		GuestPhone:  booking.Phone,
		RoomName:    booking.Room.Name,
		CheckIn:     booking.CheckInDate,
		CheckOut:    booking.CheckOutDate,
		TotalAmount: booking.TotalAmount,
		Currency:    booking.Currency,
	}
	if booking.Payment != nil {
		data.PaymentID = booking.Payment.RazorpayPaymentID
	}

	return buildReceiptPDF(data)
}

// buildReceiptPDF lays out the single-page receipt: motel header, booking
// and guest info in two columns, room details, payment summary, footer and
// a page border.
func buildReceiptPDF(d receiptData) ([]byte, string, error) {
	const margin = 20.0

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(margin, margin+10, "Rose Bowl Motel")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(margin, margin+20, "123 Ocean View Drive, Beachside, CA 90210")
	pdf.Text(margin, margin+28, "Phone: (555) 123-4567 | Email: info@rosebowlmotel.com")

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(margin, margin+35, pageW-margin, margin+35)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(margin, margin+50, "BOOKING CONFIRMATION")

	pdf.SetFont("Helvetica", "", 12)

	// left column: booking info
	pdf.Text(margin, margin+70, fmt.Sprintf("Booking #: %d", d.BookingID))
	pdf.Text(margin, margin+80, "Booking Date: "+d.BookedAt.Format("Jan 2, 2006"))
	pdf.Text(margin, margin+90, "Status: "+titleCase(safeText(d.Status, "Confirmed")))

	// right column: guest info
	pdf.Text(margin+100, margin+70, "Guest: "+safeText(d.GuestName, "-"))
	pdf.Text(margin+100, margin+80, "Email: "+safeText(d.GuestEmail, "-"))
	pdf.Text(margin+100, margin+90, "Phone: "+safeText(d.GuestPhone, "-"))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(margin, margin+115, "ROOM DETAILS")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(margin, margin+125, "Room Type: "+safeText(d.RoomName, "-"))
	pdf.Text(margin, margin+135, "Check-in: "+d.CheckIn.Format("Monday, January 2, 2006"))
	pdf.Text(margin, margin+145, "Check-out: "+d.CheckOut.Format("Monday, January 2, 2006"))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(margin, margin+170, "PAYMENT SUMMARY")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(margin, margin+180, fmt.Sprintf("Total Amount: %s", utils.FormatAmount(d.TotalAmount, d.Currency)))
	pdf.Text(margin, margin+190, "Payment Method: Credit Card")
	pdf.Text(margin, margin+200, "Payment ID: "+safeText(d.PaymentID, "-"))

	pdf.SetFont("Helvetica", "I", 10)
	pdf.Text(margin, pageH-17, "Thank you for choosing Rose Bowl Motel!")
	pdf.Text(margin, pageH-11, "Please present this confirmation upon arrival.")

	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(margin-5, margin-5, pageW-2*margin+10, pageH-2*margin+10, "D")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render receipt: %w", err)
	}

	filename := fmt.Sprintf("booking-%d-receipt.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safeText(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
