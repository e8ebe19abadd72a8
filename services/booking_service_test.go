package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motel-backend/models"
)

func validRequest() BookingRequest {
	return BookingRequest{
		RoomSlug:  "deluxe-king-room",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "+1 555 0100",
		CheckIn:   "2026-10-01",
		CheckOut:  "2026-10-03",
		NumGuests: 2,
	}
}

func TestValidateBookingRequest_Valid(t *testing.T) {
	checkIn, checkOut, err := ValidateBookingRequest(validRequest())
	if err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
	if !checkOut.After(checkIn) {
		t.Fatal("parsed dates out of order")
	}
}

func TestValidateBookingRequest_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"missing room", func(r *BookingRequest) { r.RoomSlug = "" }},
		{"missing first name", func(r *BookingRequest) { r.FirstName = "  " }},
		{"missing last name", func(r *BookingRequest) { r.LastName = "" }},
		{"invalid email", func(r *BookingRequest) { r.Email = "not-an-email" }},
		{"missing phone", func(r *BookingRequest) { r.Phone = "" }},
		{"zero guests", func(r *BookingRequest) { r.NumGuests = 0 }},
		{"too many guests", func(r *BookingRequest) { r.NumGuests = 11 }},
		{"bad check_in", func(r *BookingRequest) { r.CheckIn = "01/10/2026" }},
		{"bad check_out", func(r *BookingRequest) { r.CheckOut = "soon" }},
		{"checkout equals checkin", func(r *BookingRequest) { r.CheckOut = r.CheckIn }},
		{"checkout before checkin", func(r *BookingRequest) { r.CheckIn = "2026-10-05"; r.CheckOut = "2026-10-03" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			if _, _, err := ValidateBookingRequest(req); err == nil {
				t.Fatalf("expected rejection for %s", tc.name)
			}
		})
	}
}

func TestValidateBookingRequest_GuestBounds(t *testing.T) {
	for _, guests := range []int{1, 10} {
		req := validRequest()
		req.NumGuests = guests
		if _, _, err := ValidateBookingRequest(req); err != nil {
			t.Fatalf("guest count %d should be allowed: %v", guests, err)
		}
	}
}

func TestNights(t *testing.T) {
	d := func(s string) time.Time {
		v, _ := time.Parse("2006-01-02", s)
		return v
	}

	if got := Nights(d("2026-10-01"), d("2026-10-03")); got != 2 {
		t.Fatalf("expected 2 nights, got %d", got)
	}
	if got := Nights(d("2026-10-01"), d("2026-10-02")); got != 1 {
		t.Fatalf("expected 1 night, got %d", got)
	}
	// never less than one billable night
	if got := Nights(d("2026-10-01"), d("2026-10-01")); got != 1 {
		t.Fatalf("expected minimum of 1 night, got %d", got)
	}
}

func TestMergeBookings_Deduplicates(t *testing.T) {
	at := func(offset int) time.Time {
		return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(offset) * time.Hour)
	}

	byAccount := []models.Booking{
		{ID: 1, CreatedAt: at(0)},
		{ID: 3, CreatedAt: at(5)},
	}
	byEmail := []models.Booking{
		{ID: 2, CreatedAt: at(2)},
		{ID: 3, CreatedAt: at(5)}, // matches both lookup strategies
	}

	merged := MergeBookings(byAccount, byEmail)
	if len(merged) != 3 {
		t.Fatalf("expected 3 unique bookings, got %d", len(merged))
	}

	seen := map[uint]int{}
	for _, b := range merged {
		seen[b.ID]++
	}
	if seen[3] != 1 {
		t.Fatalf("booking matching both criteria must appear exactly once, got %d", seen[3])
	}

	for i := 1; i < len(merged); i++ {
		if merged[i].CreatedAt.After(merged[i-1].CreatedAt) {
			t.Fatal("merged bookings must be ordered newest first")
		}
	}
}

func TestMergeBookings_Empty(t *testing.T) {
	if got := MergeBookings(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

// --- database paths, via sqlmock behind the gorm mysql driver ---

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return gdb, mock
}

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "price_per_night", "capacity", "sqft"}).
		AddRow(8, "Deluxe King Room", "deluxe-king-room", 100.0, 2, 450)
}

func TestCreateBooking_RejectsTooManyGuestsBeforeWrite(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").WillReturnRows(roomRows())

	req := validRequest()
	req.NumGuests = 5 // room sleeps 2

	if _, err := svc.CreateBooking(7, req); err == nil {
		t.Fatal("expected capacity rejection")
	}

	// no transaction, no insert
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database activity: %v", err)
	}
}

func TestCreateBooking_UnavailableRangeCreatesNothing(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").WillReturnRows(roomRows())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms` (.+)FOR UPDATE").WillReturnRows(roomRows())
	mock.ExpectQuery("SELECT count(.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	if _, err := svc.CreateBooking(7, validRequest()); err == nil {
		t.Fatal("expected unavailable-range rejection")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("booking row must not be created: %v", err)
	}
}

func TestCreateBooking_CreatesBookingAndPaymentTogether(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").WillReturnRows(roomRows())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms` (.+)FOR UPDATE").WillReturnRows(roomRows())
	mock.ExpectQuery("SELECT count(.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `bookings`").WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectExec("INSERT INTO `payments`").WillReturnResult(sqlmock.NewResult(201, 1))
	mock.ExpectCommit()

	booking, err := svc.CreateBooking(7, validRequest())
	if err != nil {
		t.Fatalf("expected booking to be created, got %v", err)
	}

	if booking.Status != models.BookingStatusPending {
		t.Fatalf("new booking must start pending, got %q", booking.Status)
	}
	if booking.Payment == nil || booking.Payment.Status != models.PaymentStatusPending {
		t.Fatal("payment row must be created pending alongside the booking")
	}
	// 2 nights at 100/night
	if booking.TotalAmount != 200 {
		t.Fatalf("expected total 200, got %v", booking.TotalAmount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmPayment_UpdatesBothRows(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `payments`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `bookings`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.ConfirmPayment(42, "order_123", "pay_456", 200); err != nil {
		t.Fatalf("expected confirmation to succeed, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmPayment_UnknownBooking(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `payments`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.ConfirmPayment(9999, "order_123", "pay_456", 200)
	if err == nil || err.Error() != "booking_not_found" {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}
