package controllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motel-backend/services"
)

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

func newVerifyRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, mock := newMockDB(t)
	ctrl := NewPaymentController(
		services.NewPaymentService("", "test-secret"),
		services.NewBookingService(gdb),
	)

	r := gin.New()
	r.POST("/api/razorpay/verify", ctrl.VerifyPayment)
	return r, mock
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyPayment_MissingFieldsRejected(t *testing.T) {
	cases := []map[string]interface{}{
		{},
		{"razorpay_payment_id": "pay_1"},
		{"razorpay_payment_id": "pay_1", "razorpay_order_id": "order_1"},
		{"razorpay_payment_id": "pay_1", "razorpay_order_id": "order_1", "razorpay_signature": "sig"},
	}

	for i, body := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			r, mock := newVerifyRouter(t)

			w := postJSON(t, r, "/api/razorpay/verify", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}

			var resp map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &resp)
			if success, _ := resp["success"].(bool); success {
				t.Fatal("incomplete payload must never report success")
			}

			// nothing touched the database
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unexpected database activity: %v", err)
			}
		})
	}
}

func TestVerifyPayment_BadSignatureRejected(t *testing.T) {
	r, mock := newVerifyRouter(t)

	w := postJSON(t, r, "/api/razorpay/verify", map[string]interface{}{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_1",
		"razorpay_signature":  "deadbeef",
		"bookingId":           42,
		"amount":              200,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("bad signature must not reach the database: %v", err)
	}
}

func TestVerifyPayment_ValidSignatureConfirmsBooking(t *testing.T) {
	r, mock := newVerifyRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `payments`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `bookings`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := postJSON(t, r, "/api/razorpay/verify", map[string]interface{}{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_1",
		"razorpay_signature":  sign("test-secret", "order_1", "pay_1"),
		"bookingId":           42,
		"amount":              200,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if success, _ := resp["success"].(bool); !success {
		t.Fatalf("expected success response, got %s", w.Body.String())
	}
	if resp["paymentId"] != "pay_1" {
		t.Fatalf("expected echoed payment id, got %v", resp["paymentId"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerifyPayment_UnknownBooking(t *testing.T) {
	r, mock := newVerifyRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `payments`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	w := postJSON(t, r, "/api/razorpay/verify", map[string]interface{}{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_1",
		"razorpay_signature":  sign("test-secret", "order_1", "pay_1"),
		"bookingId":           9999,
		"amount":              200,
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
