// services/payment_service.go
package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

// orderCreator matches razorpay-go's Order resource so tests can stand in a
// stub for the hosted gateway.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// PaymentService wraps the Razorpay client for order creation and holds the
// server-side key secret for signature verification. It is stateless: every
// call is a single awaited request, no retries.
type PaymentService struct {
	keySecret string
	orders    orderCreator
}

func NewPaymentService(keyID, keySecret string) *PaymentService {
	svc := &PaymentService{keySecret: keySecret}
	if keyID != "" && keySecret != "" {
		svc.orders = razorpay.NewClient(keyID, keySecret).Order
	}
	return svc
}

// CreateOrder reserves the amount with the gateway. The amount comes in as
// rupees and goes out in paise, the smallest currency unit.
func (s *PaymentService) CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (map[string]interface{}, error) {
	if s.orders == nil {
		return nil, errors.New("payment_gateway_not_configured")
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	data := map[string]interface{}{
		"amount":          int64(math.Round(amount * 100)),
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	order, err := s.orders.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

// VerifySignature recomputes HMAC-SHA256 over "orderId|paymentId" with the
// key secret and compares it to the gateway-supplied signature in constant
// time. Pure function, no I/O.
func (s *PaymentService) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
