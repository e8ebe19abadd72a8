// controllers/payment_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motel-backend/services"
)

type PaymentController struct {
	Payments *services.PaymentService
	Bookings *services.BookingService
}

func NewPaymentController(payments *services.PaymentService, bookings *services.BookingService) *PaymentController {
	return &PaymentController{Payments: payments, Bookings: bookings}
}

type CreateOrderPayload struct {
	Amount   float64                `json:"amount" binding:"required"`
	Currency string                 `json:"currency"`
	Receipt  string                 `json:"receipt" binding:"required"`
	Notes    map[string]interface{} `json:"notes"`
}

type VerifyPayload struct {
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpaySignature string  `json:"razorpay_signature"`
	BookingID         uint    `json:"bookingId"`
	Amount            float64 `json:"amount"`
}

// POST /api/razorpay/create-order
func (ctrl *PaymentController) CreateOrder(c *gin.Context) {
	var payload CreateOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	order, err := ctrl.Payments.CreateOrder(payload.Amount, payload.Currency, payload.Receipt, payload.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create order",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// POST /api/razorpay/verify
//
// All four identifiers are mandatory: a request missing any of them is a
// verification failure, never an implicit success.
func (ctrl *PaymentController) VerifyPayment(c *gin.Context) {
	var payload VerifyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid verification payload"})
		return
	}

	if payload.RazorpayPaymentID == "" || payload.RazorpayOrderID == "" ||
		payload.RazorpaySignature == "" || payload.BookingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required payment verification fields",
		})
		return
	}

	if !ctrl.Payments.VerifySignature(payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.RazorpaySignature) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid payment signature",
			"error":   "Payment verification failed",
		})
		return
	}

	if err := ctrl.Bookings.ConfirmPayment(payload.BookingID, payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.Amount); err != nil {
		if err.Error() == "booking_not_found" {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update payment status",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Payment verified and processed successfully",
		"paymentId": payload.RazorpayPaymentID,
	})
}
