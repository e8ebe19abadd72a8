// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"motel-backend/middleware"
	"motel-backend/services"
	"motel-backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

// GET /api/rooms/:slug/availability?check_in=2026-01-10&check_out=2026-01-12
func (ctrl *BookingController) CheckAvailability(c *gin.Context) {
	checkInRaw := strings.TrimSpace(c.Query("check_in"))
	checkOutRaw := strings.TrimSpace(c.Query("check_out"))

	checkIn, err := time.Parse("2006-01-02", checkInRaw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_in must be an ISO date (yyyy-mm-dd)")
		return
	}
	checkOut, err := time.Parse("2006-01-02", checkOutRaw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be an ISO date (yyyy-mm-dd)")
		return
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be after check_in")
		return
	}

	room, err := ctrl.Bookings.GetRoomBySlug(c.Param("slug"))
	if err != nil {
		if err.Error() == "room_not_found" {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	available, err := ctrl.Bookings.IsRoomAvailable(room.ID, checkIn, checkOut)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": available})
}

// POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "you must be logged in to make a booking")
		return
	}

	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload: "+err.Error())
		return
	}

	booking, err := ctrl.Bookings.CreateBooking(userID, req)
	if err != nil {
		msg := err.Error()
		switch {
		case strings.HasPrefix(msg, "validation:"):
			utils.JSONError(c, http.StatusBadRequest, strings.TrimSpace(strings.TrimPrefix(msg, "validation:")))
		case strings.HasPrefix(msg, "too_many_guests:"):
			utils.JSONError(c, http.StatusBadRequest, strings.TrimSpace(strings.TrimPrefix(msg, "too_many_guests:")))
		case strings.HasPrefix(msg, "room_unavailable:"):
			utils.JSONError(c, http.StatusConflict, strings.TrimSpace(strings.TrimPrefix(msg, "room_unavailable:")))
		case msg == "room_not_found":
			utils.JSONError(c, http.StatusNotFound, "room not found")
		case msg == "not_authenticated":
			utils.JSONError(c, http.StatusUnauthorized, "you must be logged in to make a booking")
		default:
			utils.JSONError(c, http.StatusInternalServerError, msg)
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}
