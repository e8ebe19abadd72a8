// controllers/profile_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motel-backend/middleware"
	"motel-backend/services"
	"motel-backend/utils"
)

type ProfileController struct {
	Bookings *services.BookingService
	Tickets  *services.TicketService
}

func NewProfileController(bookings *services.BookingService, tickets *services.TicketService) *ProfileController {
	return &ProfileController{Bookings: bookings, Tickets: tickets}
}

// GET /api/profile/bookings
//
// Returns the union of account-linked and email-linked bookings so stays
// booked as a guest before sign-up still show up, deduplicated, newest
// first.
func (ctrl *ProfileController) ListBookings(c *gin.Context) {
	userID, email, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	bookings, err := ctrl.Bookings.ListUserBookings(userID, email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load your bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/profile/bookings/:id/ticket
func (ctrl *ProfileController) DownloadTicket(c *gin.Context) {
	userID, email, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	pdfBytes, filename, err := ctrl.Tickets.GenerateReceipt(uint(id), userID, email)
	if err != nil {
		if err.Error() == "booking_not_found" {
			utils.JSONError(c, http.StatusNotFound, "booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate ticket")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
