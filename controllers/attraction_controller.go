// controllers/attraction_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"motel-backend/catalog"
	"motel-backend/services"
	"motel-backend/utils"
)

type AttractionController struct {
	Attractions *services.AttractionService
}

func NewAttractionController(svc *services.AttractionService) *AttractionController {
	return &AttractionController{Attractions: svc}
}

type DecidePayload struct {
	UserPreference string `json:"userPreference" binding:"required"`
}

// POST /api/attractions/decide
//
// A model failure is not an error for the caller: the map simply falls back
// to not showing attractions.
func (ctrl *AttractionController) Decide(c *gin.Context) {
	var payload DecidePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "userPreference is required")
		return
	}

	decision, err := ctrl.Attractions.DecideNearbyAttractions(payload.UserPreference)
	if err != nil {
		log.Printf("attraction decision failed, falling back: %v", err)
		utils.JSONSuccess(c, http.StatusOK, gin.H{"includeAttractions": false})
		return
	}

	resp := gin.H{"includeAttractions": decision.IncludeAttractions}
	if decision.IncludeAttractions {
		resp["attractions"] = catalog.NearbyAttractions()
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}
