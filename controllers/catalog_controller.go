// controllers/catalog_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motel-backend/catalog"
	"motel-backend/config"
	"motel-backend/models"
	"motel-backend/utils"
)

// Rooms come from the database (capacity and price must match what the
// booking flow enforces); the display-only content is served straight from
// the in-memory catalog.

func GetRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Order("id ASC").Find(&rooms).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func GetRoomBySlug(c *gin.Context) {
	var room models.Room
	if err := config.DB.Where("slug = ?", c.Param("slug")).First(&room).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func GetAmenities(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, catalog.Amenities())
}

func GetTestimonials(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, catalog.Testimonials())
}

func GetGallery(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, catalog.GalleryImages())
}

// GetImage resolves a placeholder image id to its URL, falling back to a
// default rather than erroring on unknown ids.
func GetImage(c *gin.Context) {
	id := c.Param("id")
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "url": catalog.ImageURL(id)})
}
