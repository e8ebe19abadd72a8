// controllers/auth_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"motel-backend/middleware"
	"motel-backend/services"
	"motel-backend/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type RegisterPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "full_name, email and password are required")
		return
	}

	user, err := ctrl.Auth.Register(payload.FullName, payload.Email, payload.Password)
	if err != nil {
		switch {
		case strings.HasPrefix(err.Error(), "validation:"):
			utils.JSONError(c, http.StatusBadRequest, strings.TrimSpace(strings.TrimPrefix(err.Error(), "validation:")))
		case err.Error() == "email_already_registered":
			utils.JSONError(c, http.StatusConflict, "an account with this email already exists")
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := ctrl.Auth.Login(payload.Email, payload.Password)
	if err != nil {
		if err.Error() == "invalid_credentials" {
			utils.JSONError(c, http.StatusUnauthorized, "incorrect email or password")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "user": user})
}

func (ctrl *AuthController) Me(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := ctrl.Auth.GetUser(userID)
	if err != nil {
		if err.Error() == "user_not_found" {
			utils.JSONError(c, http.StatusNotFound, "account no longer exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// Logout is stateless: tokens simply expire. The endpoint exists so clients
// have an explicit teardown hook.
func (ctrl *AuthController) Logout(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"signed_out": true})
}
