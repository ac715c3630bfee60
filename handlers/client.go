// File: handlers/client.go
package handlers

import (
	"errors"
	"net/http"

	"wellspring/middleware"
	"wellspring/services/client"
	"wellspring/utils"

	"github.com/gin-gonic/gin"
)

func ClientRegisterHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req client.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}

		resp, err := b.ClientService.Register(c.Request.Context(), req)
		if err != nil {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func ClientLoginHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "email and password are required")
			return
		}

		resp, err := b.ClientService.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, client.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "login failed")
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// MyBookingsHandler lists the authenticated client's bookings.
func MyBookingsHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetString(middleware.ContextSubjectID)
		bookings, err := b.ClientService.MyBookings(c.Request.Context(), clientID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// ClientDeviceHandler registers the client's push token.
func ClientDeviceHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FCMToken string `json:"fcmToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "fcmToken is required")
			return
		}

		clientID := c.GetString(middleware.ContextSubjectID)
		if err := b.ClientService.UpdateFCMToken(c.Request.Context(), clientID, req.FCMToken); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update device token")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}
