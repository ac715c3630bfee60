// File: handlers/professional.go
package handlers

import (
	"errors"
	"net/http"

	"wellspring/middleware"
	"wellspring/models"
	"wellspring/services/professional"
	"wellspring/utils"

	"github.com/gin-gonic/gin"
)

func ProfessionalRegisterHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req professional.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}

		resp, err := b.ProfessionalService.Register(c.Request.Context(), req)
		if err != nil {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func ProfessionalLoginHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "email and password are required")
			return
		}

		resp, err := b.ProfessionalService.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, professional.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "login failed")
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// PublishSessionsHandler stores a batch of sessions for the authenticated
// professional.
func PublishSessionsHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SetupSessionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "sessions payload is required")
			return
		}

		professionalID := c.GetString(middleware.ContextSubjectID)
		ids, err := b.ProfessionalService.PublishSessions(c.Request.Context(), professionalID, req)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"sessionIds": ids})
	}
}

// MySessionsHandler lists everything the authenticated professional has
// published.
func MySessionsHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		professionalID := c.GetString(middleware.ContextSubjectID)
		sessions, err := b.ProfessionalService.GetSessions(c.Request.Context(), professionalID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load sessions")
			return
		}
		c.JSON(http.StatusOK, sessions)
	}
}

func DeleteSessionHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		professionalID := c.GetString(middleware.ContextSubjectID)
		sessionID := c.Param("sessionID")

		if err := b.ProfessionalService.DeleteSession(c.Request.Context(), professionalID, sessionID); err != nil {
			utils.JSONError(c, http.StatusNotFound, "session not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// ProfessionalDeviceHandler registers the professional's push token.
func ProfessionalDeviceHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FCMToken string `json:"fcmToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "fcmToken is required")
			return
		}

		professionalID := c.GetString(middleware.ContextSubjectID)
		if err := b.ProfessionalService.UpdateFCMToken(c.Request.Context(), professionalID, req.FCMToken); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update device token")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}
