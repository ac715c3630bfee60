// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"wellspring/middleware"
	"wellspring/services/booking"
	"wellspring/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitiateCheckoutHandler opens a checkout for the authenticated client.
func InitiateCheckoutHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ProfessionalID string `json:"professionalId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "professionalId is required")
			return
		}

		clientID := c.GetString(middleware.ContextSubjectID)
		checkout, err := b.BookingService.InitiateCheckout(c.Request.Context(), clientID, req.ProfessionalID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		c.JSON(http.StatusCreated, checkout)
	}
}

// SubmitBookingHandler finalizes the booking step of a checkout.
func SubmitBookingHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		checkoutID := c.Param("checkoutID")

		var req struct {
			SessionID string `json:"sessionId" binding:"required"`
			Notes     string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "sessionId is required")
			return
		}

		bk, err := b.BookingService.SubmitBooking(c.Request.Context(), checkoutID, req.SessionID, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrCheckoutNotFound):
				utils.JSONError(c, http.StatusNotFound, "checkout not found or expired")
			case errors.Is(err, booking.ErrSessionPast):
				utils.JSONError(c, http.StatusConflict, "session already occurred")
			case errors.Is(err, booking.ErrSessionFull):
				utils.JSONError(c, http.StatusConflict, "session at capacity")
			default:
				utils.GetLogger().Error("SubmitBookingHandler failed",
					zap.String("checkoutID", checkoutID), zap.Error(err))
				utils.JSONError(c, http.StatusInternalServerError, "failed to submit booking")
			}
			return
		}

		c.JSON(http.StatusCreated, bk)
	}
}

// SubmitPaymentHandler settles the payment step of a checkout whose
// professional collects online.
func SubmitPaymentHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		checkoutID := c.Param("checkoutID")

		var req struct {
			Method string `json:"method" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "method is required")
			return
		}

		invoice, err := b.BookingService.SubmitPayment(c.Request.Context(), checkoutID, req.Method)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrCheckoutNotFound):
				utils.JSONError(c, http.StatusNotFound, "checkout not found or expired")
			case errors.Is(err, booking.ErrPaymentNotEnabled):
				utils.JSONError(c, http.StatusConflict, "this booking does not take online payment")
			default:
				utils.GetLogger().Error("SubmitPaymentHandler failed",
					zap.String("checkoutID", checkoutID), zap.Error(err))
				utils.JSONError(c, http.StatusBadGateway, "payment failed")
			}
			return
		}

		c.JSON(http.StatusOK, invoice)
	}
}

// CancelCheckoutHandler abandons an open checkout.
func CancelCheckoutHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		checkoutID := c.Param("checkoutID")
		if err := b.BookingService.CancelCheckout(c.Request.Context(), checkoutID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to cancel checkout")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}

// ApproveBookingHandler lets a manual-mode professional confirm a pending
// booking.
func ApproveBookingHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		professionalID := c.GetString(middleware.ContextSubjectID)
		bookingID := c.Param("bookingID")

		bk, err := b.BookingService.ApproveBooking(c.Request.Context(), professionalID, bookingID)
		if err != nil {
			if errors.Is(err, booking.ErrNotPending) {
				utils.JSONError(c, http.StatusConflict, "booking is not pending")
				return
			}
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		c.JSON(http.StatusOK, bk)
	}
}
