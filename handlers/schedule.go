// File: handlers/schedule.go
package handlers

import (
	"net/http"
	"strconv"

	"wellspring/middleware"
	"wellspring/models"
	"wellspring/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WeeklyScheduleHandler renders one professional's week. The week query
// parameter is an offset from the current week: 0 is this week, -1 last,
// 1 next. Anonymous viewers get the same page with booking gated behind
// login.
func WeeklyScheduleHandler(b *HandlerBundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		professionalID := c.Param("id")

		weekIndex := 0
		if raw := c.Query("week"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "week must be an integer offset")
				return
			}
			weekIndex = parsed
		}

		viewer := models.ViewerContext{}
		if subject := c.GetString(middleware.ContextSubjectID); subject != "" && c.GetString(middleware.ContextRole) == "client" {
			viewer.IsAuthenticated = true
			viewer.ClientID = subject
		}

		view, err := b.BookingService.WeeklySchedule(c.Request.Context(), professionalID, weekIndex, viewer)
		if err != nil {
			utils.GetLogger().Error("WeeklyScheduleHandler failed",
				zap.String("professionalID", professionalID), zap.Error(err))
			utils.JSONError(c, http.StatusNotFound, "professional not found")
			return
		}

		c.JSON(http.StatusOK, view)
	}
}
