package api

import (
	"errors"
	"net/http"

	reqdto "cleanpro-api/internal/handler/dto/request"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/usecase/commands"
	"cleanpro-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityCommands commands.AvailabilityCommands
	availabilityQueries  queries.AvailabilityQueries
}

func NewAvailabilityHandler(
	availabilityCommands commands.AvailabilityCommands,
	availabilityQueries queries.AvailabilityQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityCommands: availabilityCommands,
		availabilityQueries:  availabilityQueries,
	}
}

// @Summary Check day availability
// @Description Evaluate whether a calendar day can receive bookings
// @Tags availability
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} queries.DayDecision
// @Failure 400 {object} map[string]string
// @Router /availability/check [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	day, err := calendar.ParseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	decision, err := h.availabilityQueries.CheckDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, decision)
}

// @Summary List availability overrides
// @Description List every stored availability override
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.OverrideView
// @Router /availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	views, err := h.availabilityQueries.ListOverrides(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if views == nil {
		views = []*queries.OverrideView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Set day availability
// @Description Upsert the availability override for one day
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetDayRequest true "Day override"
// @Success 200 {object} queries.OverrideView
// @Failure 400 {object} map[string]string
// @Router /availability/day [put]
func (h *AvailabilityHandler) SetDay(c *gin.Context) {
	var req reqdto.SetDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	day, err := req.Day()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.availabilityCommands.SetDay(c.Request.Context(), day, *req.IsAvailable, req.Reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Set range availability
// @Description Upsert overrides for every day in an inclusive date range
// @Tags availability
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SetRangeRequest true "Range override"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /availability/range [put]
func (h *AvailabilityHandler) SetRange(c *gin.Context) {
	var req reqdto.SetRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	start, end, err := req.Days()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	if err := h.availabilityCommands.SetRange(c.Request.Context(), start, end, *req.IsAvailable, req.Reason); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End date must not be before start date",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set weekly pattern
// @Description Apply an override to every matching weekday within the forward horizon
// @Tags availability
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SetWeeklyPatternRequest true "Weekly pattern"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /availability/weekly [put]
func (h *AvailabilityHandler) SetWeeklyPattern(c *gin.Context) {
	var req reqdto.SetWeeklyPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.availabilityCommands.SetWeeklyPattern(c.Request.Context(), req.ToWeekdays(), *req.IsAvailable, req.Reason); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set holidays
// @Description Block a list of named holiday dates
// @Tags availability
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SetHolidaysRequest true "Holidays"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /availability/holidays [post]
func (h *AvailabilityHandler) SetHolidays(c *gin.Context) {
	var req reqdto.SetHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	holidays, err := req.ToHolidays()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	if err := h.availabilityCommands.SetHolidays(c.Request.Context(), holidays); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove override
// @Description Revert a day to default availability rules
// @Tags availability
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /availability/day/{date} [delete]
func (h *AvailabilityHandler) Remove(c *gin.Context) {
	day, err := calendar.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	if err := h.availabilityCommands.Remove(c.Request.Context(), day); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Clear overrides
// @Description Remove every stored override
// @Tags availability
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /availability [delete]
func (h *AvailabilityHandler) ClearAll(c *gin.Context) {
	if err := h.availabilityCommands.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
