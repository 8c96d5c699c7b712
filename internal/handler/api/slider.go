package api

import (
	"errors"
	"net/http"

	reqdto "cleanpro-api/internal/handler/dto/request"
	"cleanpro-api/internal/usecase/commands"
	"cleanpro-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SliderHandler struct {
	sliderCommands commands.SliderCommands
	sliderQueries  queries.SliderQueries
}

func NewSliderHandler(sliderCommands commands.SliderCommands, sliderQueries queries.SliderQueries) *SliderHandler {
	return &SliderHandler{
		sliderCommands: sliderCommands,
		sliderQueries:  sliderQueries,
	}
}

// @Summary List active slider images
// @Description Images the public landing page should display, in position order
// @Tags slider
// @Produce json
// @Success 200 {array} queries.SliderImageView
// @Router /slider [get]
func (h *SliderHandler) ListActive(c *gin.Context) {
	h.list(c, true)
}

// @Summary List all slider images
// @Tags slider
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.SliderImageView
// @Router /slider/all [get]
func (h *SliderHandler) ListAll(c *gin.Context) {
	h.list(c, false)
}

func (h *SliderHandler) list(c *gin.Context, activeOnly bool) {
	views, err := h.sliderQueries.ListImages(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if views == nil {
		views = []*queries.SliderImageView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Add slider image
// @Tags slider
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddSliderImageRequest true "Image"
// @Success 201 {object} queries.SliderImageView
// @Failure 400 {object} map[string]string
// @Router /slider [post]
func (h *SliderHandler) Add(c *gin.Context) {
	var req reqdto.AddSliderImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.sliderCommands.AddImage(c.Request.Context(), req.URL, req.Caption)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update slider image
// @Tags slider
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Param request body reqdto.UpdateSliderImageRequest true "Image fields"
// @Success 200 {object} queries.SliderImageView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slider/{id} [patch]
func (h *SliderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid image ID format",
		})
		return
	}

	var req reqdto.UpdateSliderImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.sliderCommands.UpdateImage(c.Request.Context(), id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSliderImageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slider image not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete slider image
// @Tags slider
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slider/{id} [delete]
func (h *SliderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid image ID format",
		})
		return
	}

	if err := h.sliderCommands.DeleteImage(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrSliderImageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slider image not found",
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
