package api

import (
	"net/http"

	"cleanpro-api/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// @Summary List services
// @Description The services bookings can be placed against
// @Tags services
// @Produce json
// @Success 200 {array} catalog.Service
// @Router /services [get]
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}
