package handler

import (
	"net/http"

	"ProteinCalculator/internal/models"

	"github.com/gin-gonic/gin"
)

// GetReferences godoc
// @Summary      Reference guidance
// @Description  Static reference ranges, per-meal tip and disclaimer shown beside the estimate.
// @Tags         Reference
// @Produce      json
// @Success      200 {object} models.ReferenceResponse
// @Router       /api/references [get]
func (h *Handler) GetReferences(c *gin.Context) {
	c.JSON(http.StatusOK, models.ReferenceResponse{Content: h.content})
}
