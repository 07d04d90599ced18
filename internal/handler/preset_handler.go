package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/metrics"
	"ProteinCalculator/internal/models"

	"github.com/gin-gonic/gin"
)

// ListPresets godoc
// @Summary      List factor presets
// @Tags         Presets
// @Produce      json
// @Success      200 {object} models.PresetListResponse
// @Router       /api/presets [get]
func (h *Handler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, models.PresetListResponse{Presets: estimator.Presets()})
}

// ApplyPreset godoc
// @Summary      Apply a preset to an input
// @Description  Sets goal to maintenance, activity to sedentary and enables the preset's
// @Description  custom factor, then estimates. The returned input carries the change.
// @Tags         Presets
// @Accept       json
// @Produce      json
// @Param        key     path string                 true  "Preset key (e.g. rda, hypertrophy)"
// @Param        request body models.EstimateRequest false "Current form input"
// @Success      200 {object} models.EstimateResponse
// @Failure      400 {object} models.ErrorResponse
// @Failure      404 {object} models.ErrorResponse "Unknown preset"
// @Router       /api/presets/{key}/apply [post]
func (h *Handler) ApplyPreset(c *gin.Context) {
	key := c.Param("key")

	var req models.EstimateRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if len(rawData) > 0 {
		if err := json.Unmarshal(rawData, &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON parsing error: " + err.Error()})
			return
		}
	}

	in, err := estimator.ApplyPreset(req.ToInput(h.defaults), key)
	if err != nil {
		if errors.Is(err, estimator.ErrUnknownPreset) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Unknown preset: " + key})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	metrics.IncPresetApplied(key)
	c.JSON(http.StatusOK, h.respond(in))
}
