package handler

import (
	"encoding/json"
	"net/http"

	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/metrics"
	"ProteinCalculator/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostEstimate godoc
// @Summary      Estimate daily protein (JSON)
// @Description  Computes the daily protein estimate. Omitted fields use the form defaults;
// @Description  non-numeric values are coerced to 0 instead of being rejected.
// @Tags         Estimate
// @Accept       json
// @Produce      json
// @Param        request body models.EstimateRequest true "Body metrics and goal"
// @Success      200 {object} models.EstimateResponse
// @Failure      400 {object} models.ErrorResponse "Body is not a JSON object"
// @Router       /api/estimate [post]
func (h *Handler) PostEstimate(c *gin.Context) {
	var req models.EstimateRequest

	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if len(rawData) > 0 {
		if err := json.Unmarshal(rawData, &req); err != nil {
			h.logger.Debug("PostEstimate: json.Unmarshal failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON parsing error: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, h.respond(req.ToInput(h.defaults)))
}

// GetEstimate godoc
// @Summary      Estimate daily protein (query)
// @Description  Same as POST /api/estimate with inputs passed as query parameters.
// @Tags         Estimate
// @Produce      json
// @Param        weight        query number  false "Body weight" example(70)
// @Param        unit          query string  false "kg or lb" Enums(kg, lb)
// @Param        age           query number  false "Age in years"
// @Param        gender        query string  false "Informational only" Enums(male, female, other)
// @Param        activity      query string  false "Activity level" Enums(sedentary, moderately_active, active, athlete)
// @Param        goal          query string  false "Goal" Enums(maintenance, hypertrophy, weight_loss, older_adult, pregnancy)
// @Param        calories      query number  false "Daily calorie budget"
// @Param        meals         query number  false "Meals per day"
// @Param        custom_factor query number  false "Custom g/kg factor (0.5-3.0)"
// @Param        use_custom    query boolean false "Use the custom factor"
// @Param        preset        query string  false "Preset key applied before the other query fields"
// @Success      200 {object} models.EstimateResponse
// @Failure      404 {object} models.ErrorResponse "Unknown preset"
// @Router       /api/estimate [get]
func (h *Handler) GetEstimate(c *gin.Context) {
	in, ok := h.queryWithPreset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.respond(in))
}

// GetSummary godoc
// @Summary      Copy-ready summary line
// @Description  Returns the single line produced by the "copy result" action.
// @Tags         Estimate
// @Produce      plain
// @Param        weight   query number  false "Body weight"
// @Param        unit     query string  false "kg or lb"
// @Param        calories query number  false "Daily calorie budget"
// @Param        meals    query number  false "Meals per day"
// @Param        preset   query string  false "Preset key applied before the other query fields"
// @Success      200 {string} string "Protein recommendation: 56 g/day (18.7 g x 3), 9% of 2500 kcal/day"
// @Failure      404 {object} models.ErrorResponse "Unknown preset"
// @Router       /api/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	in, ok := h.queryWithPreset(c)
	if !ok {
		return
	}
	resp := h.respond(in)
	metrics.IncSummary()
	c.String(http.StatusOK, resp.Summary)
}

// queryWithPreset parses the query with ?preset= applied first, so explicit
// fields override it. A form submission (form=1) carries every field, and a
// preset button there must win, so it is applied last instead. It writes the
// error response itself and returns false when the preset is unknown.
func (h *Handler) queryWithPreset(c *gin.Context) (estimator.Input, bool) {
	key := c.Query("preset")
	if key == "" {
		return h.inputFromQuery(c, h.defaults), true
	}

	var (
		in  estimator.Input
		err error
	)
	if c.Query("form") == "1" {
		in, err = estimator.ApplyPreset(h.inputFromQuery(c, h.defaults), key)
	} else if in, err = estimator.ApplyPreset(h.defaults, key); err == nil {
		in = h.inputFromQuery(c, in)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Unknown preset: " + key})
		return in, false
	}
	metrics.IncPresetApplied(key)
	return in, true
}
