/**
* Name:        handler.go
* Description: gin HTTP handlers for the protein estimator
* Workflow:    query / JSON -> estimator.Input -> estimate -> JSON / HTML / text
 */
package handler

import (
	"net/http"

	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/metrics"
	"ProteinCalculator/internal/models"
	"ProteinCalculator/internal/reference"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves every estimator route. Defaults seed fields the caller omits.
type Handler struct {
	defaults estimator.Input
	content  *reference.Content
	logger   *zap.Logger
}

func New(defaults estimator.Input, content *reference.Content, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{defaults: defaults, content: content, logger: logger}
}

// inputFromQuery overlays query parameters onto base. A request coming from the
// HTML form sends form=1, in which case a missing use_custom checkbox means "off".
func (h *Handler) inputFromQuery(c *gin.Context, base estimator.Input) estimator.Input {
	in := base

	if v, ok := c.GetQuery("weight"); ok {
		in.Weight = estimator.ParseNumber(v)
	}
	if v, ok := c.GetQuery("unit"); ok {
		in.Unit = estimator.ParseUnit(v)
	}
	if v, ok := c.GetQuery("age"); ok {
		in.Age = estimator.ParseNumber(v)
	}
	if v, ok := c.GetQuery("gender"); ok {
		in.Gender = estimator.ParseGender(v)
	}
	if v, ok := c.GetQuery("activity"); ok {
		in.Activity = estimator.ParseActivity(v)
	}
	if v, ok := c.GetQuery("goal"); ok {
		in.Goal = estimator.ParseGoal(v)
	}
	if v, ok := c.GetQuery("calories"); ok {
		in.Calories = estimator.ParseNumber(v)
	}
	if v, ok := c.GetQuery("meals"); ok {
		in.Meals = estimator.ParseNumber(v)
	}
	if v, ok := c.GetQuery("custom_factor"); ok {
		in.CustomFactor = estimator.ParseNumber(v)
	}
	if v, ok := c.GetQuery("use_custom"); ok {
		in.UseCustom = estimator.ParseBool(v)
	} else if c.Query("form") == "1" {
		in.UseCustom = false
	}
	return in
}

// respond estimates in and records the outcome.
func (h *Handler) respond(in estimator.Input) models.EstimateResponse {
	resp := models.NewEstimateResponse(in)
	metrics.ObserveEstimate(string(resp.Result.FactorSource), resp.Result.Invalid)
	h.logger.Debug("estimate",
		zap.Float64("weight_kg", resp.Result.WeightKg),
		zap.Float64("factor", resp.Result.SelectedFactor),
		zap.String("factor_source", string(resp.Result.FactorSource)),
		zap.Bool("invalid", resp.Result.Invalid))
	return resp
}

// Health godoc
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200 {object} models.HealthResponse
// @Router       /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
