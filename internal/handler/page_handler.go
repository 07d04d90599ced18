package handler

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/models"
	"ProteinCalculator/internal/reference"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded HTML templates for engine.SetHTMLTemplate.
func Templates() (*template.Template, error) {
	t, err := template.New("").
		Funcs(template.FuncMap{"num": estimator.FormatNumber}).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

type pageView struct {
	Input       estimator.Input
	Resp        models.EstimateResponse
	Content     *reference.Content
	Presets     []estimator.Preset
	Units       []estimator.Unit
	Genders     []estimator.Gender
	Activities  []estimator.Activity
	Goals       []estimator.Goal
	FactorMin   float64
	FactorMax   float64
	FactorStep  float64
	OutsideAMDR bool
	Year        int
}

// FormPage godoc
// @Summary      Calculator form
// @Description  Server-rendered form and result card. Accepts the same query parameters as GET /api/estimate.
// @Tags         Page
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Router       / [get]
func (h *Handler) FormPage(c *gin.Context) {
	in, ok := h.queryWithPreset(c)
	if !ok {
		return
	}
	resp := h.respond(in)
	outside := !resp.Result.Invalid && resp.Result.PercentApplicable &&
		!h.content.WithinAMDR(resp.Result.ProteinPercent)
	c.HTML(http.StatusOK, "index.tmpl", pageView{
		Input:       in,
		Resp:        resp,
		Content:     h.content,
		Presets:     estimator.Presets(),
		Units:       estimator.Units,
		Genders:     estimator.Genders,
		Activities:  estimator.Activities,
		Goals:       estimator.Goals,
		FactorMin:   estimator.CustomFactorMin,
		FactorMax:   estimator.CustomFactorMax,
		FactorStep:  estimator.CustomFactorStep,
		OutsideAMDR: outside,
		Year:        time.Now().Year(),
	})
}
