package models

import (
	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/reference"
)

type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

type PresetListResponse struct {
	Presets []estimator.Preset `json:"presets"`
}

type ReferenceResponse struct {
	Content *reference.Content `json:"content"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
