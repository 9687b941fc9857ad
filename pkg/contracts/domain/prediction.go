package domain

import (
	"time"
)

// PredictionType identifies the granularity or target of a forecast
type PredictionType string

const (
	PredictionTypeDaily   PredictionType = "daily"
	PredictionTypeWeekly  PredictionType = "weekly"
	PredictionTypeMonthly PredictionType = "monthly"
	PredictionTypeProduct PredictionType = "product"
	PredictionTypeZone    PredictionType = "zone"
)

// Prediction represents one model forecast with its confidence interval
type Prediction struct {
	ID              int64          `json:"id"`
	Type            PredictionType `json:"prediction_type" validate:"required"`
	TargetDate      time.Time      `json:"target_date"`
	ProductID       int64          `json:"product_id,omitempty"`
	ProductName     string         `json:"product_name,omitempty"`
	ClusterID       int            `json:"cluster_id,omitempty"`
	PredictedValue  float64        `json:"predicted_value"`
	ConfidenceLower float64        `json:"confidence_lower"`
	ConfidenceUpper float64        `json:"confidence_upper"`
	ConfidenceLevel float64        `json:"confidence_level"`
	ModelName       string         `json:"model_name" validate:"required"`
	ModelVersion    string         `json:"model_version,omitempty"`
	AccuracyScore   float64        `json:"accuracy_score,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	IsActive        bool           `json:"is_active"`
}
