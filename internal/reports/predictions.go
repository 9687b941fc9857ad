package reports

import (
	"fmt"

	"cocopet/internal/exporter"
	"cocopet/pkg/contracts/domain"
)

// predictionTypeLabels maps forecast types to their Spanish display names.
var predictionTypeLabels = map[domain.PredictionType]string{
	domain.PredictionTypeDaily:   "Diaria",
	domain.PredictionTypeWeekly:  "Semanal",
	domain.PredictionTypeMonthly: "Mensual",
	domain.PredictionTypeProduct: "Por Producto",
	domain.PredictionTypeZone:    "Por Zona",
}

// BuildPredictions projects model forecasts into the export layout. The
// confidence flag adds the interval columns and the metrics flag adds model
// accuracy and version.
func BuildPredictions(predictions []domain.Prediction, opts Options) *Report {
	columns := []string{
		"Tipo", "Fecha Objetivo", "Producto", "Valor Predicho", "Modelo",
	}
	if opts.IncludeConfidence {
		columns = append(columns, "Límite Inferior", "Límite Superior", "Nivel Confianza")
	}
	if opts.IncludeMetrics {
		columns = append(columns, "Precisión", "Versión Modelo")
	}

	records := make([]exporter.Record, 0, len(predictions))
	for _, p := range predictions {
		record := exporter.Record{
			"Tipo":           predictionTypeLabels[p.Type],
			"Fecha Objetivo": p.TargetDate,
			"Producto":       p.ProductName,
			"Valor Predicho": p.PredictedValue,
			"Modelo":         p.ModelName,
		}
		if opts.IncludeConfidence {
			record["Límite Inferior"] = p.ConfidenceLower
			record["Límite Superior"] = p.ConfidenceUpper
			record["Nivel Confianza"] = fmt.Sprintf("%.0f%%", p.ConfidenceLevel*100)
		}
		if opts.IncludeMetrics {
			record["Precisión"] = p.AccuracyScore
			record["Versión Modelo"] = p.ModelVersion
		}
		records = append(records, record)
	}

	return &Report{
		Kind:     KindPredictions,
		Filename: filename(KindPredictions, opts),
		Columns:  columns,
		Records:  records,
		Metadata: map[string]any{
			"report_type":        string(KindPredictions),
			"include_confidence": opts.IncludeConfidence,
			"include_metrics":    opts.IncludeMetrics,
			"total_predictions":  len(records),
		},
	}
}
