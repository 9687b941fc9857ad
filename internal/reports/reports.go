package reports

import (
	"fmt"
	"time"

	"cocopet/internal/dateutil"
	"cocopet/internal/exporter"
)

// Kind identifies one of the dashboard's report types
type Kind string

const (
	KindProducts    Kind = "productos"
	KindOrders      Kind = "pedidos"
	KindPredictions Kind = "predicciones"
	KindInventory   Kind = "inventario"
)

// Valid reports whether k names a known report kind.
func (k Kind) Valid() bool {
	switch k {
	case KindProducts, KindOrders, KindPredictions, KindInventory:
		return true
	}
	return false
}

// Options controls which column groups and filters a builder applies.
// Constructed fresh per export call.
type Options struct {
	Format exporter.Format `json:"format" validate:"omitempty,oneof=csv excel json xlsx"`

	// Now stamps the filename and JSON document; injected for determinism.
	Now time.Time `json:"-"`

	// Optional column groups.
	IncludeAnalytics  bool `json:"include_analytics,omitempty"`  // products: margin, stock status, valuation
	IncludeCustomer   bool `json:"include_customer,omitempty"`   // orders: customer name and phone
	IncludeDelivery   bool `json:"include_delivery,omitempty"`   // orders: address and coordinates
	IncludeConfidence bool `json:"include_confidence,omitempty"` // predictions: interval bounds
	IncludeMetrics    bool `json:"include_metrics,omitempty"`    // predictions: model accuracy and version
	IncludeValuation  bool `json:"include_valuation,omitempty"`  // inventory: stock value columns
	IncludeMovements  bool `json:"include_movements,omitempty"`  // inventory: last movement columns

	// Domain filters.
	DateRange    *dateutil.DateRange `json:"date_range,omitempty"`     // orders only
	LowStockOnly bool                `json:"low_stock_only,omitempty"` // inventory only
}

// Report is a finished column projection plus the metadata the JSON format
// embeds in its envelope.
type Report struct {
	Kind     Kind
	Filename string
	Columns  []string
	Records  []exporter.Record
	Metadata map[string]any
}

// Marshal serializes the report in the requested format and wraps it in an
// artifact ready for the sink or an HTTP download.
func (r *Report) Marshal(opts Options) (*exporter.Artifact, error) {
	format := opts.Format
	if format == "" {
		format = exporter.FormatCSV
	}

	exportOpts := exporter.DefaultOptions()
	exportOpts.Format = format
	exportOpts.Columns = r.Columns
	exportOpts.Metadata = r.Metadata
	exportOpts.Now = opts.Now

	content, err := exporter.Marshal(r.Records, exportOpts)
	if err != nil {
		return nil, fmt.Errorf("marshal %s report: %w", r.Kind, err)
	}

	artifact := exporter.NewArtifact(r.Filename, format.MIME(), content)
	// Excel-bound delimited text needs the BOM so accented Spanish labels
	// survive the import.
	artifact.BOMPrefix = format == exporter.FormatCSV || format == exporter.FormatExcel
	return artifact, nil
}

// filename embeds the report kind and the current date stamp.
func filename(kind Kind, opts Options) string {
	format := opts.Format
	if format == "" {
		format = exporter.FormatCSV
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return fmt.Sprintf("cocopet_%s_%s%s", kind, now.Format("20060102"), format.Extension())
}
