package reports

import (
	"fmt"

	"cocopet/internal/exporter"
	"cocopet/pkg/contracts/domain"
)

// stockStatusLabels maps the domain classification to the Spanish labels the
// dashboard shows.
var stockStatusLabels = map[domain.StockStatus]string{
	domain.StockStatusCritical: "Crítico",
	domain.StockStatusLow:      "Bajo",
	domain.StockStatusNormal:   "Normal",
	domain.StockStatusHigh:     "Alto",
}

// BuildProducts projects the product catalogue into the export layout. The
// analytics flag appends the derived margin, stock-status and valuation
// columns.
func BuildProducts(products []domain.Product, opts Options) *Report {
	columns := []string{
		"ID", "Nombre", "Marca", "Categoría", "Tamaño", "Precio", "Costo",
		"SKU", "Stock Actual", "Stock Mínimo", "Stock Máximo", "Punto Reorden",
		"Activo", "Fecha Creación",
	}
	if opts.IncludeAnalytics {
		columns = append(columns, "Margen %", "Estado Stock", "Valor Inventario")
	}

	records := make([]exporter.Record, 0, len(products))
	for _, p := range products {
		record := exporter.Record{
			"ID":             p.ID,
			"Nombre":         p.Name,
			"Marca":          p.Brand,
			"Categoría":      p.Category,
			"Tamaño":         p.WeightSize,
			"Precio":         p.Price,
			"Costo":          p.Cost,
			"SKU":            p.SKU,
			"Stock Actual":   p.CurrentStock,
			"Stock Mínimo":   p.MinStock,
			"Stock Máximo":   p.MaxStock,
			"Punto Reorden":  p.ReorderPoint,
			"Activo":         p.IsActive,
			"Fecha Creación": p.CreatedAt,
		}
		if opts.IncludeAnalytics {
			record["Margen %"] = fmt.Sprintf("%.1f%%", p.Margin())
			record["Estado Stock"] = stockStatusLabels[p.StockStatus()]
			record["Valor Inventario"] = p.InventoryValue()
		}
		records = append(records, record)
	}

	return &Report{
		Kind:     KindProducts,
		Filename: filename(KindProducts, opts),
		Columns:  columns,
		Records:  records,
		Metadata: map[string]any{
			"report_type":       string(KindProducts),
			"include_analytics": opts.IncludeAnalytics,
			"total_products":    len(products),
		},
	}
}
