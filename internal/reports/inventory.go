package reports

import (
	"cocopet/internal/exporter"
	"cocopet/pkg/contracts/domain"
)

// movementTypeLabels maps movement types to their Spanish display names.
var movementTypeLabels = map[domain.MovementType]string{
	domain.MovementTypeIn:         "Entrada",
	domain.MovementTypeOut:        "Salida",
	domain.MovementTypeAdjustment: "Ajuste",
}

// BuildInventory projects the current stock situation per product. Movements
// feed the optional last-movement columns; LowStockOnly keeps only products
// at or below their minimum.
func BuildInventory(products []domain.Product, movements []domain.StockMovement, opts Options) *Report {
	columns := []string{
		"Producto", "SKU", "Categoría", "Stock Actual", "Stock Mínimo",
		"Punto Reorden", "Estado",
	}
	if opts.IncludeValuation {
		columns = append(columns, "Valor Inventario", "Costo Total")
	}
	if opts.IncludeMovements {
		columns = append(columns, "Último Movimiento", "Tipo Movimiento", "Stock Resultante")
	}

	lastMovement := lastMovementByProduct(movements)

	records := make([]exporter.Record, 0, len(products))
	lowStock := 0
	for _, p := range products {
		status := p.StockStatus()
		isLow := status == domain.StockStatusLow || status == domain.StockStatusCritical
		if isLow {
			lowStock++
		}
		if opts.LowStockOnly && !isLow {
			continue
		}

		record := exporter.Record{
			"Producto":      p.Name,
			"SKU":           p.SKU,
			"Categoría":     p.Category,
			"Stock Actual":  p.CurrentStock,
			"Stock Mínimo":  p.MinStock,
			"Punto Reorden": p.ReorderPoint,
			"Estado":        stockStatusLabels[status],
		}
		if opts.IncludeValuation {
			record["Valor Inventario"] = p.InventoryValue()
			record["Costo Total"] = float64(p.CurrentStock) * p.Cost
		}
		if opts.IncludeMovements {
			if m, ok := lastMovement[p.ID]; ok {
				record["Último Movimiento"] = m.CreatedAt
				record["Tipo Movimiento"] = movementTypeLabels[m.Type]
				record["Stock Resultante"] = m.NewStock
			} else {
				record["Último Movimiento"] = nil
				record["Tipo Movimiento"] = ""
				record["Stock Resultante"] = nil
			}
		}
		records = append(records, record)
	}

	return &Report{
		Kind:     KindInventory,
		Filename: filename(KindInventory, opts),
		Columns:  columns,
		Records:  records,
		Metadata: map[string]any{
			"report_type":        string(KindInventory),
			"low_stock_only":     opts.LowStockOnly,
			"low_stock_products": lowStock,
			"total_products":     len(records),
		},
	}
}

// lastMovementByProduct keeps the most recent movement per product.
func lastMovementByProduct(movements []domain.StockMovement) map[int64]domain.StockMovement {
	last := make(map[int64]domain.StockMovement, len(movements))
	for _, m := range movements {
		if prev, ok := last[m.ProductID]; !ok || m.CreatedAt.After(prev.CreatedAt) {
			last[m.ProductID] = m
		}
	}
	return last
}
