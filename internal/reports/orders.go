package reports

import (
	"cocopet/internal/exporter"
	"cocopet/pkg/contracts/domain"
)

// orderStatusLabels maps order states to the Spanish labels the dashboard shows.
var orderStatusLabels = map[domain.OrderStatus]string{
	domain.OrderStatusPending:   "Pendiente",
	domain.OrderStatusConfirmed: "Confirmado",
	domain.OrderStatusDelivered: "Entregado",
	domain.OrderStatusCancelled: "Cancelado",
}

// BuildOrders projects orders into the export layout. An optional date range
// filters by order date; the customer and delivery column groups sit behind
// their flags.
func BuildOrders(orders []domain.Order, opts Options) *Report {
	columns := []string{
		"ID Pedido", "Producto", "Cantidad", "Precio Unitario", "Total",
		"Fecha", "Estado", "Origen",
	}
	if opts.IncludeCustomer {
		columns = append(columns, "Cliente", "Teléfono")
	}
	if opts.IncludeDelivery {
		columns = append(columns, "Dirección", "Latitud", "Longitud", "Zona")
	}

	records := make([]exporter.Record, 0, len(orders))
	filtered := 0
	for _, o := range orders {
		if opts.DateRange != nil && !opts.DateRange.Contains(o.OrderDate) {
			filtered++
			continue
		}

		record := exporter.Record{
			"ID Pedido":       o.OrderID,
			"Producto":        o.ProductName,
			"Cantidad":        o.Quantity,
			"Precio Unitario": o.UnitPrice,
			"Total":           o.TotalPrice,
			"Fecha":           o.OrderDate,
			"Estado":          orderStatusLabels[o.Status],
			"Origen":          string(o.Source),
		}
		if opts.IncludeCustomer {
			var name, phone string
			if o.Customer != nil {
				name = o.Customer.Name
				phone = o.Customer.Phone
			}
			record["Cliente"] = name
			record["Teléfono"] = phone
		}
		if opts.IncludeDelivery {
			record["Dirección"] = o.Address
			record["Latitud"] = o.Latitude
			record["Longitud"] = o.Longitude
			record["Zona"] = o.ClusterID
		}
		records = append(records, record)
	}

	metadata := map[string]any{
		"report_type":      string(KindOrders),
		"include_customer": opts.IncludeCustomer,
		"include_delivery": opts.IncludeDelivery,
		"total_orders":     len(records),
	}
	if opts.DateRange != nil {
		metadata["date_from"] = opts.DateRange.Start
		metadata["date_to"] = opts.DateRange.End
		metadata["filtered_out"] = filtered
	}

	return &Report{
		Kind:     KindOrders,
		Filename: filename(KindOrders, opts),
		Columns:  columns,
		Records:  records,
		Metadata: metadata,
	}
}
