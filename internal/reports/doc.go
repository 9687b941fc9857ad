// Package reports maps the dashboard's domain records (products, orders,
// predictions, inventory) onto flat, Spanish-labeled column projections
// ready for the exporter. Builders are pure data reshaping: optional column
// groups sit behind boolean flags and the only derived values are display
// columns such as the stock-status label or the margin percentage.
package reports
