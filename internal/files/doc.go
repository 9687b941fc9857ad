// Package files handles the service's two directories on disk: the data
// directory holding the domain snapshots the dashboard syncs down
// (products.json, orders.json, ...), and the exports directory where
// generated report artifacts land and are served for download.
package files
