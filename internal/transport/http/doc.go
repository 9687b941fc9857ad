// Package http implements the HTTP request handlers for the CocoPet export
// service. Handlers stay thin: they parse and validate the request, delegate
// to the service layer, and translate typed errors into APIError responses.
//
// A typical request flows through these layers:
//
//	HTTP Request → Chi Router → Middleware → Handler → Service → Exporter
//	                                              ↓
//	HTTP Response ← Handler ← Service Response ←─┘
//
// All error responses follow the internal/errors APIError shape:
//
//	{
//	    "status": 422,
//	    "error_code": "NO_EXPORT_DATA",
//	    "message": "No data available for export"
//	}
package http
