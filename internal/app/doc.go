// Package app provides application initialization and lifecycle management
// for the CocoPet export service. It wires configuration, logging,
// observability, the export service and the HTTP surface together at
// startup, and handles graceful shutdown.
//
// The typical initialization sequence:
//
//  1. Load configuration from the YAML file and COCOPET_* environment
//  2. Initialize logging and tracing
//  3. Create the snapshot store, sink and artifact registry
//  4. Initialize the export service with its dependencies
//  5. Set up HTTP handlers and middleware
//  6. Configure and start the HTTP server
//
// The main entry point is typically:
//
//	application, err := app.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := application.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until SIGINT or SIGTERM, then drains active requests within the
// configured shutdown timeout before flushing tracing and closing the log.
package app
