// Package logship provides an embeddable log shipping client.
//
// Logship batches structured log events, serializes each batch to
// newline-delimited JSON, optionally compresses it, and delivers it to an
// ingestion endpoint in a single HTTP call per batch. It can be used as a
// standalone CLI application or embedded as a library in other Go programs.
//
// # Basic Usage
//
// To embed logship in your application:
//
//	cfg := logship.Config{
//	    IngestURL:      "https://logs.example.com/bulk",
//	    UseCompression: true,
//	}
//
//	shipper, err := logship.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := shipper.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	e := event.New().
//	    Set("message", event.String("service started")).
//	    Set("id", event.Int(300))
//	_ = shipper.Enqueue(e)
//
//	// ... run until shutdown signal ...
//
//	if err := shipper.Stop(); err != nil {
//	    log.Printf("shutdown error: %v", err)
//	}
//
// # Synchronous Sending
//
// For one-shot delivery without background dispatch, use
// [Shipper.SendBatch]; it serializes, optionally compresses, and makes at
// most one transport call. An empty batch succeeds without any call:
//
//	batch := event.NewBatch(
//	    event.New().Set("message", event.String("hey")),
//	)
//	if err := shipper.SendBatch(ctx, batch); err != nil {
//	    if errors.Is(err, logship.ErrSerialization) {
//	        // the batch cannot be represented as JSON; retrying is useless
//	    }
//	}
//
// # Configuration
//
// Create a [Config] with at minimum IngestURL. All other fields have
// sensible defaults set via [Config.SetDefaults].
//
// # Event Handling
//
// To receive notifications about shipper operations, implement
// [EventHandler] and pass it via [WithEventHandler]:
//
//	handler := &myEventHandler{}
//	shipper, err := logship.New(cfg, logship.WithEventHandler(handler))
//
// Events are called synchronously from the dispatch goroutine.
// Implementations should return quickly to avoid blocking delivery.
//
// # Dependency Injection
//
// For testing, you can inject custom implementations of external
// dependencies:
//
//	shipper, err := logship.New(cfg,
//	    logship.WithHTTPClient(mockClient),
//	    logship.WithLogger(customLogger),
//	)
//
// # Lifecycle States
//
// A Shipper can be in one of five states: [StateStopped], [StateStarting],
// [StateRunning], [StateStopping], or [StateCrashed]. Use [Shipper.Status]
// to query the current state along with queue depth and drop count.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// Use [ModuleVersions] to get versions of all sub-modules and
// [CompatibilityMatrix] to check minimum compatible versions.
package logship
