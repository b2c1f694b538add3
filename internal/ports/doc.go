// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the application needs from external systems
// without specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [EventSource]: Produces log events from an external origin
//
// # Usage
//
// The CLI agent consumes events through EventSource without knowing whether
// they come from a tailed file, a socket, or a test fixture. Infrastructure
// adapters (internal/adapters) provide the concrete implementations.
package ports
