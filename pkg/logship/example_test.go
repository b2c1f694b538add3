package logship_test

import (
	"context"
	"fmt"

	"github.com/bft-labs/logship/pkg/event"
	"github.com/bft-labs/logship/pkg/logship"
)

// ExampleNew demonstrates how to embed logship in your application.
func ExampleNew() {
	// Create configuration
	cfg := logship.Config{
		IngestURL:      "https://logs.example.com/bulk",
		UseCompression: true,
	}

	// Create shipper instance
	s, err := logship.New(cfg)
	if err != nil {
		fmt.Printf("failed to create shipper: %v\n", err)
		return
	}

	// Start background dispatch (non-blocking)
	ctx := context.Background()
	if err := s.Start(ctx); err != nil {
		fmt.Printf("failed to start: %v\n", err)
		return
	}

	// Check status (may be Starting or Running depending on timing)
	st := s.Status().State
	fmt.Printf("Status is valid: %v\n", st == logship.StateStarting || st == logship.StateRunning)

	// Stop gracefully (flushes pending events)
	_ = s.Stop()

	// Output: Status is valid: true
}

// ExampleShipper_SendBatch demonstrates synchronous one-shot delivery.
func ExampleShipper_SendBatch() {
	cfg := logship.Config{IngestURL: "https://logs.example.com/bulk"}

	s, err := logship.New(cfg)
	if err != nil {
		fmt.Printf("failed to create shipper: %v\n", err)
		return
	}

	// An empty batch succeeds without touching the network.
	err = s.SendBatch(context.Background(), event.NewBatch())
	fmt.Printf("empty batch: %v\n", err)

	// Output: empty batch: <nil>
}

// Example_withEventHandler demonstrates how to receive shipper events.
func Example_withEventHandler() {
	handler := &myEventHandler{}

	cfg := logship.Config{IngestURL: "https://logs.example.com/bulk"}

	// Create with event handler
	s, err := logship.New(cfg, logship.WithEventHandler(handler))
	if err != nil {
		fmt.Printf("failed to create shipper: %v\n", err)
		return
	}

	_ = s // Use shipper instance...
}

// myEventHandler implements logship.EventHandler for event notifications.
type myEventHandler struct {
	logship.BaseEventHandler // Embed for no-op defaults
}

func (h *myEventHandler) OnSendSuccess(e logship.SendSuccessEvent) {
	fmt.Printf("Sent %d events in %v (%d attempts)\n",
		e.EventCount, e.Duration, e.Attempts)
}

func (h *myEventHandler) OnSendError(e logship.SendErrorEvent) {
	fmt.Printf("Dropped %d events: %v\n", e.EventCount, e.Error)
}
