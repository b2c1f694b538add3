package logship

import (
	"github.com/bft-labs/logship/pkg/event"
	"github.com/bft-labs/logship/pkg/log"
	"github.com/bft-labs/logship/pkg/transport"
)

// Version information for the logship module.
const (
	// Version is the current version of the logship module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)

// ModuleVersions returns the current versions of all sub-modules.
func ModuleVersions() map[string]string {
	return map[string]string{
		"logship":   Version,
		"event":     event.Version,
		"log":       log.Version,
		"transport": transport.Version,
	}
}

// CompatibilityMatrix returns the minimum compatible version for each
// sub-module.
func CompatibilityMatrix() map[string]string {
	return map[string]string{
		"logship":   MinCompatibleVersion,
		"event":     event.MinCompatibleVersion,
		"log":       log.MinCompatibleVersion,
		"transport": transport.MinCompatibleVersion,
	}
}
