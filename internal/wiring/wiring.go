// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mist/internal/adapters/cas"
	_ "go.trai.ch/mist/internal/adapters/config"
	_ "go.trai.ch/mist/internal/adapters/logger"
	_ "go.trai.ch/mist/internal/adapters/plaintext"
	_ "go.trai.ch/mist/internal/adapters/telemetry"
	_ "go.trai.ch/mist/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/mist/internal/app"
)
