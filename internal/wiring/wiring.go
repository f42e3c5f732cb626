// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depcache/internal/adapters/config"
	_ "go.trai.ch/depcache/internal/adapters/fs"
	_ "go.trai.ch/depcache/internal/adapters/logger"
	_ "go.trai.ch/depcache/internal/adapters/metadata"
	// Register app and engine nodes.
	_ "go.trai.ch/depcache/internal/app"
	_ "go.trai.ch/depcache/internal/engine/depcache"
)
