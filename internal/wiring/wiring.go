// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rtcbuild/internal/adapters/config"
	_ "go.trai.ch/rtcbuild/internal/adapters/fs"
	_ "go.trai.ch/rtcbuild/internal/adapters/git"
	_ "go.trai.ch/rtcbuild/internal/adapters/logger"
	_ "go.trai.ch/rtcbuild/internal/adapters/shell"
	_ "go.trai.ch/rtcbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/rtcbuild/internal/app"
	_ "go.trai.ch/rtcbuild/internal/engine/pipeline"
)
