// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/genreqs/internal/adapters/conda"
	_ "go.trai.ch/genreqs/internal/adapters/logger"
	_ "go.trai.ch/genreqs/internal/adapters/reqfile"
	_ "go.trai.ch/genreqs/internal/adapters/shell"
	_ "go.trai.ch/genreqs/internal/adapters/source"
	_ "go.trai.ch/genreqs/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/genreqs/internal/app"
)
