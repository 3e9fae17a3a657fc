package main

import (
	"github.com/bookcircle/server/internal/config"
	"github.com/bookcircle/server/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
