package main

import (
	"github.com/osse101/DietDiary_Go/internal/bootstrap"
	"github.com/osse101/DietDiary_Go/internal/config"
	"github.com/osse101/DietDiary_Go/internal/logger"
)

// initLogger installs a stdout-only logger, used when the session log file
// cannot be opened.
func initLogger(cfg *config.Config) {
	logger.InitLogger(bootstrap.LoggerConfig(cfg))
}
