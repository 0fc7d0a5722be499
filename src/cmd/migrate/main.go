package main

import (
	"fmt"
	"os"

	"github.com/jackyeh168/autoservice/src/internal/config"
	"github.com/jackyeh168/autoservice/src/internal/infrastructure/database"
	"github.com/jackyeh168/autoservice/src/internal/infrastructure/logging"
)

// migrate 建立或更新服務清單資料表
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.NewLogger(cfg.LogFormat, cfg.LogLevel)
	log = log.With().Str("app_env", cfg.AppEnv).Str("db_driver", cfg.DBDriver).Logger()

	db, err := database.Open(cfg)
	if err != nil {
		log.Error().Err(err).Msg("open database")
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
	}()

	if err := database.Migrate(db, log); err != nil {
		log.Error().Err(err).Msg("migrate")
		_ = database.Close(db)
		os.Exit(1)
	}
}
