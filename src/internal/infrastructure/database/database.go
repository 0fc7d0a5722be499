package database

import (
	"fmt"

	"github.com/jackyeh168/autoservice/src/internal/config"
	"github.com/jackyeh168/autoservice/src/internal/infrastructure/persistence"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 依設定建立 GORM 連線並套用連線池參數
//
// sqlite 為預設（開發與測試）；postgres 關閉隱式 prepared statement。
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return db, nil
}

// Migrate 遷移服務清單相關資料表並確認資料表存在
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("running database migrations")

	if err := persistence.AutoMigrate(db); err != nil {
		return err
	}

	for _, model := range persistence.Models() {
		if !db.Migrator().HasTable(model) {
			return fmt.Errorf("table for %T missing after migration", model)
		}
	}

	log.Info().Int("models", len(persistence.Models())).Msg("database migrations completed")
	return nil
}

// Close 關閉底層連線池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.DatabaseDSN), nil
	case config.DriverPostgres:
		return postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseDSN,
			PreferSimpleProtocol: true,
		}), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
}

// gormLogLevel debug 時輸出 SQL，production 只記錄錯誤
func gormLogLevel(cfg *config.Config) logger.LogLevel {
	switch {
	case cfg.LogLevel == "debug":
		return logger.Info
	case cfg.IsProduction():
		return logger.Error
	default:
		return logger.Warn
	}
}
