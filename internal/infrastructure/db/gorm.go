package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGorm connects to MySQL and routes GORM's log output through zl.
func OpenGorm(dsn string, zl zerolog.Logger) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), zl)
}

func OpenGormWithDialector(dial gorm.Dialector, zl zerolog.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:               newGormLogger(zl),
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	zl.Info().Str("component", "gorm").Msg("connected")
	return db, nil
}

func newGormLogger(zl zerolog.Logger) gormlogger.Interface {
	lvl := gormlogger.Warn
	if zl.GetLevel() <= zerolog.DebugLevel {
		lvl = gormlogger.Info
	}
	l := zl.With().Str("component", "gorm").Logger()
	return gormlogger.New(&l, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
