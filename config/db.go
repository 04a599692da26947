package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/utils"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the store selected by cfg.DBDriver.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger(cfg.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == DriverMySQL {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}

	utils.InfoLogger.Printf("Connected to %s database", cfg.DBDriver)
	return db, nil
}

func Dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case DriverMySQL:
		return gormmysql.Open(MySQLDSN(cfg)), nil
	case DriverSQLite:
		return sqlite.Open(SQLiteDSN(cfg.SQLitePath)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func MySQLDSN(cfg *Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = cfg.DBHost + ":" + cfg.DBPort
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// SQLiteDSN turns a file path into a DSN with foreign keys enforced.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on"
}

// Migrate creates or updates the customers and reservations tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Customer{}, &models.Reservation{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

func gormLogger(level string) logger.Interface {
	lvl := logger.Warn
	switch level {
	case "debug", "trace":
		lvl = logger.Info
	case "error", "fatal", "panic":
		lvl = logger.Error
	}
	return logger.New(
		log.New(utils.InfoLogger.Writer(), "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  lvl,
			IgnoreRecordNotFoundError: true,
		},
	)
}
