package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mnyiz/lockdin/internal/logging"
	"github.com/mnyiz/lockdin/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// friendsPairIndex enforces one relationship row per unordered pair.
const friendsPairIndex = `CREATE UNIQUE INDEX IF NOT EXISTS friends_unordered_pair_idx
	ON friends (LEAST(requester_id, receiver_id), GREATEST(requester_id, receiver_id))`

// ConnectDatabase opens the gateway's postgres database. Driver errors are
// translated so duplicate keys surface as gorm.ErrDuplicatedKey.
func ConnectDatabase(dsn string, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(logging.StdLogger(log, slog.LevelWarn), gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info("Successfully connected to database")
	return db, nil
}

// Migrate creates the profile and friends tables, and the accounts table when
// the local identity provider owns credentials.
func Migrate(db *gorm.DB, withAccounts bool) error {
	tables := []any{&models.Profile{}, &models.Friend{}}
	if withAccounts {
		tables = append(tables, &models.Account{})
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec(friendsPairIndex).Error; err != nil {
		return fmt.Errorf("create pair index: %w", err)
	}
	return nil
}
