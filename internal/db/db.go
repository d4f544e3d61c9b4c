package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/types"
	"github.com/laingsimon/courage-scores/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New connects to postgres when DATABASE_URL is set, otherwise falls back
// to a local sqlite file for development.
func New(log *logger.Logger) (*Service, error) {
	svcLog := log.With("component", "DB")

	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	dsn := utils.GetEnv("DATABASE_URL", "", svcLog)
	var (
		conn *gorm.DB
		err  error
	)
	if dsn != "" {
		conn, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		path := utils.GetEnv("SQLITE_PATH", "courage-scores.db", svcLog)
		svcLog.Info("DATABASE_URL not set, using sqlite", "path", path)
		conn, err = gorm.Open(sqlite.Open(path), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Service{db: conn, log: svcLog}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) AutoMigrateAll() error {
	return s.db.AutoMigrate(
		&types.Division{},
		&types.Season{},
		&types.Team{},
		&types.Game{},
		&types.TournamentGame{},
		&types.FixtureDateNote{},
		&types.ErrorDetail{},
		&types.RecordedScoreAsYouGo{},
	)
}
