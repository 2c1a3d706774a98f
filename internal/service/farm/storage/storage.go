// Package storage SQLite(GORM) 기반의 농장 저장소를 제공합니다.
package storage

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/darkkaiser/farm-server/internal/config"
	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
	"github.com/darkkaiser/farm-server/internal/service/farm"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/darkkaiser/farm-server/pkg/validation"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const component = "farm.storage"

const (
	// filePragmas 파일 DB 연결마다 적용할 PRAGMA 설정
	filePragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

	// slowQueryThreshold 이 시간을 넘는 쿼리는 경고 로그를 남깁니다.
	slowQueryThreshold = 200 * time.Millisecond
)

// Store SQLite 데이터베이스 연결을 소유하며 Repository, 헬스체크, 백업 기능을 제공합니다.
type Store struct {
	db   *gorm.DB
	path string
}

// Open 설정에 따라 데이터베이스를 열고 스키마를 마이그레이션합니다.
func Open(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	dsn := cfg.Path
	if !cfg.InMemory() {
		if err := validation.EnsureDir(filepath.Dir(cfg.Path)); err != nil {
			return nil, apperrors.Wrap(err, apperrors.System, "데이터베이스 디렉터리를 준비할 수 없습니다")
		}
		dsn += filePragmas
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
		Logger: logger.New(applog.StandardLogger(), logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.System, "데이터베이스를 열 수 없습니다 (path=%s)", cfg.Path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "데이터베이스 연결 풀을 가져올 수 없습니다")
	}

	// 메모리 DB는 연결마다 별개의 데이터베이스이므로 하나의 연결만 유지해야 합니다.
	maxOpenConns := cfg.MaxOpenConns
	if cfg.InMemory() || maxOpenConns < 1 {
		maxOpenConns = 1
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(0)

	s := &Store{db: db, path: cfg.Path}

	if err := db.WithContext(ctx).AutoMigrate(&farmRecord{}); err != nil {
		_ = s.Close()
		return nil, apperrors.Wrap(err, apperrors.System, "데이터베이스 스키마를 마이그레이션할 수 없습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"path":           cfg.Path,
		"max_open_conns": maxOpenConns,
	}).Info("데이터베이스 연결 완료")

	return s, nil
}

// Repository Store를 사용하는 farm.Repository를 반환합니다.
func (s *Store) Repository() farm.Repository {
	return &repository{db: s.db}
}

// Ping 데이터베이스 연결 상태를 확인합니다.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Backup 현재 데이터베이스의 일관된 스냅샷을 dest 파일로 저장합니다.
// dest가 이미 존재하면 실패합니다.
func (s *Store) Backup(ctx context.Context, dest string) error {
	if err := validation.EnsureDir(filepath.Dir(dest)); err != nil {
		return apperrors.Wrap(err, apperrors.System, "백업 디렉터리를 준비할 수 없습니다")
	}
	if _, err := os.Stat(dest); err == nil {
		return apperrors.Newf(apperrors.Conflict, "백업 파일이 이미 존재합니다 (path=%s)", dest)
	}

	if err := s.db.WithContext(ctx).Exec("VACUUM INTO ?", dest).Error; err != nil {
		return apperrors.Wrapf(err, apperrors.System, "데이터베이스 백업에 실패했습니다 (dest=%s)", dest)
	}

	return nil
}

// Close 데이터베이스 연결을 닫습니다.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
