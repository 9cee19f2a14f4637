package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// gooseLogger goose のログを zap に流す
type gooseLogger struct {
	sugar *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

func setupGoose(logger *zap.Logger) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{sugar: logger.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("gooseのダイアレクト設定に失敗: %w", err)
	}
	return nil
}

// MigrateUp 埋め込みマイグレーションを最新まで適用する
func MigrateUp(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	if err := setupGoose(logger); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("マイグレーションの適用に失敗: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("スキーマバージョンの取得に失敗: %w", err)
	}
	logger.Info("マイグレーション完了", zap.Int64("version", version))
	return nil
}

// MigrateDown 直近のマイグレーションを1つ戻す
func MigrateDown(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	if err := setupGoose(logger); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("マイグレーションのロールバックに失敗: %w", err)
	}
	return nil
}

// MigrationStatus 各マイグレーションの適用状況をログに出力する
func MigrationStatus(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	if err := setupGoose(logger); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("マイグレーション状況の取得に失敗: %w", err)
	}
	return nil
}
