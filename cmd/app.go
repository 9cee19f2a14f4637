package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"CityNotes-App/internal/config"
	"CityNotes-App/internal/domain/repository"
	"CityNotes-App/internal/infrastructure/database"
	"CityNotes-App/internal/infrastructure/logger"
	repoimpl "CityNotes-App/internal/repository"
)

// app 各サブコマンドで共有する設定とロガー
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

// bootstrap 設定を読み込みロガーを初期化する
func bootstrap(envFile string) (*app, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("ロガーの初期化に失敗: %w", err)
	}
	return &app{cfg: cfg, logger: log}, nil
}

// openDB 接続プールを作成する（起動直後のDB待ちのためリトライ付き）
func (a *app) openDB(ctx context.Context) (*database.PostgreSQLClient, error) {
	a.logger.Info("PostgreSQLに接続中")
	client, err := database.NewPostgreSQLClientWithRetry(ctx, a.cfg.Database, a.logger)
	if err != nil {
		return nil, err
	}
	a.logger.Info("PostgreSQL接続成功")
	return client, nil
}

// repositories PostgreSQL 実装のリポジトリを組み立てる
func repositories(client *database.PostgreSQLClient) (repository.CitiesRepository, repository.NotesRepository) {
	return repoimpl.NewPostgresCitiesRepository(client), repoimpl.NewPostgresNotesRepository(client)
}

func (a *app) close() {
	_ = a.logger.Sync()
}
