package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"CityNotes-App/internal/application"
	"CityNotes-App/internal/domain/repository"
	"CityNotes-App/internal/handler"
	"CityNotes-App/internal/infrastructure/database"
	repoimpl "CityNotes-App/internal/repository"
	"CityNotes-App/internal/seed"
)

func serveCmd(envFile *string) *cobra.Command {
	var (
		migrate  bool
		inMemory bool
		withSeed bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, serveOptions{migrate: migrate, inMemory: inMemory, seed: withSeed})
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before serving")
	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "Use a process-local store instead of PostgreSQL (local development)")
	cmd.Flags().BoolVar(&withSeed, "seed", false, "Insert the reference cities when the catalog is empty")
	return cmd
}

type serveOptions struct {
	migrate  bool
	inMemory bool
	seed     bool
}

func (a *app) serve(ctx context.Context, opts serveOptions) error {
	var (
		citiesRepo repository.CitiesRepository
		notesRepo  repository.NotesRepository
		health     handler.HealthChecker
	)

	if opts.inMemory {
		a.logger.Warn("インメモリストアで起動します（再起動でデータは失われます）")
		store := repoimpl.NewInMemoryStore()
		citiesRepo, notesRepo = store.Cities(), store.Notes()
	} else {
		client, err := a.openDB(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				a.logger.Error("PostgreSQL切断エラー", zap.Error(err))
			}
		}()

		if opts.migrate {
			if err := database.MigrateUp(ctx, client.DB, a.logger); err != nil {
				return err
			}
		}
		citiesRepo, notesRepo = repositories(client)
		health = client
	}

	if opts.seed {
		if _, err := seed.NewSeeder(citiesRepo, notesRepo, a.logger).Run(ctx); err != nil {
			return err
		}
	}

	gin.SetMode(a.cfg.Server.GinMode)
	router := handler.NewRouter(handler.RouterDeps{
		CitiesService: application.NewCitiesService(citiesRepo, notesRepo),
		NotesService:  application.NewNotesService(citiesRepo, notesRepo),
		Health:        health,
		Logger:        a.logger,
	})

	srv := &http.Server{
		Addr:    a.cfg.Server.Addr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("サーバー起動", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("サーバーの起動に失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("シャットダウン開始", zap.Duration("timeout", a.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}
	a.logger.Info("サーバー停止")
	return nil
}
