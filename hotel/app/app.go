package app

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/hotel-service/hotel/config"
	"github.com/Astemirdum/hotel-service/hotel/internal/handler"
	"github.com/Astemirdum/hotel-service/hotel/internal/repository"
	"github.com/Astemirdum/hotel-service/hotel/internal/server"
	"github.com/Astemirdum/hotel-service/hotel/internal/service"
	"github.com/Astemirdum/hotel-service/hotel/migrations"
	"github.com/Astemirdum/hotel-service/pkg/logger"
	"github.com/Astemirdum/hotel-service/pkg/postgres"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "hotel")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}
	svc := service.NewService(repo, log)
	h := handler.New(svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server run", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
