package main

import (
	"context"
	"net"
	"net/http"

	"github.com/marqueehq/marquee/pkg/catalogcache"
	"github.com/marqueehq/marquee/pkg/config"
	"github.com/marqueehq/marquee/pkg/database"
	"github.com/marqueehq/marquee/pkg/migrations"
	"github.com/marqueehq/marquee/pkg/server"
	"github.com/marqueehq/marquee/pkg/version"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/signals"
)

func main() {
	ctx := context.Background()
	log := logger.New()

	log.Info("starting marquee", logger.Data{"version": version.Version})

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Err(err).Fatal("database error")
	}

	group, err := migrations.BringUpToDate(ctx, db)
	if err != nil {
		log.Err(err).Fatal("migrations error")
	}
	if group.ID == 0 {
		log.Info("no new migrations to run")
	} else {
		log.Info("migrated to new group", logger.Data{"group_id": group.ID, "migration_names": group.Migrations.String()})
	}

	cache := catalogcache.New(db, cfg.CatalogCacheTTL)

	srv, err := server.New(cfg, db, cache)
	if err != nil {
		log.Err(err).Fatal("server error")
	}

	graceful := signals.Setup()

	go func() {
		lc := net.ListenConfig{}
		listener, err := lc.Listen(ctx, "tcp", srv.Addr)
		if err != nil {
			log.Err(err).Fatal("failed to bind port")
		}
		log.Info("server started", logger.Data{"addr": listener.Addr().String()})

		err = srv.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Fatal("server stopped")
		}
		log.Info("server stopped")
	}()

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		cache.RunJanitor(janitorCtx, cfg.CachePruneInterval)
	}()
	log.Info("cache janitor started", logger.Data{"interval": cfg.CachePruneInterval.String()})

	<-graceful
	log.Info("starting graceful shutdown")

	err = srv.Shutdown(ctx)
	if err != nil {
		log.Err(err).Error("server shutdown error")
	}
	log.Info("server shutdown")

	stopJanitor()
	<-janitorDone
	log.Info("cache janitor stopped")

	err = db.Close()
	if err != nil {
		log.Err(err).Error("database close error")
	}
	log.Info("database closed")
}
