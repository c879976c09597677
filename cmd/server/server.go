package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardanlabs/conf/v3"
	"github.com/digistorehq/digistore/api"
	"github.com/digistorehq/digistore/config"
	"github.com/digistorehq/digistore/core/shop"
	"github.com/digistorehq/digistore/database"
	"github.com/digistorehq/digistore/store"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := Run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func Run(logger *logrus.Logger) error {
	logger.Infof("starting server")
	defer logger.Info("shutdown complete")

	const prefix = "DIGISTORE"
	var cfg config.Config
	if help, err := conf.Parse(prefix, &cfg); err != nil {
		if err == conf.ErrHelpWanted {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	lw := logger.Writer()
	defer lw.Close()
	errLog := log.New(lw, "", 0)

	kv, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	sh := shop.New(context.Background(), logger, kv)

	mux := api.APIMux(api.APIConfig{
		CorsOrigin:     cfg.Cors.Origin,
		Log:            logger,
		Shop:           sh,
		CouponBurst:    cfg.Rate.CouponBurst,
		CouponInterval: cfg.Rate.CouponInterval,
		CouponExpiry:   cfg.Rate.CouponExpiry,
	})

	api := http.Server{
		Handler:      mux,
		Addr:         cfg.Web.Address,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     errLog,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Infof("starting api router at %s", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("shutting down: signal %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}

func openStore(cfg config.Config, logger *logrus.Logger) (store.KV, error) {
	switch cfg.Store.Backend {
	case "memory":
		logger.Infof("using the in-memory store, quota %d bytes", cfg.Store.Quota)
		return store.NewMemory(cfg.Store.Quota), nil

	case "postgres":
		db, err := database.Open(database.Config{
			User:       cfg.DB.User,
			Password:   cfg.DB.Password,
			Host:       cfg.DB.Host,
			Name:       cfg.DB.Name,
			DisableTLS: cfg.DB.DisableTLS,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open db connection: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate db: %w", err)
		}
		return store.NewPostgres(db), nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
