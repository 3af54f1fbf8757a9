package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-demo/internal/app"
	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/nikolayk812/storefront-demo/internal/logger"
	"github.com/nikolayk812/storefront-demo/internal/session"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred flushes happen before os.Exit.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	option := config.NewOptions()
	if err := option.ParseFlags(os.Args[1:]); err != nil {
		log.Println(err)
		return 2
	}

	nLogger, err := logger.NewLogger(option.LogLevel())
	if err != nil {
		log.Println(err)
		return 1
	}
	defer nLogger.Sync()

	c, err := app.LoadCatalog(ctx, option, nLogger)
	if err != nil {
		nLogger.Error("cannot load catalog", zap.Error(err))
		return 1
	}

	id := uuid.New()
	sLogger := nLogger.With(zap.Stringer("session", id))

	s, err := session.New(id, c, option.RelatedLimit(), sLogger)
	if err != nil {
		nLogger.Error("cannot start session", zap.Error(err))
		return 1
	}

	sLogger.Info("session started")

	if err := app.NewDriver(s, os.Stdout, sLogger).Run(ctx, os.Stdin); err != nil {
		sLogger.Warn("session ended", zap.Error(err))
	}

	return 0
}
