package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/lootkit/internal/app"
	"github.com/petuhovskiy/lootkit/internal/log"
	"github.com/petuhovskiy/lootkit/internal/server"
	"github.com/petuhovskiy/lootkit/internal/tables"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defer log.DefaultGlobals()()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base, err := app.NewAppFromEnv()
	if err != nil {
		log.Fatal(ctx, "failed to init app", zap.Error(err))
	}

	base.StartPrometheus()
	go base.Feed.Run(ctx)

	svc := tables.NewService(base)
	srv := &http.Server{
		Addr:    base.Config.HTTPBind,
		Handler: server.NewHandler(svc, base.Feed),
	}

	go func() {
		log.Info(ctx, "serving pick API", zap.String("bind", base.Config.HTTPBind))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(ctx, "http server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		log.Error(shutdownCtx, "http server shutdown error", zap.Error(err))
	}

	err = base.Register.WaitAll(shutdownCtx)
	if err != nil {
		log.Error(shutdownCtx, "some draws were not saved", zap.Error(err))
	}
}
