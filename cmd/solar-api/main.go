package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/gfssolutions/solar-api/internal/api"
	"github.com/gfssolutions/solar-api/internal/pkg/config"
	"github.com/gfssolutions/solar-api/internal/pkg/constants"
	"github.com/gfssolutions/solar-api/internal/pkg/logger"
	"github.com/gfssolutions/solar-api/internal/pkg/mailer"
	"github.com/gfssolutions/solar-api/internal/pkg/store"
	"github.com/gfssolutions/solar-api/internal/pkg/store/xpgx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	config.Init()

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperKeyDatabaseURL))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	// The pool connects lazily; wait for the database before serving.
	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 10),
			ctx,
		),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	var m mailer.Mailer
	if key := viper.GetString(constants.ViperKeyResendAPIKey); key != "" {
		m = mailer.NewResend(key)
	} else {
		logger.Warnf(ctx, "RESEND_API_KEY is not set, lead submissions will be rejected")
	}

	svc, err := api.NewAPIService(store.NewStore(pool), m)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return svc.Serve(viper.GetString(constants.ViperKeyHTTPAddr))
	})
	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return svc.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}
