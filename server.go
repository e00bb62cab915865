package main

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2ip-api/twoip/api"
	"github.com/2ip-api/twoip/twoiplib"
)

const serverShutdownTimeout = 5 * time.Second

func runServe(ctx context.Context, client *twoiplib.Client, listen, auth string) error {
	var handler http.Handler = api.MakeServer(client)

	if auth != "" {
		authHandler, err := newBasicAuthMiddleware(handler, auth)
		if err != nil {
			return err
		}

		handler = authHandler
	}

	srv := &http.Server{
		Addr:    listen,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	log.Infof("Serving on %s", listen)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
