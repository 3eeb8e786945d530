package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func wrapBasicAuth(handler http.Handler, conf configBasicAuth) http.Handler {
	if !conf.Enabled() {
		return handler
	}

	return &basicAuthMiddleware{
		handler:  handler,
		user:     []byte(conf.User),
		password: []byte(conf.Password),
	}
}
