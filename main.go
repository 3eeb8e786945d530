package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/9seconds/geolocator/databases"
	"github.com/9seconds/geolocator/geolib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

const (
	httpReadTimeout  = 10 * time.Second
	httpWriteTimeout = 30 * time.Second
	httpIdleTimeout  = time.Minute
)

var version = "dev"

var (
	app = kingpin.New(
		"geolocator",
		"IP geolocation service backed by local MaxMind databases")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEOLOCATOR_DEBUG").
		Bool()
	configPath = app.Arg("config-path", "Path to the config. Defaults are used if omitted.").
			String()
)

func main() {
	app.Version(version)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	serverLog := newServerLogger(os.Stderr)
	fs := afero.NewOsFs()

	conf, err := parseConfig(fs, *configPath)
	if err != nil {
		serverLog.Fatal().Err(err).Msg("Cannot parse config")
	}

	serverLog.Debug().
		Str("listen", conf.GetListen()).
		Str("city_database", conf.GetCityDatabase()).
		Str("asn_database", conf.GetASNDatabase()).
		Uint("cache_size", conf.GetCacheSize()).
		Dur("cache_ttl", conf.GetCacheTTL()).
		Int("worker_pool_size", conf.GetWorkerPoolSize()).
		Msg("Config is parsed")

	logger := newLogger(os.Stderr)

	handle, err := databases.Open(fs, conf.GetCityDatabase(), conf.GetASNDatabase(), logger)
	if err != nil {
		serverLog.Fatal().Err(err).Msg("Cannot open databases")
	}

	defer handle.Close() // nolint: errcheck

	resolver, err := geolib.NewResolver(handle, geolib.ResolverOpts{
		Logger:         logger,
		Metrics:        geolib.NewMetrics(prometheus.DefaultRegisterer),
		WorkerPoolSize: conf.GetWorkerPoolSize(),
		CacheSize:      conf.GetCacheSize(),
		CacheTTL:       conf.GetCacheTTL(),
	})
	if err != nil {
		serverLog.Fatal().Err(err).Msg("Cannot create a resolver")
	}

	handler := geolib.NewHTTPHandler(resolver, geolib.HTTPHandlerOpts{
		StaticDirectory: conf.GetStaticDirectory(),
		MetricsHandler:  promhttp.Handler(),
	})

	listener, err := net.Listen("tcp", conf.GetListen())
	if err != nil {
		serverLog.Fatal().Err(err).Msg("Cannot start listener")
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	srv := &http.Server{
		Handler:      wrapBasicAuth(handler, conf.BasicAuth),
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}

	shutdownDone := make(chan struct{})

	go func() {
		defer close(shutdownDone)

		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
			conf.GetShutdownTimeout())
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			serverLog.Error().Err(err).Msg("Cannot shutdown http server gracefully")
		}

		resolver.Shutdown()
	}()

	serverLog.Info().Str("listen", listener.Addr().String()).Str("version", version).Msg("Server is started")

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		serverLog.Error().Err(err).Msg("Server is stopped with error")
	}

	cancel()
	<-shutdownDone

	serverLog.Info().Msg("Server is stopped")
}
