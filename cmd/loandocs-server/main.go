package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-loandocs/components/intake"
	"github.com/goliatone/go-loandocs/pkg/docgen"
	"github.com/goliatone/go-loandocs/pkg/esign"
	"github.com/goliatone/go-loandocs/pkg/formspec"
	"github.com/goliatone/go-loandocs/pkg/prefill"
	"github.com/goliatone/go-loandocs/pkg/store"
	"github.com/goliatone/go-loandocs/pkg/templates"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg Config, logger *zap.Logger) error {
	recordStore := newRecordStore(cfg, logger)
	service := prefill.New(prefill.WithStore(recordStore))
	catalog := templates.NewCatalog()

	spec, err := formspec.Load()
	if err != nil {
		return fmt.Errorf("load form schemas: %w", err)
	}

	secret := cfg.ESign.Secret
	if secret == "" {
		secret = "loandocs-dev-secret"
		logger.Warn("esign.secret not configured, using development secret")
	}
	tokens, err := esign.NewTokenIssuer([]byte(secret), cfg.ESign.Issuer,
		parseDuration(cfg.ESign.Expiry, esign.DefaultExpiry))
	if err != nil {
		return err
	}

	composer, err := docgen.NewComposer()
	if err != nil {
		return err
	}

	component := intake.New(
		intake.WithService(service),
		intake.WithCatalog(catalog),
		intake.WithFormSpec(spec),
	)

	state := &serverState{
		logger:  logger,
		catalog: catalog,
		signing: esign.NewService(catalog,
			esign.WithExpiry(parseDuration(cfg.ESign.Expiry, esign.DefaultExpiry))),
		tokens:   tokens,
		composer: composer,
	}

	server := NewServer(cfg, state, component)

	errs := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case sig := <-stop:
		logger.Info("received signal", zap.String("signal", sig.String()))
		return server.Stop()
	}
}

func newRecordStore(cfg Config, logger *zap.Logger) store.RecordStore {
	if cfg.Redis.Addr == "" {
		logger.Info("using in-memory session store")
		return store.NewMemory()
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	logger.Info("using redis session store",
		zap.String("addr", cfg.Redis.Addr),
		zap.String("namespace", cfg.Redis.Namespace))
	return store.NewRedis(client, cfg.Redis.Namespace,
		parseDuration(cfg.Redis.TTL, store.DefaultTTL))
}

func newLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(parsed)
	}
	return config.Build()
}
