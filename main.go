package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/dskvich/kintone-icon-generator/pkg/api"
	"github.com/dskvich/kintone-icon-generator/pkg/domain"
	"github.com/dskvich/kintone-icon-generator/pkg/generator"
	"github.com/dskvich/kintone-icon-generator/pkg/llm"
	"github.com/dskvich/kintone-icon-generator/pkg/llm/gateway"
	"github.com/dskvich/kintone-icon-generator/pkg/logger"
	"github.com/dskvich/kintone-icon-generator/pkg/services"
	"github.com/samber/lo"
)

type Config struct {
	LovableAPIKey   string        `env:"LOVABLE_API_KEY"`
	GatewayURL      string        `env:"AI_GATEWAY_URL" envDefault:"https://ai.gateway.lovable.dev/v1/chat/completions"`
	ImageModel      string        `env:"IMAGE_MODEL" envDefault:"google/gemini-2.5-flash-image-preview"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"60s"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogNoColor      bool          `env:"LOG_NO_COLOR" envDefault:"false"`
}

func main() {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		slog.Error("parsing env config", logger.Err(err))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, &logger.Options{
		Level:   logger.ParseLevel(cfg.LogLevel),
		NoColor: cfg.LogNoColor,
	})))

	if err := runMain(cfg); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain(cfg Config) error {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	svcGroup, err := setupServices(cfg)
	if err != nil {
		return err
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return svcGroup.Start(ctx)
}

func setupServices(cfg Config) (services.Group, error) {
	var svcGroup services.Group

	handler, err := newHandler(cfg)
	if err != nil {
		return nil, err
	}

	httpServer, err := services.NewHTTPServer(cfg.HTTPAddr, handler,
		services.WithShutdownTimeout(cfg.ShutdownTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http server: %w", err)
	}
	svcGroup = append(svcGroup, httpServer)

	return svcGroup, nil
}

func newHandler(cfg Config) (http.Handler, error) {
	if !lo.Contains(domain.SupportedImageModels, cfg.ImageModel) {
		return nil, fmt.Errorf("unsupported image model %q, supported: %v", cfg.ImageModel, domain.SupportedImageModels)
	}

	// A missing key must not stop the process: every request reports it
	// until the deployment is fixed.
	if cfg.LovableAPIKey == "" {
		slog.Warn("LOVABLE_API_KEY is not configured, icon generation requests will fail")
	}

	gatewayClient := gateway.NewClient(cfg.LovableAPIKey, gateway.WithURL(cfg.GatewayURL))

	providers := make(map[string]llm.ImageGenerator, len(domain.SupportedImageModels))
	for _, model := range domain.SupportedImageModels {
		providers[model] = gatewayClient
	}
	imageClient := llm.NewMultiProviderImageClient(providers)

	iconGenerator, err := generator.New(imageClient, cfg.ImageModel, generator.WithCallTimeout(cfg.UpstreamTimeout))
	if err != nil {
		return nil, fmt.Errorf("creating icon generator: %w", err)
	}

	return api.NewHandler(iconGenerator), nil
}
