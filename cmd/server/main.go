// @title Lingua API
// @version 1.0
// @description Translation, speech synthesis, tasks and business cards.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingua/backend/internal/config"
	"lingua/backend/internal/db"
	"lingua/backend/internal/handler"
	apphttp "lingua/backend/internal/http"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/scheduler"
	"lingua/backend/internal/service"
	"lingua/backend/internal/service/ai"
	"lingua/backend/internal/service/speech"
	"lingua/backend/pkg/logger"
	"lingua/backend/pkg/network"
	"lingua/backend/pkg/snowflake"
)

const (
	upstreamTimeout = 60 * time.Second
	shutdownTimeout = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		logger.Error("server exited", "module", "main", "error", err)
		os.Exit(1)
	}
}

func run() error {
	dotEnvErr := config.LoadDotEnv()
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))
	if dotEnvErr != nil {
		logger.Warn("dotenv ignored", "module", "main", "action", "load", "resource", "dotenv", "result", "failed", "error", dotEnvErr)
	}

	if err := snowflake.Init(0); err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	clients := network.NewClientFactory(cfg.ProxyURL)
	httpClient := clients.NewHTTPClient(upstreamTimeout)

	translator := newTranslator(cfg.AI, httpClient)
	synthesizer := newSynthesizer(cfg.Speech, httpClient)

	audioStore, err := service.NewAudioStore(cfg.AudioDir)
	if err != nil {
		return err
	}

	translationService := service.NewTranslationService(translator, synthesizer, audioStore, cfg.DefaultTargetLang,
		service.WithProxyCheck(clients, cfg.ProxyTestURL))
	taskService := service.NewTaskService(repository.NewTaskRepository(database))
	cardService := service.NewBusinessCardService(repository.NewBusinessCardRepository(database))

	e := apphttp.NewRouter(
		handler.NewTranslateHandler(translationService, audioStore),
		handler.NewTaskHandler(taskService),
		handler.NewBusinessCardHandler(cardService),
		cfg.StaticDir,
		cfg.EnableSwagger,
	)

	pruner := scheduler.New(audioStore, cfg.AudioPruneInterval, cfg.AudioRetention)
	pruner.Start()
	defer pruner.Stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "module", "main", "addr", cfg.Addr, "static_dir", cfg.StaticDir, "swagger", cfg.EnableSwagger)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-sigCh:
		logger.Info("shutting down", "module", "main", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(ctx)
}

// newTranslator never fails: a missing credential yields a translator that
// reports the service as unavailable.
func newTranslator(cfg config.AIConfig, client *http.Client) *ai.Translator {
	provider, err := ai.NewProvider(ai.Config{
		Provider:   cfg.Provider,
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		Endpoint:   cfg.Endpoint,
		HTTPClient: client,
	})
	if err != nil {
		logger.Warn("translation disabled", "module", "main", "provider", cfg.Provider, "error", err)
		return ai.NewTranslator(nil)
	}
	attrs := []any{"module", "main", "provider", provider.Name(), "model", cfg.Model}
	if host := network.ExtractHost(cfg.BaseURL); host != "" {
		attrs = append(attrs, "host", host)
	}
	logger.Info("translation enabled", attrs...)
	return ai.NewTranslator(provider)
}

func newSynthesizer(cfg config.SpeechConfig, client *http.Client) speech.Synthesizer {
	synth, err := speech.New(speech.Config{
		Strategy:   cfg.Strategy,
		Key:        cfg.Key,
		Region:     cfg.Region,
		Command:    cfg.Command,
		HTTPClient: client,
	})
	if err != nil {
		logger.Warn("speech disabled", "module", "main", "strategy", cfg.Strategy, "error", err)
		return speech.Disabled{}
	}
	if !synth.Available() {
		logger.Warn("speech unavailable", "module", "main", "strategy", synth.Name())
	}
	return speech.NewShared(synth)
}
