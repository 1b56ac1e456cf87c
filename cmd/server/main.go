package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	assistantapp "github.com/dwikikusuma/dohsarpay/internal/assistant/app"
	"github.com/dwikikusuma/dohsarpay/internal/assistant/infra/gemini"
	authapp "github.com/dwikikusuma/dohsarpay/internal/auth/app"
	cartadapter "github.com/dwikikusuma/dohsarpay/internal/cart/infra/adapter"
	cartapp "github.com/dwikikusuma/dohsarpay/internal/cart/app"
	cartmemory "github.com/dwikikusuma/dohsarpay/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/dohsarpay/internal/catalog/app"
	catalogmemory "github.com/dwikikusuma/dohsarpay/internal/catalog/infra/memory"
	checkoutadapter "github.com/dwikikusuma/dohsarpay/internal/checkout/infra/adapter"
	checkoutapp "github.com/dwikikusuma/dohsarpay/internal/checkout/app"
	"github.com/dwikikusuma/dohsarpay/internal/httpapi"
	orderapp "github.com/dwikikusuma/dohsarpay/internal/order/app"
	ordermemory "github.com/dwikikusuma/dohsarpay/internal/order/infra/memory"
	"github.com/dwikikusuma/dohsarpay/pkg/config"
	"github.com/dwikikusuma/dohsarpay/pkg/logger"
	"github.com/dwikikusuma/dohsarpay/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "dohsarpay",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	catalogSvc := catalogapp.NewService(catalogmemory.NewBookRepo())
	cartSvc := cartapp.NewService(cartmemory.NewCartRepo(), cartadapter.NewCatalogServiceReader(catalogSvc))
	orderSvc := orderapp.NewService(ordermemory.NewOrderRepo())
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		8,
	)
	authSvc := authapp.NewService()

	var completer assistantapp.Completer
	if cfg.ChatConfigured() {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error("gemini client init failed, chat disabled", slog.Any("err", err))
		} else {
			completer = client
			log.Info("chat assistant enabled", slog.String("model", cfg.GeminiModel))
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, chat endpoints will report unconfigured")
	}
	assistantSvc := assistantapp.NewService(completer)

	h := httpapi.NewHandler(log, catalogSvc, cartSvc, orderSvc, checkoutSvc, authSvc, assistantSvc, catalogmemory.Categories)
	e := httpapi.New(h)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Chat replies stream for a while; keep the write window generous.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
