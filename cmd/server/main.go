package main

import (
	"context"
	"net/http"

	"boutique-app/internal/auth"
	"boutique-app/internal/cart"
	"boutique-app/internal/config"
	"boutique-app/internal/httpapi"
	"boutique-app/internal/logger"
	"boutique-app/internal/order"
	"boutique-app/internal/product"
	"boutique-app/internal/session"
	"boutique-app/internal/storage"
	"boutique-app/internal/wizard"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	kv := storage.NewKV(cfg.DataDir)
	remote := storage.NewRemoteBackend(cfg.APIBaseURL, nil)
	local := storage.NewLocalBackend(kv)
	gateway := storage.NewFallbackBackend(remote, local)

	catalog := product.NewStore(gateway)
	if err := catalog.Refresh(context.Background()); err != nil {
		logger.L().Warn("initial catalog load failed", zap.Error(err))
	}

	orderRepo := order.NewRepository(kv)
	orderSvc := order.NewService(orderRepo, gateway, catalog)

	gate := auth.NewGate(cfg.AdminPassword, cfg.JWTSecret)
	sess := session.New(cart.New(), wizard.New(gateway, catalog))

	handler := httpapi.NewHandler(catalog, gateway, orderSvc, sess, gate)

	logger.L().Info("boutique server starting",
		zap.String("port", cfg.AppPort),
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.String("data_dir", cfg.DataDir),
	)

	if err := http.ListenAndServe(":"+cfg.AppPort, handler.Routes()); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
