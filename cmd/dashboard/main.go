package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/skillet-labs/chessdash/internal/app/dashboard"
	"github.com/skillet-labs/chessdash/pkg/logging"
)

func main() {
	cfg, err := dashboard.LoadConfig()
	if err != nil {
		logging.Fatal("couldn't load config", zap.Error(err))
	}
	if err := dashboard.NewApp(cfg).Run(context.Background()); err != nil {
		logging.Fatal("dashboard run failed", zap.Error(err))
	}
}
