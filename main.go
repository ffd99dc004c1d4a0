package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/priyankar997/ejWireless/api"
	"github.com/priyankar997/ejWireless/internal/config"
	"github.com/priyankar997/ejWireless/internal/pos"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	inventory := pos.NewInventoryLedger(&pos.FileInventoryStore{Path: cfg.InventoryFile}, logger)
	sales := pos.NewSalesLedger(&pos.FileSalesStore{Path: cfg.SalesFile}, logger)
	service := pos.NewService(inventory, sales, logger)

	r := gin.Default()
	api.InitRoutes(r, service, logger)

	logger.Info("starting",
		zap.String("addr", cfg.ListenAddr),
		zap.String("sales_file", cfg.SalesFile),
		zap.String("inventory_file", cfg.InventoryFile),
	)
	if err := r.Run(cfg.ListenAddr); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
