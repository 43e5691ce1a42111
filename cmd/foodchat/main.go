package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/foodchat/internal/buildinfo"
	"github.com/dmitrijs2005/foodchat/internal/config"
	"github.com/dmitrijs2005/foodchat/internal/dialogue"
	"github.com/dmitrijs2005/foodchat/internal/logging"
	"github.com/dmitrijs2005/foodchat/internal/orders"
	"github.com/dmitrijs2005/foodchat/internal/shell"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LoggingOptions(), os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	ctx := context.Background()

	manager := orders.NewSQLiteRepositoryManager(logger)
	db, err := orders.Open(ctx, cfg.OrdersDSN, manager)
	if err != nil {
		logger.Error(ctx, "orders store init failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	svc := orders.NewService(db, manager, logger, cfg.SeedDemoOrders)
	engine := dialogue.NewEngine(logger, nil)

	app := shell.NewApp(cfg, engine, svc, logger, os.Stdin, os.Stdout)
	app.Run(ctx)
}
