package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/bookstore/internal/cli"
	"github.com/dmitrijs2005/bookstore/internal/config"
	"github.com/dmitrijs2005/bookstore/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
