package main

import (
	"context"
	"log"

	"github.com/chandra/dmacli/internal/client/cli"
	"github.com/chandra/dmacli/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("console init: %v", err)
	}

	app.Run(context.Background())
}
