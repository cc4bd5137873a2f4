package main

import (
	"context"
	"log"

	"github.com/vrocha/admincli/internal/client/cli"
	"github.com/vrocha/admincli/internal/client/config"
	"github.com/vrocha/admincli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
