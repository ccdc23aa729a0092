package main

import (
	"context"
	"log"

	"github.com/avasquez/taskkeeper/internal/server"
	"github.com/avasquez/taskkeeper/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		// most likely a missing SECRET_KEY; never start without one
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
