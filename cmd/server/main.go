package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/climatechart/server/internal/server"
	"github.com/climatechart/server/internal/server/config"
)

func main() {

	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
