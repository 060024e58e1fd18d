package main

import (
	"context"
	"log"

	"github.com/jaehyuk-choi/portfolio-auth/internal/server"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %s", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("error initializing app: %s", err)
	}

	app.Run(context.Background())
}
