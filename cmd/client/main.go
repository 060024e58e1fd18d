package main

import (
	"context"
	"log"

	"github.com/jaehyuk-choi/portfolio-auth/internal/client/cli"
	"github.com/jaehyuk-choi/portfolio-auth/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("error initializing app: %s", err)
	}

	app.Run(ctx)
}
