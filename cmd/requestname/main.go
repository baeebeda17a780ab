package main

import (
	"context"
	"log"
	"os"

	"github.com/abitblue/filebin/internal/server"
	"github.com/abitblue/filebin/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := server.NewApp(cfg)

	if err := app.Run(ctx, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
