package main

import (
	"context"
	"log"
	"os"

	"github.com/abitblue/filebin/internal/client/cli"
	"github.com/abitblue/filebin/internal/client/config"
	"github.com/abitblue/filebin/internal/flagx"
)

func main() {

	// "+file" expansion must happen before any flag parsing sees os.Args.
	args, err := flagx.ExpandArgsFile(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}
	os.Args = append(os.Args[:1], args...)

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	if err := app.Run(context.Background(), args); err != nil {
		log.Fatalf("%v", err)
	}
}
