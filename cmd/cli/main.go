package main

import (
	"context"
	"log"
	"os"

	"github.com/stitchdesk/stitchdesk/internal/buildinfo"
	"github.com/stitchdesk/stitchdesk/internal/client/cli"
	"github.com/stitchdesk/stitchdesk/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
