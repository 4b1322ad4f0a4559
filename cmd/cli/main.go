package main

import (
	"context"
	"log"
	"os"

	"github.com/prepshare/prepshare/internal/buildinfo"
	"github.com/prepshare/prepshare/internal/client/cli"
	"github.com/prepshare/prepshare/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
