package main

import (
	"os"

	"trafficviz/internal/cli"
	"trafficviz/internal/platform/config"
)

func main() {
	_ = config.Load() // .env is optional

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
