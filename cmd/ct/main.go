package main

import (
	"fmt"
	"os"

	"challenge-tracker/internal/cli"
	"challenge-tracker/internal/config"
)

func main() {
	// Defaults, config file and CT_* variables; flags are applied per command
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(cfg, openSession)
	root := cli.NewRootCommand(app)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
