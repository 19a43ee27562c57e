package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeusync/vectorlib/internal/config"
	"github.com/zeusync/vectorlib/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML or JSON config file")
	verbose := flag.Bool("verbose", false, "log vectors as they are created and dropped")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}

	app, err := injector.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	// Sync on a terminal stderr can fail with EINVAL; nothing is lost then.
	defer func() { _ = app.Close() }()

	if err = app.Run(os.Stdout); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}
