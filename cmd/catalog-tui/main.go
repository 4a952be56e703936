package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/music-catalog/internal/config"
	"github.com/handiism/music-catalog/internal/tui"
)

func main() {
	configFlag := flag.String("config", os.Getenv("CATALOG_CONFIG"), "Path to config file")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if flag.NArg() > 0 {
		settings.MusicPath = flag.Arg(0)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
