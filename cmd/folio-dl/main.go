package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/foliofetch/folio-downloader/internal/config"
	"github.com/foliofetch/folio-downloader/internal/download"
)

func main() {
	// Command line flags
	var (
		outputFlag  = flag.String("output", "", "Output directory (overrides config)")
		configFlag  = flag.String("config", "", "Path to config file")
		rangeFlag   = flag.String("range", "", "Page range to download (e.g. 1-10)")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("folio-dl - Download manuscript page images")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  folio-dl [options] <manuscript-id | IIIF manifest URL>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  folio-dl -range 1-10 add_ms_19352")
		fmt.Println("  folio-dl https://iiif.example.org/ark:/12345/manifest.json")
		fmt.Println()
		fmt.Println("For interactive mode, use: folio-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.OutputDir = *outputFlag
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "✗ "
		case download.LevelWarning:
			prefix = "! "
		case download.LevelSuccess:
			prefix = "✓ "
		case download.LevelInfo:
			prefix = "· "
		default:
			prefix = "  "
		}

		fmt.Println(prefix + event.Message)
	})

	if err := manager.Run(ctx, input, *rangeFlag); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stats := manager.Progress()
	if stats.Failed > 0 {
		fmt.Printf("\nFinished with %d failed pages (rerun to retry them).\n", stats.Failed)
	}
}
