package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pwagen/config"
	"pwagen/icons"
	"pwagen/watcher"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pwagen [-config file] [-watch] <source_image> <project_name> [center]")
	fmt.Fprintln(os.Stderr, "  center: 'true' (default) centers the source on a padded square canvas,")
	fmt.Fprintln(os.Stderr, "          'false' crops the source to fill each icon instead.")
	os.Exit(2)
}

// parseBool accepts exactly the literals "true" and "false"
func parseBool(value, flagName string) bool {
	switch value {
	case "true":
		return true
	case "false":
		return false
	default:
		fmt.Fprintf(os.Stderr, "Error: '%s' must be 'true' or 'false', got '%s'\n", flagName, value)
		os.Exit(2)
		return false
	}
}

// regenerator adapts a generator run to the watcher's Regenerate interface
type regenerator struct {
	gen     *icons.Generator
	source  string
	project string
	center  bool
}

func (r *regenerator) Regenerate() error {
	return r.gen.Generate(r.source, r.project, r.center)
}

func main() {
	fmt.Println("pwagen - PWA Icon & Manifest Generator")
	fmt.Println("======================================")

	configPath := flag.String("config", "", "path to a yaml config file (default: built-in defaults)")
	watch := flag.Bool("watch", false, "keep running and regenerate when the source image changes")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		usage()
	}

	sourcePath, project := args[0], args[1]
	center := true
	if len(args) == 3 {
		center = parseBool(args[2], "center")
	}

	// A .env file may supply PWAGEN_CONFIG; absence is fine
	_ = godotenv.Load()
	if *configPath == "" {
		*configPath = os.Getenv("PWAGEN_CONFIG")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	gen := icons.NewGenerator(cfg)
	if err := gen.Generate(sourcePath, project, center); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if !*watch {
		return
	}

	// Watch mode: regenerate on every source change until interrupted
	w, err := watcher.NewWatcher(sourcePath, &regenerator{
		gen:     gen,
		source:  sourcePath,
		project: project,
		center:  center,
	})
	if err != nil {
		log.Fatalf("Failed to create watcher: %v", err)
	}

	if err := w.Start(); err != nil {
		log.Fatalf("Failed to start watcher: %v", err)
	}

	log.Println("Watching for changes. Press Ctrl+C to stop")

	go func() {
		for event := range w.Events() {
			log.Printf("Event: %v - %s", event.Type, event.FilePath)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	w.Stop()
}
