package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marvel/catalog/internal/config"
	"marvel/catalog/internal/container"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] comics|characters|overview\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configPath := flag.StringP("config", "c", "", "path to config file (default ./config.yaml)")
	page := flag.IntP("page", "p", 0, "zero-based page index")
	next := flag.Bool("next", false, "show the comics page after the last one shown")
	name := flag.StringP("name", "n", "", "character name prefix")
	save := flag.Bool("save", false, "archive fetched items to the database")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.Log.Level, err)
	}
	log.SetLevel(level)

	if *save {
		cfg.Database.Enabled = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := container.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	if err := run(ctx, app, flag.Arg(0), *page, *next, *name); err != nil {
		log.Error(err)
		app.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, app *container.Container, command string, page int, next bool, name string) error {
	switch command {
	case "comics":
		if next {
			comics, err := app.Service.NextComicsPage(ctx)
			if err != nil {
				return err
			}
			return renderComics(os.Stdout, comics)
		}

		comics, err := app.Service.ComicsPage(ctx, page)
		if err != nil {
			return err
		}
		return renderComics(os.Stdout, comics)

	case "characters":
		if name == "" {
			return fmt.Errorf("characters requires --name")
		}

		characters, err := app.Service.SearchCharacters(ctx, name, page)
		if err != nil {
			return err
		}
		return renderCharacters(os.Stdout, characters)

	case "overview":
		if name == "" {
			return fmt.Errorf("overview requires --name")
		}

		overview, err := app.Service.Overview(ctx, name, page)
		if err != nil {
			return err
		}
		if err := renderComics(os.Stdout, overview.Comics); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)
		return renderCharacters(os.Stdout, overview.Characters)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
