package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"DrawShape/internal/config"
	"DrawShape/internal/editor"
	"DrawShape/internal/logging"
	"DrawShape/internal/ui"
)

const appID = "io.github.drawshape"

func main() {
	configPath := flag.String("config", "", "settings file (default: user config dir)/drawshape/config.toml")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file] [drawing.xml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logging.ParseLevel(cfg.LogLevel)})
	logging.SetLogger(slog.New(handler))
	logging.Logger().Info("starting", "tool", cfg.Tool)

	a := app.NewWithID(appID)
	ui.RunApp(a, editor.New(cfg), flag.Arg(0))
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logging.Logger().Warn("no user config dir", "err", err)
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}
