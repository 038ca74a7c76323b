package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"

	"github.com/feedterm/feedterm/internal/config"
	"github.com/feedterm/feedterm/internal/feed"
	"github.com/feedterm/feedterm/internal/tui"
)

const (
	appName    = "feedterm"
	appVersion = "0.1.0"
)

type options struct {
	FPS     int    `long:"fps" default:"60" description:"Render clock rate, 0 for uncapped"`
	ShowFPS bool   `long:"show-fps" description:"Show the measured frame rate in the footer"`
	Feeds   string `long:"feeds" value-name:"PATH" description:"Feeds file (overrides FEEDTERM_FEEDS)"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	// Diagnostics must never reach the raw-mode screen. FEEDTERM_LOG
	// routes them to a file; otherwise they are dropped.
	if path := os.Getenv("FEEDTERM_LOG"); path != "" {
		f, err := tea.LogToFile(path, appName)
		if err != nil {
			log.Fatalf("log file error: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := config.Load(opts.Feeds)
	sources := cfg.ReadSourceList()

	store := feed.NewStore()
	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := feed.NewFetcher(store, client, appName+"/"+appVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fetcher.Fetch(ctx, sources)

	model := tui.New(tui.Options{
		AppName:    appName,
		Version:    appVersion,
		FeedsPath:  cfg.FeedsPath,
		NumSources: len(sources),
		FPS:        opts.FPS,
		ShowFPS:    opts.ShowFPS,
	}, store, fetcher)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
