package main

import (
	"context"
	"flag"
	"fmt"
	"imageFetcher/pkg/config"
	"imageFetcher/pkg/fetcher"
	"os"
	"os/signal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	flag.BoolVar(&cfg.Verbose,
		"verbose", cfg.Verbose,
		"verbose output trace log")
	flag.BoolVar(&cfg.Progress,
		"progress", cfg.Progress,
		"show a progress bar while each image is fetched")
	flag.StringVar(&cfg.UserAgent,
		"user-agent", cfg.UserAgent,
		"User-Agent header sent with every request")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [url ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	fetcher.SetDefaultLog(os.Stderr, cfg.LogLevel())

	fmt.Println("Welcome to the Ubuntu Image Fetcher")
	fmt.Println("A tool for mindfully collecting images from the web")
	fmt.Println()

	URLs := flag.Args()
	if len(URLs) == 0 {
		fmt.Println("Paste one image link at a time and press Enter.")
		fmt.Println("When you are done, just press Enter on an empty line.")
		fmt.Println()
		URLs = fetcher.CollectURLs(os.Stdin, os.Stdout)
	}

	fetcher.PrintURLs(os.Stdout, URLs)
	if len(URLs) == 0 {
		return
	}
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f := fetcher.New(fetcher.NewClient(cfg.UserAgent), os.Stdout)
	if cfg.Progress {
		f.EnableProgress(os.Stderr)
	}
	f.Run(ctx, URLs)
}
