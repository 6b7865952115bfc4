package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"channel-crawler-go/internal/config"
	"channel-crawler-go/internal/crawler"
	"channel-crawler-go/internal/logger"
	"channel-crawler-go/internal/platform"
	_ "channel-crawler-go/internal/platform/youtube"
	"channel-crawler-go/internal/store"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [channel]\n\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "channel is a channel URL or @handle; when omitted, channels come from\nthe YT_CHANNEL_LIST config value.\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", ".", "path to config file")
	outputPath := flag.String("output", "", "write the JSON array to this file instead of stdout")
	limit := flag.Int("limit", 0, "stop after collecting this many videos per channel (0 = all)")
	flag.Usage = usage
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.InitFromConfig()

	if err := store.Init(context.Background()); err != nil {
		logger.Error("store init failed", "err", err, "backend", config.AppConfig.StoreBackend)
		os.Exit(1)
	}

	r, err := platform.New(config.AppConfig.Platform)
	if err != nil {
		logger.Error("crawler init failed", "err", err)
		os.Exit(1)
	}

	req := crawler.RequestFromConfig(config.AppConfig)
	if flag.NArg() > 0 {
		req.Channels = flag.Args()
	}
	if *outputPath != "" {
		req.OutputPath = *outputPath
	}
	if *limit > 0 {
		req.MaxVideos = *limit
	}

	logger.Info("starting crawler", "platform", config.AppConfig.Platform, "channels", len(req.Channels))

	res, err := r.Run(context.Background(), req)
	if err != nil {
		kind := crawler.KindOf(err)
		logger.Error("crawler failed", "err", err, "error_kind", kind, "platform", res.Platform, "processed", res.Processed, "succeeded", res.Succeeded, "failed", res.Failed, "failure_kinds", res.FailureKinds)
		if crawler.IsNetwork(kind) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	logger.Info("crawler finished", "platform", res.Platform, "processed", res.Processed, "succeeded", res.Succeeded, "failed", res.Failed, "videos", res.Videos, "failure_kinds", res.FailureKinds)
}
