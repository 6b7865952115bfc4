package youtube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"channel-crawler-go/internal/cache"
	"channel-crawler-go/internal/config"
	"channel-crawler-go/internal/crawler"
	"channel-crawler-go/internal/logger"
	"channel-crawler-go/internal/markup"
	"channel-crawler-go/internal/store"
)

// browseClient is what the pagination engine needs from the transport.
type browseClient interface {
	FetchHTML(ctx context.Context, url string) (string, error)
	Browse(ctx context.Context, apiKey string, apiCtx map[string]any, token string) (map[string]any, error)
}

type Crawler struct {
	client browseClient
	sleep  time.Duration
}

func NewCrawler() *Crawler {
	client := NewClient()
	if pc := cache.NewFromConfig(config.AppConfig); pc != nil {
		ttl := time.Duration(config.AppConfig.CacheDefaultTTLSec) * time.Second
		client.SetCache(pc, ttl)
	}
	return &Crawler{
		client: client,
		sleep:  time.Duration(config.AppConfig.CrawlerMaxSleepSec) * time.Second,
	}
}

func NewCrawlerWithClient(client browseClient) *Crawler {
	if client == nil {
		return NewCrawler()
	}
	return &Crawler{client: client}
}

func (c *Crawler) Run(ctx context.Context, req crawler.Request) (crawler.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req.Platform = "youtube"
	channels := req.Channels
	if len(channels) == 0 {
		return crawler.Result{Platform: req.Platform}, crawler.Error{
			Kind:     crawler.ErrorKindInvalidInput,
			Platform: req.Platform,
			Msg:      "empty channel list (YT_CHANNEL_LIST)",
		}
	}

	out := crawler.NewResult(req)
	limit := req.Concurrency
	if limit <= 0 {
		limit = 1
	}

	var mu sync.Mutex
	var all []VideoEntry
	var firstErr error

	itemRes := crawler.ForEachLimit(ctx, channels, limit, func(ctx context.Context, input string) error {
		channelURL, err := NormalizeChannelURL(input)
		if err != nil {
			logger.Warn("skip invalid channel input", "value", input, "err", err)
			return invalidInputError(input, err)
		}
		logger.Info("channel scrape start", "channel", channelURL, "max_videos", req.MaxVideos)
		videos, err := c.ScrapeChannel(ctx, channelURL, req.MaxVideos)
		if err != nil {
			logger.Error("channel scrape failed", "channel", channelURL, "err", err)
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return err
		}

		key := channelKey(channelURL)
		for _, v := range videos {
			if err := store.SaveVideo(key, v.VideoID, v); err != nil {
				logger.Error("save video failed", "channel", key, "video_id", v.VideoID, "err", err)
				return err
			}
		}

		mu.Lock()
		all = append(all, videos...)
		mu.Unlock()
		logger.Info("channel scrape done", "channel", channelURL, "videos", len(videos))
		return nil
	})

	out.Processed = itemRes.Processed
	out.Succeeded = itemRes.Succeeded
	out.Failed = itemRes.Failed
	out.FailureKinds = crawler.MergeFailureKinds(out.FailureKinds, itemRes.FailureKinds)
	out.Videos = len(all)
	out.FinishedAt = time.Now().Unix()

	if itemRes.Succeeded == 0 && firstErr != nil {
		return out, firstErr
	}
	if err := writeOutput(req.OutputPath, all); err != nil {
		return out, err
	}
	return out, nil
}

// ScrapeChannel harvests every video listed on the channel's videos tab, in
// listing order, at most one entry per video id. A positive limit caps the
// result and abandons any queued continuations once reached.
func (c *Crawler) ScrapeChannel(ctx context.Context, channelURL string, limit int) ([]VideoEntry, error) {
	html, err := c.client.FetchHTML(ctx, channelURL)
	if err != nil {
		return nil, err
	}

	root := markup.Build(html)
	initialData, ok := extractJSONFromScripts(root, initialDataMarkers)
	if !ok {
		msg := "could not locate ytInitialData in the page"
		if hint := crawler.DetectRiskHint(html); hint != "" {
			msg = fmt.Sprintf("%s (risk hint: %s)", msg, hint)
		}
		return nil, crawler.Error{Kind: crawler.ErrorKindBootstrap, Platform: "youtube", URL: channelURL, Msg: msg}
	}
	cfgDoc, ok := extractJSONFromScripts(root, configMarkers)
	if !ok {
		return nil, crawler.Error{Kind: crawler.ErrorKindBootstrap, Platform: "youtube", URL: channelURL, Msg: "could not locate ytcfg bootstrap data"}
	}
	apiKey, apiCtx, err := apiConfig(cfgDoc)
	if err != nil {
		return nil, err
	}

	items, err := extractGrid(initialData, channelURL)
	if err != nil {
		return nil, err
	}

	videos, tokens := extractVideosFromGrid(items)

	var collected []VideoEntry
	seen := make(map[string]struct{}, len(videos))
	for _, entry := range videos {
		if _, dup := seen[entry.VideoID]; dup {
			continue
		}
		seen[entry.VideoID] = struct{}{}
		collected = append(collected, entry)
		if limit > 0 && len(collected) >= limit {
			return collected, nil
		}
	}

	// Tokens form a FIFO queue: pages are fetched in the order their
	// tokens were discovered, each token exactly once.
	queue := tokens
	for len(queue) > 0 {
		token := queue[0]
		queue = queue[1:]

		if !crawler.Sleep(ctx, c.sleep) {
			return collected, ctx.Err()
		}
		resp, err := c.client.Browse(ctx, apiKey, apiCtx, token)
		if err != nil {
			return nil, err
		}

		itemsAny, ok := findValue(resp, "continuationItems")
		if !ok {
			// An exhausted page simply contributes nothing;
			// whatever is still queued gets processed.
			logger.Debug("continuation page without items", "channel", channelURL)
			continue
		}
		pageItems, ok := asList(itemsAny)
		if !ok {
			continue
		}

		pageVideos, pageTokens := extractVideosFromGrid(pageItems)
		limitReached := false
		for _, entry := range pageVideos {
			if _, dup := seen[entry.VideoID]; dup {
				continue
			}
			seen[entry.VideoID] = struct{}{}
			collected = append(collected, entry)
			if limit > 0 && len(collected) >= limit {
				limitReached = true
				break
			}
		}
		if limitReached {
			return collected, nil
		}
		queue = append(queue, pageTokens...)
	}

	return collected, nil
}
