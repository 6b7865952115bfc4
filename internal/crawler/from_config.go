package crawler

import (
	"channel-crawler-go/internal/config"
	"strings"
)

func RequestFromConfig(cfg config.Config) Request {
	return Request{
		Platform:    strings.TrimSpace(cfg.Platform),
		Channels:    splitCSV(cfg.ChannelList),
		MaxVideos:   cfg.CrawlerMaxVideosCount,
		Concurrency: cfg.MaxConcurrencyNum,
		OutputPath:  strings.TrimSpace(cfg.OutputPath),
	}
}

func splitCSV(s string) []string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
