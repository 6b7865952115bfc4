package youtube

import (
	"channel-crawler-go/internal/crawler"
	"channel-crawler-go/internal/platform"
)

func init() {
	platform.Register("youtube", []string{"yt"}, func() crawler.Runner { return NewCrawler() })
}
