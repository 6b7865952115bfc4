package youtube

import (
	"context"
	"encoding/json"
	"testing"

	"channel-crawler-go/internal/crawler"
)

type fakeBrowse struct {
	html    string
	htmlErr error
	pages   map[string]map[string]any

	fetched []string
	browsed []string
}

func (f *fakeBrowse) FetchHTML(ctx context.Context, url string) (string, error) {
	f.fetched = append(f.fetched, url)
	return f.html, f.htmlErr
}

func (f *fakeBrowse) Browse(ctx context.Context, apiKey string, apiCtx map[string]any, token string) (map[string]any, error) {
	f.browsed = append(f.browsed, token)
	page, ok := f.pages[token]
	if !ok {
		return map[string]any{}, nil
	}
	return page, nil
}

func channelPage(t *testing.T, initialData any) string {
	t.Helper()
	b, err := json.Marshal(initialData)
	if err != nil {
		t.Fatalf("marshal initial data: %v", err)
	}
	return `<html><head>
		<script>ytcfg.set({"INNERTUBE_API_KEY":"k","INNERTUBE_CONTEXT":{"client":{"clientName":"WEB"}}});</script>
		<script>var ytInitialData = ` + string(b) + `;</script>
	</head><body></body></html>`
}

func browsePage(items ...any) map[string]any {
	return map[string]any{
		"onResponseReceivedActions": []any{
			map[string]any{
				"appendContinuationItemsAction": map[string]any{
					"continuationItems": items,
				},
			},
		},
	}
}

func videoIDs(videos []VideoEntry) []string {
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.VideoID)
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScrapeChannelFollowsContinuations(t *testing.T) {
	fake := &fakeBrowse{
		html: channelPage(t, gridDoc(videoItem("v1", "one"), videoItem("v2", "two"), continuationItem("tok-1"))),
		pages: map[string]map[string]any{
			"tok-1": browsePage(videoItem("v3", "three"), continuationItem("tok-2")),
			"tok-2": browsePage(videoItem("v4", "four")),
		},
	}
	c := NewCrawlerWithClient(fake)

	videos, err := c.ScrapeChannel(context.Background(), "https://www.youtube.com/@x/videos", 0)
	if err != nil {
		t.Fatalf("ScrapeChannel err: %v", err)
	}
	if got := videoIDs(videos); !equalIDs(got, []string{"v1", "v2", "v3", "v4"}) {
		t.Fatalf("video ids = %v", got)
	}
	if !equalIDs(fake.browsed, []string{"tok-1", "tok-2"}) {
		t.Fatalf("browse order = %v", fake.browsed)
	}
}

func TestScrapeChannelFIFOTokenOrder(t *testing.T) {
	// Two tokens discovered on the initial page; the page fetched for the
	// first token yields a third token, which must run after the second.
	fake := &fakeBrowse{
		html: channelPage(t, gridDoc(videoItem("v1", "one"), continuationItem("tok-a"), continuationItem("tok-b"))),
		pages: map[string]map[string]any{
			"tok-a": browsePage(videoItem("v2", "two"), continuationItem("tok-c")),
			"tok-b": browsePage(videoItem("v3", "three")),
			"tok-c": browsePage(videoItem("v4", "four")),
		},
	}
	c := NewCrawlerWithClient(fake)

	videos, err := c.ScrapeChannel(context.Background(), "https://www.youtube.com/@x/videos", 0)
	if err != nil {
		t.Fatalf("ScrapeChannel err: %v", err)
	}
	if !equalIDs(fake.browsed, []string{"tok-a", "tok-b", "tok-c"}) {
		t.Fatalf("browse order = %v, want FIFO", fake.browsed)
	}
	if got := videoIDs(videos); !equalIDs(got, []string{"v1", "v2", "v3", "v4"}) {
		t.Fatalf("video ids = %v", got)
	}
}

func TestScrapeChannelDedupKeepsFirstOccurrence(t *testing.T) {
	fake := &fakeBrowse{
		html: channelPage(t, gridDoc(videoItem("v1", "first seen"), videoItem("v1", "dup on same page"), continuationItem("tok-1"))),
		pages: map[string]map[string]any{
			"tok-1": browsePage(videoItem("v1", "dup on later page"), videoItem("v2", "new")),
		},
	}
	c := NewCrawlerWithClient(fake)

	videos, err := c.ScrapeChannel(context.Background(), "https://www.youtube.com/@x/videos", 0)
	if err != nil {
		t.Fatalf("ScrapeChannel err: %v", err)
	}
	if got := videoIDs(videos); !equalIDs(got, []string{"v1", "v2"}) {
		t.Fatalf("video ids = %v", got)
	}
	if videos[0].Title != "first seen" {
		t.Fatalf("dedup must keep the first occurrence, got %q", videos[0].Title)
	}
}

func TestScrapeChannelLimitStopsFetching(t *testing.T) {
	fake := &fakeBrowse{
		html: channelPage(t, gridDoc(videoItem("v1", "one"), videoItem("v2", "two"), continuationItem("tok-1"))),
		pages: map[string]map[string]any{
			"tok-1": browsePage(videoItem("v3", "three"), continuationItem("tok-2")),
			"tok-2": browsePage(videoItem("v4", "four")),
		},
	}
	c := NewCrawlerWithClient(fake)

	videos, err := c.ScrapeChannel(context.Background(), "https://www.youtube.com/@x/videos", 3)
	if err != nil {
		t.Fatalf("ScrapeChannel err: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("videos = %d, want 3", len(videos))
	}
	// tok-1 filled the cap; tok-2 must never be fetched.
	if !equalIDs(fake.browsed, []string{"tok-1"}) {
		t.Fatalf("browsed = %v, want [tok-1]", fake.browsed)
	}
}

func TestScrapeChannelLimitOnInitialPage(t *testing.T) {
	fake := &fakeBrowse{
		html: channelPage(t, gridDoc(videoItem("v1", "one"), videoItem("v2", "two"), continuationItem("tok-1"))),
	}
	c := NewCrawlerWithClient(fake)

	videos, err := c.ScrapeChannel(context.Background(), "https://www.youtube.com/@x/videos", 1)
	if err != nil {
		t.Fatalf("ScrapeChannel err: %v", err)
	}
	if len(videos) != 1 || videos[0].VideoID != "v1" {
		t.Fatalf("videos = %+v", videos)
	}
	if len(fake.browsed) != 0 {
		t.Fatalf("no continuation should be fetched, got %v", fake.browsed)
	}
}

func TestScrapeChannelToleratesEmptyPage(t *testing.T) {
	// tok-1 answers without continuationItems; tok-2 must still run.
	fake := &fakeBrowse{
		html: channelPage(t, gridDoc(videoItem("v1", "one"), continuationItem("tok-1"), continuationItem("tok-2"))),
		pages: map[string]map[string]any{
			"tok-2": browsePage(videoItem("v2", "two")),
		},
	}
	c := NewCrawlerWithClient(fake)

	videos, err := c.ScrapeChannel(context.Background(), "https://www.youtube.com/@x/videos", 0)
	if err != nil {
		t.Fatalf("ScrapeChannel err: %v", err)
	}
	if got := videoIDs(videos); !equalIDs(got, []string{"v1", "v2"}) {
		t.Fatalf("video ids = %v", got)
	}
	if !equalIDs(fake.browsed, []string{"tok-1", "tok-2"}) {
		t.Fatalf("browsed = %v", fake.browsed)
	}
}

func TestScrapeChannelMissingInitialData(t *testing.T) {
	fake := &fakeBrowse{html: `<html><script>console.log("nothing")</script></html>`}
	c := NewCrawlerWithClient(fake)

	_, err := c.ScrapeChannel(context.Background(), "https://www.youtube.com/@x/videos", 0)
	if err == nil {
		t.Fatalf("expected bootstrap error")
	}
	if kind := crawler.KindOf(err); kind != crawler.ErrorKindBootstrap {
		t.Fatalf("kind = %v, want %v", kind, crawler.ErrorKindBootstrap)
	}
}

func TestScrapeChannelMissingConfig(t *testing.T) {
	fake := &fakeBrowse{html: `<html><script>var ytInitialData = {"contents":{}};</script></html>`}
	c := NewCrawlerWithClient(fake)

	_, err := c.ScrapeChannel(context.Background(), "https://www.youtube.com/@x/videos", 0)
	if err == nil {
		t.Fatalf("expected bootstrap error")
	}
	if kind := crawler.KindOf(err); kind != crawler.ErrorKindBootstrap {
		t.Fatalf("kind = %v, want %v", kind, crawler.ErrorKindBootstrap)
	}
}

func TestRunEmptyChannelList(t *testing.T) {
	c := NewCrawlerWithClient(&fakeBrowse{})
	_, err := c.Run(context.Background(), crawler.Request{})
	if err == nil {
		t.Fatalf("expected error for empty channel list")
	}
	if kind := crawler.KindOf(err); kind != crawler.ErrorKindInvalidInput {
		t.Fatalf("kind = %v, want %v", kind, crawler.ErrorKindInvalidInput)
	}
}
