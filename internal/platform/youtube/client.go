package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"channel-crawler-go/internal/cache"
	"channel-crawler-go/internal/config"
	"channel-crawler-go/internal/crawler"

	"github.com/go-resty/resty/v2"
)

const browseURL = baseURL + "/youtubei/v1/browse"

// Client is the transport collaborator: it fetches channel pages and calls
// the internal browse endpoint. Retrying transient failures happens here,
// never in the pagination engine.
type Client struct {
	httpClient *resty.Client

	pageCache cache.Cache
	cacheTTL  time.Duration
}

func NewClient() *Client {
	retryCount := config.AppConfig.HttpRetryCount
	if retryCount <= 0 {
		retryCount = 3
	}
	baseDelay := time.Duration(config.AppConfig.HttpRetryBaseDelayMs) * time.Millisecond
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	maxDelay := time.Duration(config.AppConfig.HttpRetryMaxDelayMs) * time.Millisecond
	if maxDelay <= 0 {
		maxDelay = 4 * time.Second
	}
	timeout := time.Duration(config.AppConfig.HttpTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	ua := config.AppConfig.UserAgent
	if ua == "" {
		ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	lang := config.AppConfig.AcceptLanguage
	if lang == "" {
		lang = "en-US,en;q=0.9"
	}

	httpClient := resty.NewWithClient(&http.Client{Timeout: timeout})
	headers := map[string]string{
		"accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"accept-language": lang,
		"user-agent":      ua,
	}
	if ck := config.AppConfig.Cookies; ck != "" {
		headers["cookie"] = ck
	}
	httpClient.SetHeaders(headers)
	httpClient.SetRetryCount(retryCount)
	httpClient.SetRetryWaitTime(baseDelay)
	httpClient.SetRetryMaxWaitTime(maxDelay)
	httpClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil {
			return crawler.ShouldRetryError(err)
		}
		if r == nil {
			return true
		}
		return crawler.ShouldRetryStatus(r.StatusCode())
	})

	return &Client{httpClient: httpClient}
}

// SetCache enables page caching for FetchHTML.
func (c *Client) SetCache(pc cache.Cache, ttl time.Duration) {
	c.pageCache = pc
	c.cacheTTL = ttl
}

func (c *Client) FetchHTML(ctx context.Context, url string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cacheKey := "page:" + url
	if c.pageCache != nil {
		if v, ok, err := c.pageCache.Get(ctx, cacheKey); err == nil && ok {
			return string(v), nil
		}
	}

	r, err := c.httpClient.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", crawler.Error{Kind: crawler.ErrorKindTransport, Platform: "youtube", URL: url, Err: err}
	}
	if r.IsError() {
		return "", crawler.NewHTTPStatusError("youtube", url, r.StatusCode(), r.String())
	}
	body := r.String()

	if c.pageCache != nil {
		_ = c.pageCache.Set(ctx, cacheKey, []byte(body), c.cacheTTL)
	}
	return body, nil
}

// Browse requests one page of the channel listing. The API key travels as a
// query parameter and the context plus continuation token as the JSON body.
func (c *Client) Browse(ctx context.Context, apiKey string, apiCtx map[string]any, token string) (map[string]any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	body := map[string]any{
		"context":      apiCtx,
		"continuation": token,
	}
	r, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetQueryParam("key", apiKey).
		SetBody(body).
		Post(browseURL)
	if err != nil {
		return nil, crawler.Error{Kind: crawler.ErrorKindTransport, Platform: "youtube", URL: browseURL, Err: err}
	}
	if r.IsError() {
		return nil, crawler.NewHTTPStatusError("youtube", browseURL, r.StatusCode(), r.String())
	}

	dec := json.NewDecoder(bytes.NewReader(r.Body()))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, crawler.Error{Kind: crawler.ErrorKindUnexpectedShape, Platform: "youtube", URL: browseURL, Msg: "invalid browse response", Err: err}
	}
	return out, nil
}
