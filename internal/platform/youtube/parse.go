package youtube

import (
	"channel-crawler-go/internal/crawler"
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://www.youtube.com"

// NormalizeChannelURL turns a channel URL or @handle into the absolute URL
// of its videos listing.
func NormalizeChannelURL(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", crawler.Error{Kind: crawler.ErrorKindInvalidInput, Platform: "youtube", Msg: "empty channel"}
	}
	if !strings.Contains(s, "://") {
		s = baseURL + "/" + strings.TrimLeft(s, "/")
	}
	s = strings.TrimRight(s, "/")
	if !strings.Contains(s, "/videos") {
		s += "/videos"
	}
	return s, nil
}

// channelKey derives a compact channel identifier from a normalized
// channel URL, e.g. "@handle" or "channel/UC...". Used as the storage key.
func channelKey(channelURL string) string {
	s := channelURL
	if i := strings.Index(s, "://"); i != -1 {
		s = s[i+3:]
	}
	if i := strings.IndexByte(s, '/'); i != -1 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(s, "/videos")
	s = strings.Trim(s, "/")
	if s == "" {
		return channelURL
	}
	return s
}

func watchURL(videoID string) string {
	return baseURL + "/watch?v=" + url.QueryEscape(videoID)
}

// extractGrid locates the initial item list of the videos tab inside the
// ytInitialData document. The tab structure is assumed stable; any missing
// step means an unsupported page layout, not a transient condition.
func extractGrid(initialData any, channelURL string) ([]any, error) {
	shapeErr := func(msg string) error {
		return crawler.Error{Kind: crawler.ErrorKindUnexpectedShape, Platform: "youtube", URL: channelURL, Msg: msg}
	}

	doc, ok := asMap(initialData)
	if !ok {
		return nil, shapeErr("initial data is not an object")
	}
	contents, ok := mapField(doc, "contents")
	if !ok {
		return nil, shapeErr("unexpected response structure while locating tabs")
	}
	browse, ok := mapField(contents, "twoColumnBrowseResultsRenderer")
	if !ok {
		return nil, shapeErr("unexpected response structure while locating tabs")
	}
	tabs, ok := asList(browse["tabs"])
	if !ok {
		return nil, shapeErr("unexpected response structure while locating tabs")
	}

	for _, tab := range tabs {
		tabMap, ok := asMap(tab)
		if !ok {
			continue
		}
		renderer, ok := mapField(tabMap, "tabRenderer")
		if !ok {
			continue
		}
		if selected, _ := renderer["selected"].(bool); !selected {
			continue
		}
		content, ok := mapField(renderer, "content")
		if !ok {
			continue
		}
		gridAny, ok := findValue(content, "richGridRenderer")
		if !ok {
			continue
		}
		grid, ok := asMap(gridAny)
		if !ok {
			continue
		}
		if items, ok := asList(grid["contents"]); ok {
			return items, nil
		}
	}
	return nil, shapeErr("could not find the grid renderer for the videos tab")
}

// extractVideosFromGrid classifies grid items into parsed video entries and
// continuation tokens, both in document order. Items of neither shape, and
// video renderers without an id, are skipped silently.
func extractVideosFromGrid(items []any) ([]VideoEntry, []string) {
	var videos []VideoEntry
	var tokens []string
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		if renderer, ok := mapField(m, "richItemRenderer"); ok {
			content, ok := mapField(renderer, "content")
			if !ok {
				continue
			}
			if video, ok := mapField(content, "videoRenderer"); ok {
				if entry, ok := parseVideoRenderer(video); ok {
					videos = append(videos, entry)
				}
			}
			continue
		}
		if renderer, ok := mapField(m, "continuationItemRenderer"); ok {
			if token, ok := continuationToken(renderer); ok {
				tokens = append(tokens, token)
			}
		}
	}
	return videos, tokens
}

func parseVideoRenderer(renderer map[string]any) (VideoEntry, bool) {
	videoID, ok := stringField(renderer, "videoId")
	if !ok || videoID == "" {
		return VideoEntry{}, false
	}
	title, _ := textFromRuns(renderer["title"])
	entry := VideoEntry{
		VideoID: videoID,
		Title:   title,
		URL:     watchURL(videoID),
	}
	if s, ok := extractText(renderer["viewCountText"]); ok {
		entry.ViewCountText = &s
	}
	if s, ok := extractText(renderer["publishedTimeText"]); ok {
		entry.PublishedTime = &s
	}
	return entry, true
}

// continuationToken tries the two known token locations in order: the
// endpoint command form used by rich grids, then the legacy reload form.
func continuationToken(renderer map[string]any) (string, bool) {
	if endpoint, ok := mapField(renderer, "continuationEndpoint"); ok {
		if command, ok := mapField(endpoint, "continuationCommand"); ok {
			if token, ok := stringField(command, "token"); ok && token != "" {
				return token, true
			}
		}
	}
	if data, ok := mapField(renderer, "reloadContinuationData"); ok {
		if token, ok := stringField(data, "continuation"); ok && token != "" {
			return token, true
		}
	}
	return "", false
}

// apiConfig derives the browse API credentials from the ytcfg document.
// Both fields are required; a missing or wrong-typed field fails the
// session.
func apiConfig(cfgDoc any) (string, map[string]any, error) {
	doc, ok := asMap(cfgDoc)
	if !ok {
		return "", nil, bootstrapError("ytcfg document is not an object")
	}
	apiKey, ok := stringField(doc, "INNERTUBE_API_KEY")
	if !ok || apiKey == "" {
		return "", nil, bootstrapError("failed to extract API key from ytcfg")
	}
	apiCtx, ok := mapField(doc, "INNERTUBE_CONTEXT")
	if !ok {
		return "", nil, bootstrapError("failed to extract API context from ytcfg")
	}
	return apiKey, apiCtx, nil
}

func bootstrapError(msg string) error {
	return crawler.Error{Kind: crawler.ErrorKindBootstrap, Platform: "youtube", Msg: msg}
}

func invalidInputError(input string, err error) error {
	return crawler.Error{
		Kind:     crawler.ErrorKindInvalidInput,
		Platform: "youtube",
		Msg:      fmt.Sprintf("invalid channel input: %s", input),
		Err:      err,
	}
}
