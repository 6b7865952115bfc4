package youtube

// VideoEntry is one video published on a channel. ViewCountText and
// PublishedTime are nil when the listing does not expose them, so they
// serialize as null.
type VideoEntry struct {
	VideoID       string  `json:"video_id"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	ViewCountText *string `json:"view_count_text"`
	PublishedTime *string `json:"published_time"`
}

func (v VideoEntry) CSVHeader() []string {
	return []string{"video_id", "title", "url", "view_count_text", "published_time"}
}

func (v VideoEntry) ToCSV() []string {
	return []string{v.VideoID, v.Title, v.URL, deref(v.ViewCountText), deref(v.PublishedTime)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
