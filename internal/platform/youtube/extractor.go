package youtube

import (
	"bytes"
	"encoding/json"
	"strings"

	"channel-crawler-go/internal/markup"
)

// Markers that precede the bootstrap JSON documents embedded in the channel
// page. The initial-data assignment has taken several equivalent forms over
// time; they are tried in this priority order.
var initialDataMarkers = []string{
	"var ytInitialData = ",
	"window['ytInitialData'] = ",
	`window["ytInitialData"] = `,
	"ytInitialData = ",
}

var configMarkers = []string{"ytcfg.set("}

// extractJSONFromScripts scans every script element in document order and
// returns the first JSON document found after any of the markers, markers
// in priority order. A script whose payload fails to parse is skipped
// silently and the search continues.
func extractJSONFromScripts(root *markup.Node, markers []string) (any, bool) {
	for _, script := range root.FindAll("script") {
		content := script.Text(false)
		if content == "" {
			continue
		}
		for _, marker := range markers {
			if parsed, ok := extractJSONAfterMarker(content, marker); ok {
				return parsed, true
			}
		}
	}
	return nil, false
}

// extractJSONAfterMarker recovers the JSON value assigned after marker. The
// payload sits inside executable script text, so the end of the value is
// found by a balanced-delimiter scan rather than by line structure: from
// the first '{' or '[' after the marker, one combined depth counter tracks
// both brace and bracket nesting, skipping string literals so braces inside
// them do not count, until depth returns to zero.
func extractJSONAfterMarker(text, marker string) (any, bool) {
	idx := strings.Index(text, marker)
	if idx == -1 {
		return nil, false
	}
	rest := text[idx+len(marker):]
	start := strings.IndexAny(rest, "{[")
	if start == -1 {
		return nil, false
	}
	raw, ok := balancedSpan(rest[start:])
	if !ok {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, false
	}
	return out, true
}

// balancedSpan returns the prefix of s spanning one balanced JSON value.
// s must start at an opening delimiter.
func balancedSpan(s string) (string, bool) {
	depth := 0
	inString := false
	escape := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			if escape {
				escape = false
				continue
			}
			switch ch {
			case '\\':
				escape = true
			case '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
