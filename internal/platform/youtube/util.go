package youtube

// Helpers for walking the loosely shaped documents the browse API returns.
// Everything is decoded as map[string]any / []any; renderer payloads move
// between nesting levels across API versions, so lookups search rather than
// assume a fixed path.

// findValue returns the first value stored anywhere under key. A hit at the
// current mapping level wins before any descent; below that, the search
// recurses into mapping values and sequence elements, first non-absent
// result wins. Sibling visit order at deeper levels is unspecified, which
// the response format itself does not guarantee either.
func findValue(node any, key string) (any, bool) {
	switch v := node.(type) {
	case map[string]any:
		if val, ok := v[key]; ok {
			return val, true
		}
		for _, child := range v {
			if found, ok := findValue(child, key); ok {
				return found, true
			}
		}
	case []any:
		for _, child := range v {
			if found, ok := findValue(child, key); ok {
				return found, true
			}
		}
	}
	return nil, false
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

func mapField(m map[string]any, key string) (map[string]any, bool) {
	return asMap(m[key])
}

func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// extractText reads a display string from a text node, preferring the plain
// simpleText form and falling back to concatenated formatted runs.
func extractText(node any) (string, bool) {
	switch v := node.(type) {
	case string:
		return v, true
	case map[string]any:
		if s, ok := stringField(v, "simpleText"); ok {
			return s, true
		}
		if runs, ok := v["runs"]; ok {
			return runsText(runs), true
		}
	}
	return "", false
}

// textFromRuns reads a display string preferring the formatted-runs form,
// as title fields carry their text in runs even when a simpleText sibling
// exists.
func textFromRuns(node any) (string, bool) {
	m, ok := asMap(node)
	if !ok {
		return "", false
	}
	if runs, ok := m["runs"]; ok {
		return runsText(runs), true
	}
	if s, ok := stringField(m, "simpleText"); ok {
		return s, true
	}
	return "", false
}

// runsText concatenates the literal text of each run in order. Runs that
// are not mappings or lack a string text field contribute nothing.
func runsText(runs any) string {
	list, ok := asList(runs)
	if !ok {
		return ""
	}
	var out string
	for _, item := range list {
		if m, ok := asMap(item); ok {
			if text, ok := stringField(m, "text"); ok {
				out += text
			}
		}
	}
	return out
}
