package crawler

import "strings"

// DetectRiskHint inspects a fetched page body for signs that the upstream
// served a challenge instead of content. Purely advisory; hints only enrich
// error messages and logs.
func DetectRiskHint(body string) string {
	s := strings.TrimSpace(body)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "captcha") || strings.Contains(lower, "recaptcha") {
		return "captcha"
	}
	if strings.Contains(lower, "unusual traffic") {
		return "rate_check"
	}
	if strings.Contains(lower, "consent.youtube.com") || strings.Contains(lower, "before you continue") {
		return "consent"
	}
	if strings.Contains(lower, "forbidden") || strings.Contains(lower, "access denied") {
		return "forbidden"
	}
	return ""
}
