package utils

import (
	"strings"
	"time"
)

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.3 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:135.0) Gecko/20100101 Firefox/135.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:135.0) Gecko/20100101 Firefox/135.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
}

func RandomUserAgent() string {
	return userAgents[time.Now().UnixNano()%int64(len(userAgents))]
}

// ExtractFilename derives a save filename from a URL: the last path
// segment with any query string stripped.
func ExtractFilename(rawURL string) string {
	trimmed := strings.SplitN(rawURL, "?", 2)[0]
	segments := strings.Split(trimmed, "/")
	name := segments[len(segments)-1]
	if name == "" {
		return "speedtest_file.dat"
	}
	return name
}

// NormalizeURL prepends a scheme to bare hostnames.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if !strings.HasPrefix(rawURL, "http") {
		return "http://" + rawURL
	}
	return rawURL
}
