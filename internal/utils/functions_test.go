package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFilename(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/files/100MB.bin", "100MB.bin"},
		{"https://speed.cloudflare.com/__down?bytes=100000000", "__down"},
		{"http://speedtest.tele2.net/100MB.zip", "100MB.zip"},
		{"https://example.com/files/", "speedtest_file.dat"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractFilename(tt.url), tt.url)
	}
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "http://example.com/f.bin", NormalizeURL("example.com/f.bin"))
	assert.Equal(t, "http://example.com", NormalizeURL("  example.com "))
	assert.Equal(t, "https://example.com", NormalizeURL("https://example.com"))
	assert.Equal(t, "http://example.com", NormalizeURL("http://example.com"))
}

func TestRandomUserAgent(t *testing.T) {
	agent := RandomUserAgent()
	assert.Contains(t, agent, "Mozilla/5.0")
}
