package utils

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

type ClientConfig struct {
	Timeout   time.Duration // zero leaves the request unbounded
	KATimeout time.Duration
	ProxyURL  string
}

// NewClient builds an HTTP client for measured transfers. Compression is
// disabled so the byte count reflects raw bytes as delivered; redirects
// and TLS verification use the client defaults.
func NewClient(cfg ClientConfig) *http.Client {
	if cfg.KATimeout == 0 {
		cfg.KATimeout = 90 * time.Second
	}
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     cfg.KATimeout,
		DisableCompression:  true,
	}
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			log.Error().Err(err).Str("proxy", cfg.ProxyURL).Msg("Invalid proxy URL, proceeding without proxy")
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
			log.Debug().Str("proxy", cfg.ProxyURL).Msg("Using proxy for connections")
		}
	}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}
}
