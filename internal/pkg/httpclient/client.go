package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Config - outbound transport settings. ProxyURL is passed through to the transport as is;
// when empty the usual HTTP(S)_PROXY environment variables apply.
type Config struct {
	Timeout  time.Duration
	ProxyURL string
}

// New builds the HTTP client the geocode delegate sends its requests through.
func New(cfg Config, logger *zap.Logger) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		if proxy.Scheme == "" || proxy.Host == "" {
			return nil, fmt.Errorf("invalid proxy url %q: scheme and host are required", cfg.ProxyURL)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	var rt http.RoundTripper = transport
	if logger != nil {
		rt = LoggingRoundTripper{Proxied: transport, Logger: logger}
	}

	return &http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}, nil
}
