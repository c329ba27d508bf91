package httpclient

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const redacted = "REDACTED"

// secretParams are query parameters never written to logs.
var secretParams = []string{"key", "signature", "client"}

type LoggingRoundTripper struct {
	Proxied http.RoundTripper
	Logger  *zap.Logger
}

func (lrt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := RedactURL(req.URL)

	res, err := lrt.Proxied.RoundTrip(req)
	if err != nil {
		lrt.Logger.Error("Outbound request failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return res, err
	}

	lrt.Logger.Debug("Outbound request completed",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.Int("status_code", res.StatusCode),
		zap.Int64("content_length", res.ContentLength),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// RedactURL renders u with credential parameters masked.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, redacted)
			changed = true
		}
	}
	if !changed {
		return u.String()
	}

	cp := *u
	cp.RawQuery = q.Encode()
	return cp.String()
}

// RedactRawURL is RedactURL for an unparsed URL; unparsable input is dropped entirely.
func RedactRawURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return redacted
	}
	return RedactURL(u)
}

// RedactError masks credentials in the URL that net/http embeds in *url.Error.
// When err wraps a *url.Error, the redacted *url.Error itself is returned;
// other errors are returned unchanged.
func RedactError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	cp := *urlErr
	cp.URL = RedactRawURL(urlErr.URL)
	return &cp
}
