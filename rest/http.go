package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/rpaste-cli/rpaste/pasteerr"
	"github.com/rpaste-cli/rpaste/printer"
)

// Error type for non-2xx HTTP responses.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (he HTTPError) Error() string {
	return fmt.Sprintf("%s (status code: %d)", strings.TrimSpace(string(he.Body)), he.StatusCode)
}

// Implements retryablehttp LeveledLogger interface using printer.
type printerLogger struct{}

func (printerLogger) Error(f string, args ...interface{}) {
	printer.V(1).Debugln(f, args)
}

func (printerLogger) Info(f string, args ...interface{}) {
	printer.V(2).Debugln(f, args)
}

func (printerLogger) Debug(f string, args ...interface{}) {
	// Use verbose logging so users don't see every request by default when
	// they enable --debug.
	printer.V(4).Debugln(f, args)
}

func (printerLogger) Warn(f string, args ...interface{}) {
	printer.V(1).Debugln(f, args)
}

// Never retries; a failed attempt is reported to the caller as is.
func noRetryPolicy(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}

func newHTTPClient(hc *http.Client) *retryablehttp.Client {
	c := retryablehttp.NewClient()

	if hc == nil {
		hc = &http.Client{
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				MaxIdleConns:    3,
				IdleConnTimeout: 60 * time.Second,
			},
		}
	}
	c.HTTPClient = hc

	c.RetryMax = 0
	c.CheckRetry = noRetryPolicy
	c.Logger = printerLogger{}
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return c
}

// Sends req and reads the whole response. Non-2xx responses are returned as
// HTTPError along with their status code.
func (u *Uploader) send(req *retryablehttp.Request) (int, []byte, error) {
	req.Header.Set("User-Agent", u.userAgent)

	printer.Debugf("%s %s\n", req.Method, req.URL)
	resp, err := u.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, pasteerr.Wrap(pasteerr.IO, errors.Wrap(err, "failed to read response body"))
	}
	printer.Debugf("%s %s: %d, %d bytes\n", req.Method, req.URL, resp.StatusCode, len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, body, HTTPError{StatusCode: resp.StatusCode, Body: body}
	}
	return resp.StatusCode, body, nil
}

func setOptionalHeader(req *retryablehttp.Request, key, value string) {
	if value != "" {
		req.Header.Set(key, value)
	}
}
