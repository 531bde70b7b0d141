package rest

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/rpaste-cli/rpaste/pasteerr"
)

// classifyUpload turns the outcome of an upload request into the identifier
// returned by the server or an error. err is the error returned by send, if
// any; status and body describe the response otherwise.
func classifyUpload(status int, body []byte, err error) (string, error) {
	if err != nil {
		var he HTTPError
		if !errors.As(err, &he) {
			return "", transportError(err)
		}
		return "", pasteerr.Errorf(pasteerr.Upload, "%s (status code: %d)", strings.TrimSpace(string(he.Body)), he.StatusCode)
	}

	text := string(body)
	// The identifier is a single line; anything else, e.g. an HTML error page
	// served with 200, is rejected.
	if countLines(text) != 1 {
		return "", pasteerr.Errorf(pasteerr.Upload, "server returned invalid body (status code: %d)", status)
	}
	if status != http.StatusOK {
		return "", pasteerr.Errorf(pasteerr.Upload, "unknown error (status code: %d)", status)
	}
	return strings.TrimRightFunc(text, unicode.IsSpace), nil
}

// classifyDelete turns the outcome of a delete request into the server's
// confirmation text or an error.
func classifyDelete(body []byte, err error) (string, error) {
	if err != nil {
		var he HTTPError
		if !errors.As(err, &he) {
			return "", transportError(err)
		}
		msg := strings.TrimSpace(string(he.Body))
		if he.StatusCode == http.StatusNotFound {
			return "", pasteerr.New(pasteerr.Delete, msg)
		}
		return "", pasteerr.Errorf(pasteerr.Delete, "%s (status code: %d)", msg, he.StatusCode)
	}
	return strings.TrimSpace(string(body)), nil
}

// Errors that already carry a kind, e.g. a local read failure surfacing
// through the HTTP client, keep it. Everything else is a transport failure.
func transportError(err error) error {
	var pe *pasteerr.Error
	if errors.As(err, &pe) {
		return pe
	}
	return pasteerr.Wrap(pasteerr.Transport, err)
}

// Counts lines the way a line iterator would: a trailing newline does not
// start a new line. A lone blank line counts as no line at all.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	if n == 1 && strings.TrimSpace(s) == "" {
		return 0
	}
	return n
}
