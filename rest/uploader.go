package rest

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/rpaste-cli/rpaste/cfg"
	"github.com/rpaste-cli/rpaste/pasteerr"
	"github.com/rpaste-cli/rpaste/progress"
)

const (
	// Descriptor of stream uploads in results.
	StreamInput = "stream"

	expireHeader   = "expire"
	filenameHeader = "filename"

	versionEndpoint = "version"
	listEndpoint    = "list"
)

// UploadResult pairs an input (file path, URL or "stream") with what the
// server made of it.
type UploadResult struct {
	Input string

	// Identifier returned by the server, e.g. the paste URL. Set only if Err
	// is nil.
	Value string

	Err error
}

// Uploader talks to a single rustypaste server. It holds one HTTP client,
// reused by every request, and never modifies its config.
type Uploader struct {
	client    *retryablehttp.Client
	config    *cfg.Config
	userAgent string
	progress  progress.Factory
}

type Option func(*Uploader)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(u *Uploader) {
		u.client = newHTTPClient(hc)
	}
}

// WithProgress sets how upload progress is displayed.
func WithProgress(f progress.Factory) Option {
	return func(u *Uploader) {
		u.progress = f
	}
}

func NewUploader(config *cfg.Config, opts ...Option) *Uploader {
	u := &Uploader{
		client:    newHTTPClient(nil),
		config:    config,
		userAgent: GetUserAgent(),
		progress:  progress.StderrFactory,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Uploader) UploadFile(ctx context.Context, path string) UploadResult {
	mp := NewMultipart()
	mp.AddFile(KindFor(SourceFile, u.config.Paste.Oneshot).FieldName(), path)
	return newResult(path)(u.upload(ctx, mp))
}

// UploadURL asks the server to shorten rawURL.
func (u *Uploader) UploadURL(ctx context.Context, rawURL string) UploadResult {
	return u.uploadURLValue(ctx, KindFor(SourceURL, u.config.Paste.Oneshot), rawURL)
}

// UploadRemoteURL asks the server to download rawURL and host the result.
func (u *Uploader) UploadRemoteURL(ctx context.Context, rawURL string) UploadResult {
	return u.uploadURLValue(ctx, KindFor(SourceRemote, u.config.Paste.Oneshot), rawURL)
}

func (u *Uploader) uploadURLValue(ctx context.Context, kind Kind, rawURL string) UploadResult {
	if err := validateURL(rawURL); err != nil {
		return UploadResult{Input: rawURL, Err: err}
	}
	mp := NewMultipart()
	mp.AddText(kind.FieldName(), []byte(rawURL))
	return newResult(rawURL)(u.upload(ctx, mp))
}

// UploadStream uploads everything read from r, e.g. standard input.
func (u *Uploader) UploadStream(ctx context.Context, r io.Reader) UploadResult {
	mp := NewMultipart()
	mp.AddStream(KindFor(SourceStream, u.config.Paste.Oneshot).FieldName(), r, DefaultStreamFilename)
	return newResult(StreamInput)(u.upload(ctx, mp))
}

func newResult(input string) func(string, error) UploadResult {
	return func(value string, err error) UploadResult {
		return UploadResult{Input: input, Value: value, Err: err}
	}
}

func (u *Uploader) upload(ctx context.Context, mp *Multipart) (string, error) {
	address := u.config.Server.Address
	if address == "" {
		return "", pasteerr.New(pasteerr.NoServerAddress, "")
	}
	if err := validateURL(address); err != nil {
		return "", err
	}

	body, err := mp.Prepare()
	if err != nil {
		return "", err
	}
	defer body.Close()

	indicator, err := u.progress("Uploading")
	if err != nil {
		return "", err
	}
	defer indicator.Finish()

	length, known := body.ContentLength()
	tracker := progress.NewReader(indicator, length, body)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, address,
		retryablehttp.ReaderFunc(func() (io.Reader, error) { return tracker, nil }))
	if err != nil {
		return "", pasteerr.Wrap(pasteerr.URLParse, err)
	}
	if known {
		req.ContentLength = length
	}
	req.Header.Set("Content-Type", body.ContentType())
	setOptionalHeader(req, "Authorization", u.config.Server.AuthToken)
	setOptionalHeader(req, expireHeader, u.config.Paste.Expire)
	setOptionalHeader(req, filenameHeader, u.config.Paste.Filename)

	status, respBody, err := u.send(req)
	return classifyUpload(status, respBody, err)
}

// DeleteFile deletes the file with the given name from the server.
func (u *Uploader) DeleteFile(ctx context.Context, name string) UploadResult {
	return newResult(name)(u.delete(ctx, name))
}

func (u *Uploader) delete(ctx context.Context, name string) (string, error) {
	req, err := u.newRequest(ctx, http.MethodDelete, name, u.config.Server.DeleteToken)
	if err != nil {
		return "", err
	}
	_, body, err := u.send(req)
	return classifyDelete(body, err)
}

// RetrieveVersion returns the server version.
func (u *Uploader) RetrieveVersion(ctx context.Context) (string, error) {
	body, err := u.get(ctx, versionEndpoint)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// RetrieveList writes the files on the server to w, either as returned by the
// server or, if prettify is set, as a table.
func (u *Uploader) RetrieveList(ctx context.Context, w io.Writer, prettify bool) error {
	body, err := u.get(ctx, listEndpoint)
	if err != nil {
		return err
	}

	if !prettify {
		if _, err := w.Write(body); err != nil {
			return pasteerr.Wrap(pasteerr.IO, err)
		}
		if len(body) > 0 && body[len(body)-1] != '\n' {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return pasteerr.Wrap(pasteerr.IO, err)
			}
		}
		return nil
	}

	items, err := ParseList(body)
	if err != nil {
		return err
	}
	return WriteTable(w, items)
}

// Sends an authenticated GET to an endpoint. Any failure, including a non-2xx
// response, is a transport error.
func (u *Uploader) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := u.newRequest(ctx, http.MethodGet, endpoint, u.config.Server.AuthToken)
	if err != nil {
		return nil, err
	}
	_, body, err := u.send(req)
	if err != nil {
		return nil, transportError(err)
	}
	return body, nil
}

func (u *Uploader) newRequest(ctx context.Context, method, endpoint, token string) (*retryablehttp.Request, error) {
	target, err := u.retrieveURL(endpoint)
	if err != nil {
		return nil, err
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, pasteerr.Wrap(pasteerr.URLParse, err)
	}
	setOptionalHeader(req, "Authorization", token)
	return req, nil
}

// Returns the URL of an endpoint below the configured server address.
func (u *Uploader) retrieveURL(endpoint string) (string, error) {
	if u.config.Server.Address == "" {
		return "", pasteerr.New(pasteerr.NoServerAddress, "")
	}
	target, err := ResolveURL(u.config.Server.Address, endpoint)
	if err != nil {
		return "", err
	}
	return target.String(), nil
}
