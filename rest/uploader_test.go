package rest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpaste-cli/rpaste/cfg"
	"github.com/rpaste-cli/rpaste/pasteerr"
	"github.com/rpaste-cli/rpaste/progress"
)

// What the fake server saw of a request.
type capturedRequest struct {
	method   string
	path     string
	header   http.Header
	field    string
	filename string
	content  string
}

type fakeServer struct {
	*httptest.Server

	requests int32

	mu       sync.Mutex
	captured []capturedRequest
}

// Starts a server that records every request and answers with handler.
func newFakeServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fs.requests, 1)

		c := capturedRequest{method: r.Method, path: r.URL.Path, header: r.Header.Clone()}
		if mr, err := r.MultipartReader(); err == nil {
			if p, err := mr.NextPart(); err == nil {
				content, _ := io.ReadAll(p)
				c.field = p.FormName()
				c.filename = p.FileName()
				c.content = string(content)
			}
		}

		fs.mu.Lock()
		fs.captured = append(fs.captured, c)
		fs.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) requestCount() int {
	return int(atomic.LoadInt32(&fs.requests))
}

func (fs *fakeServer) last(t *testing.T) capturedRequest {
	t.Helper()
	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.NotEmpty(t, fs.captured)
	return fs.captured[len(fs.captured)-1]
}

func respond(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

// Updated from the transport's goroutine.
type recordingIndicator struct {
	mu       sync.Mutex
	total    int64
	current  int64
	finished bool
}

func (r *recordingIndicator) SetTotal(total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
}

func (r *recordingIndicator) SetCurrent(current int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = current
}

func (r *recordingIndicator) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = true
}

func newTestUploader(config *cfg.Config) *Uploader {
	return NewUploader(config, WithProgress(progress.DiscardFactory))
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestUploadFile(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusOK, "https://paste.example/abc.json\n"))
	path := writeTempFile(t, "abc.json", "abc")

	indicator := &recordingIndicator{}
	u := NewUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}},
		WithProgress(func(string) (progress.Indicator, error) { return indicator, nil }))

	res := u.UploadFile(context.Background(), path)
	require.NoError(t, res.Err)
	assert.Equal(t, path, res.Input)
	assert.Equal(t, "https://paste.example/abc.json", res.Value)

	req := srv.last(t)
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "file", req.field)
	assert.Equal(t, "abc.json", req.filename)
	assert.Equal(t, "abc", req.content)
	assert.Empty(t, req.header.Get("Authorization"))
	assert.NotContains(t, req.header, "Expire")
	assert.NotContains(t, req.header, "Filename")
	assert.True(t, strings.HasPrefix(req.header.Get("User-Agent"), "rpaste/"))

	assert.Equal(t, 1, srv.requestCount())
	indicator.mu.Lock()
	defer indicator.mu.Unlock()
	assert.True(t, indicator.finished)
	assert.Greater(t, indicator.total, int64(3))
	assert.Equal(t, indicator.total, indicator.current)
}

func TestUploadHeaders(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusOK, "https://paste.example/x.json\n"))
	path := writeTempFile(t, "x.json", "{}")

	u := newTestUploader(&cfg.Config{
		Server: cfg.ServerConfig{Address: srv.URL, AuthToken: "s3cr3t"},
		Paste:  cfg.PasteConfig{Oneshot: true, Expire: "10min", Filename: "renamed.json"},
	})

	res := u.UploadFile(context.Background(), path)
	require.NoError(t, res.Err)

	req := srv.last(t)
	assert.Equal(t, "oneshot", req.field)
	assert.Equal(t, "s3cr3t", req.header.Get("Authorization"))
	assert.Equal(t, "10min", req.header.Get("expire"))
	assert.Equal(t, "renamed.json", req.header.Get("filename"))
}

func TestUploadFieldNames(t *testing.T) {
	const target = "https://example.com/some/long/url"

	testCases := []struct {
		name     string
		oneshot  bool
		upload   func(u *Uploader) UploadResult
		field    string
		input    string
		filename string
		content  string
	}{
		{
			name:    "url",
			upload:  func(u *Uploader) UploadResult { return u.UploadURL(context.Background(), target) },
			field:   "url",
			input:   target,
			content: target,
		},
		{
			name:    "oneshot url",
			oneshot: true,
			upload:  func(u *Uploader) UploadResult { return u.UploadURL(context.Background(), target) },
			field:   "oneshot_url",
			input:   target,
			content: target,
		},
		{
			name:    "remote",
			upload:  func(u *Uploader) UploadResult { return u.UploadRemoteURL(context.Background(), target) },
			field:   "remote",
			input:   target,
			content: target,
		},
		{
			name:    "remote ignores oneshot",
			oneshot: true,
			upload:  func(u *Uploader) UploadResult { return u.UploadRemoteURL(context.Background(), target) },
			field:   "remote",
			input:   target,
			content: target,
		},
		{
			name: "stream",
			upload: func(u *Uploader) UploadResult {
				return u.UploadStream(context.Background(), strings.NewReader("hello\n"))
			},
			field:    "file",
			input:    "stream",
			filename: "file",
			content:  "hello\n",
		},
		{
			name:    "oneshot stream",
			oneshot: true,
			upload: func(u *Uploader) UploadResult {
				return u.UploadStream(context.Background(), strings.NewReader("hello\n"))
			},
			field:    "oneshot",
			input:    "stream",
			filename: "file",
			content:  "hello\n",
		},
	}

	for _, tc := range testCases {
		srv := newFakeServer(t, respond(http.StatusOK, "https://paste.example/result\n"))
		u := newTestUploader(&cfg.Config{
			Server: cfg.ServerConfig{Address: srv.URL},
			Paste:  cfg.PasteConfig{Oneshot: tc.oneshot},
		})

		res := tc.upload(u)
		require.NoError(t, res.Err, tc.name)
		assert.Equal(t, tc.input, res.Input, tc.name)
		assert.Equal(t, "https://paste.example/result", res.Value, tc.name)

		req := srv.last(t)
		assert.Equal(t, tc.field, req.field, tc.name)
		assert.Equal(t, tc.filename, req.filename, tc.name)
		assert.Equal(t, tc.content, req.content, tc.name)
	}
}

func TestUploadMalformedURLSendsNothing(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusOK, "unused\n"))
	u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})

	for _, bad := range []string{"not a url", "example.com/no-scheme", "http://"} {
		res := u.UploadURL(context.Background(), bad)
		assert.Equal(t, bad, res.Input)
		assert.True(t, pasteerr.Is(res.Err, pasteerr.URLParse), "%q: %v", bad, res.Err)

		res = u.UploadRemoteURL(context.Background(), bad)
		assert.True(t, pasteerr.Is(res.Err, pasteerr.URLParse), "%q: %v", bad, res.Err)
	}
	assert.Equal(t, 0, srv.requestCount())
}

func TestUploadWithoutServerAddress(t *testing.T) {
	u := newTestUploader(&cfg.Config{})
	res := u.UploadStream(context.Background(), strings.NewReader("x"))
	assert.True(t, pasteerr.Is(res.Err, pasteerr.NoServerAddress))
	assert.Equal(t, "No rustypaste server address is given.", res.Err.Error())

	_, err := u.RetrieveVersion(context.Background())
	assert.True(t, pasteerr.Is(err, pasteerr.NoServerAddress))
}

func TestUploadMissingFileSendsNothing(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusOK, "unused\n"))
	u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})

	res := u.UploadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, pasteerr.Is(res.Err, pasteerr.Multipart), res.Err)
	assert.Equal(t, 0, srv.requestCount())
}

func TestUploadResponses(t *testing.T) {
	testCases := []struct {
		name          string
		status        int
		body          string
		expectedValue string
		expectedKind  pasteerr.Kind
		expectedErr   string
	}{
		{
			name:          "one line",
			status:        http.StatusOK,
			body:          "https://paste.example/a.txt\n",
			expectedValue: "https://paste.example/a.txt",
		},
		{
			name:         "invalid body",
			status:       http.StatusOK,
			body:         "<html>\n<p>proxy page</p>\n</html>\n",
			expectedKind: pasteerr.Upload,
			expectedErr:  "Upload error: `server returned invalid body (status code: 200)`",
		},
		{
			name:         "unexpected success status",
			status:       http.StatusCreated,
			body:         "https://paste.example/a.txt\n",
			expectedKind: pasteerr.Upload,
			expectedErr:  "Upload error: `unknown error (status code: 201)`",
		},
		{
			name:         "unauthorized",
			status:       http.StatusUnauthorized,
			body:         "unauthorized\n",
			expectedKind: pasteerr.Upload,
			expectedErr:  "Upload error: `unauthorized (status code: 401)`",
		},
		{
			name:         "payload too large",
			status:       http.StatusRequestEntityTooLarge,
			body:         "upload limit exceeded",
			expectedKind: pasteerr.Upload,
			expectedErr:  "Upload error: `upload limit exceeded (status code: 413)`",
		},
	}

	for _, tc := range testCases {
		srv := newFakeServer(t, respond(tc.status, tc.body))
		u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})

		res := u.UploadStream(context.Background(), strings.NewReader("data"))
		if tc.expectedValue != "" {
			require.NoError(t, res.Err, tc.name)
			assert.Equal(t, tc.expectedValue, res.Value, tc.name)
			continue
		}
		if assert.Error(t, res.Err, tc.name) {
			assert.True(t, pasteerr.Is(res.Err, tc.expectedKind), tc.name)
			assert.Equal(t, tc.expectedErr, res.Err.Error(), tc.name)
		}
		assert.Empty(t, res.Value, tc.name)
	}
}

func TestUploadTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	address := srv.URL
	srv.Close()

	u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: address}})
	res := u.UploadStream(context.Background(), strings.NewReader("data"))
	assert.True(t, pasteerr.Is(res.Err, pasteerr.Transport), res.Err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device not ready")
}

func TestUploadStreamReadFailure(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusOK, "unused\n"))
	u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})

	res := u.UploadStream(context.Background(), io.MultiReader(strings.NewReader("partial"), failingReader{}))
	assert.True(t, pasteerr.Is(res.Err, pasteerr.IO), res.Err)
	assert.Contains(t, res.Err.Error(), "device not ready")
	assert.Empty(t, res.Value)
}

func TestUploadCancelled(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusOK, "unused\n"))
	u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := u.UploadStream(ctx, strings.NewReader("data"))
	assert.Error(t, res.Err)
}

func TestDeleteFile(t *testing.T) {
	testCases := []struct {
		name          string
		status        int
		body          string
		expectedValue string
		expectedErr   string
	}{
		{
			name:          "deleted",
			status:        http.StatusOK,
			body:          "file deleted\n",
			expectedValue: "file deleted",
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        "file is not found or expired :(\n",
			expectedErr: "Delete error: `file is not found or expired :(`",
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        "unauthorized\n",
			expectedErr: "Delete error: `unauthorized (status code: 401)`",
		},
	}

	for _, tc := range testCases {
		srv := newFakeServer(t, respond(tc.status, tc.body))
		u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{
			Address:     srv.URL + "/paste",
			AuthToken:   "auth",
			DeleteToken: "delete",
		}})

		res := u.DeleteFile(context.Background(), "abc.txt")
		assert.Equal(t, "abc.txt", res.Input, tc.name)

		req := srv.last(t)
		assert.Equal(t, http.MethodDelete, req.method, tc.name)
		assert.Equal(t, "/paste/abc.txt", req.path, tc.name)
		assert.Equal(t, "delete", req.header.Get("Authorization"), tc.name)

		if tc.expectedErr == "" {
			require.NoError(t, res.Err, tc.name)
			assert.Equal(t, tc.expectedValue, res.Value, tc.name)
			continue
		}
		if assert.Error(t, res.Err, tc.name) {
			assert.True(t, pasteerr.Is(res.Err, pasteerr.Delete), tc.name)
			assert.Equal(t, tc.expectedErr, res.Err.Error(), tc.name)
		}
	}
}

func TestRetrieveVersion(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusOK, "rustypaste-server 0.15.0\n"))

	for _, address := range []string{srv.URL + "/p", srv.URL + "/p/"} {
		u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: address, AuthToken: "auth"}})
		v, err := u.RetrieveVersion(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "rustypaste-server 0.15.0", v)

		req := srv.last(t)
		assert.Equal(t, http.MethodGet, req.method)
		assert.Equal(t, "/p/version", req.path)
		assert.Equal(t, "auth", req.header.Get("Authorization"))
	}
}

func TestRetrieveVersionFailure(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusNotFound, "not found\n"))
	u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})

	_, err := u.RetrieveVersion(context.Background())
	assert.True(t, pasteerr.Is(err, pasteerr.Transport), err)

	var he HTTPError
	if assert.True(t, errors.As(err, &he)) {
		assert.Equal(t, http.StatusNotFound, he.StatusCode)
	}
}

func TestRetrieveList(t *testing.T) {
	const listing = `[{"file_name":"a.txt","file_size":12,"creation_date_utc":"2023-01-01 10:00:00","expires_at_utc":null},` +
		`{"file_name":"bb.png","file_size":999,"expires_at_utc":"2023-01-02 10:00:00"}]`
	srv := newFakeServer(t, respond(http.StatusOK, listing))
	u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})

	var raw bytes.Buffer
	require.NoError(t, u.RetrieveList(context.Background(), &raw, false))
	assert.Equal(t, listing+"\n", raw.String())
	assert.Equal(t, "/list", srv.last(t).path)

	var table bytes.Buffer
	require.NoError(t, u.RetrieveList(context.Background(), &table, true))
	assert.Equal(t, ""+
		" Name  | Size |   Creation (UTC)    |    Expiry (UTC)    \n"+
		"-------|------|---------------------|--------------------\n"+
		"a.txt  |   12 | 2023-01-01 10:00:00 | \n"+
		"bb.png |  999 | info not available  | 2023-01-02 10:00:00\n",
		table.String())
}

func TestRetrieveListEmpty(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusOK, "[]"))
	u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})

	var out bytes.Buffer
	require.NoError(t, u.RetrieveList(context.Background(), &out, true))
	assert.Equal(t, "No files on server :(\n", out.String())
}

func TestRetrieveListFailures(t *testing.T) {
	srv := newFakeServer(t, respond(http.StatusOK, "file listing is disabled\n"))
	u := newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})

	var out bytes.Buffer
	err := u.RetrieveList(context.Background(), &out, true)
	assert.True(t, pasteerr.Is(err, pasteerr.IO), err)

	srv = newFakeServer(t, respond(http.StatusUnauthorized, "unauthorized\n"))
	u = newTestUploader(&cfg.Config{Server: cfg.ServerConfig{Address: srv.URL}})
	err = u.RetrieveList(context.Background(), &out, false)
	assert.True(t, pasteerr.Is(err, pasteerr.Transport), err)
}
