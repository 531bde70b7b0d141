package rest

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rpaste-cli/rpaste/pasteerr"
)

const (
	// File name sent for stream uploads.
	DefaultStreamFilename = "file"

	defaultContentType = "application/octet-stream"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Multipart is a multipart/form-data body whose parts are only opened when
// the body is prepared for sending.
type Multipart struct {
	parts []formPart
}

type formPart struct {
	field    string
	filename string

	// Exactly one of the following is set.
	path   string
	data   []byte
	stream io.Reader
}

func NewMultipart() *Multipart {
	return &Multipart{}
}

// Adds the file at path. The file is not touched until Prepare.
func (m *Multipart) AddFile(field, path string) {
	m.parts = append(m.parts, formPart{
		field:    field,
		filename: filepath.Base(path),
		path:     path,
	})
}

// Adds a plain form field.
func (m *Multipart) AddText(field string, value []byte) {
	m.parts = append(m.parts, formPart{
		field: field,
		data:  value,
	})
}

// Adds a file part read from r. Its size is unknown, so the prepared body
// has no content length.
func (m *Multipart) AddStream(field string, r io.Reader, filename string) {
	m.parts = append(m.parts, formPart{
		field:    field,
		filename: filename,
		stream:   r,
	})
}

// Body is a prepared multipart body, read once while the request is sent.
type Body struct {
	io.Reader

	boundary string
	length   int64
	known    bool
	files    []*os.File
}

func (b *Body) Boundary() string {
	return b.boundary
}

func (b *Body) ContentType() string {
	return "multipart/form-data; boundary=" + b.boundary
}

// Returns the size of the encoded body, if every part size is known.
func (b *Body) ContentLength() (int64, bool) {
	return b.length, b.known
}

// Closes the files opened by Prepare.
func (b *Body) Close() error {
	var firstErr error
	for _, f := range b.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	b.files = nil
	return firstErr
}

// Prepare opens the files and lays out the encoded body. The parts are
// streamed, not buffered.
func (m *Multipart) Prepare() (*Body, error) {
	b := &Body{
		boundary: newBoundary(),
		known:    true,
	}

	readers := make([]io.Reader, 0, 2*len(m.parts)+1)
	for i, p := range m.parts {
		var content io.Reader
		var size int64
		contentType := defaultContentType

		switch {
		case p.path != "":
			f, info, err := openRegularFile(p.path)
			if err != nil {
				b.Close()
				return nil, err
			}
			b.files = append(b.files, f)
			content = ioErrorReader{f}
			size = info.Size()
			if t := mime.TypeByExtension(filepath.Ext(p.path)); t != "" {
				contentType = t
			}
		case p.stream != nil:
			content = ioErrorReader{p.stream}
			b.known = false
		default:
			content = bytes.NewReader(p.data)
			size = int64(len(p.data))
		}

		header := partHeader(b.boundary, i == 0, p, contentType)
		readers = append(readers, strings.NewReader(header), content)
		b.length += int64(len(header)) + size
	}

	trailer := fmt.Sprintf("\r\n--%s--\r\n", b.boundary)
	readers = append(readers, strings.NewReader(trailer))
	b.length += int64(len(trailer))

	if !b.known {
		b.length = 0
	}
	b.Reader = io.MultiReader(readers...)
	return b, nil
}

// Random, and free of characters that need quoting in a header.
func newBoundary() string {
	return "rpaste-" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

func openRegularFile(path string) (*os.File, os.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, pasteerr.Wrap(pasteerr.Multipart, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, pasteerr.Wrap(pasteerr.Multipart, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, pasteerr.Wrap(pasteerr.Multipart, errors.Errorf("%s is a directory", path))
	}
	return f, info, nil
}

// Same layout as mime/multipart.Writer.
func partHeader(boundary string, first bool, p formPart, contentType string) string {
	var sb strings.Builder
	if !first {
		sb.WriteString("\r\n")
	}
	fmt.Fprintf(&sb, "--%s\r\n", boundary)

	if p.path == "" && p.stream == nil {
		fmt.Fprintf(&sb, "Content-Disposition: form-data; name=\"%s\"\r\n", quoteEscaper.Replace(p.field))
	} else {
		fmt.Fprintf(&sb, "Content-Disposition: form-data; name=\"%s\"; filename=\"%s\"\r\n",
			quoteEscaper.Replace(p.field), quoteEscaper.Replace(p.filename))
		fmt.Fprintf(&sb, "Content-Type: %s\r\n", contentType)
	}
	sb.WriteString("\r\n")
	return sb.String()
}

// Tags read failures of local files and streams, so they are not mistaken for transport
// failures once they surface through the HTTP client.
type ioErrorReader struct {
	r io.Reader
}

func (r ioErrorReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && err != io.EOF {
		err = pasteerr.Wrap(pasteerr.IO, err)
	}
	return n, err
}
