// Package pasteerr defines the closed set of failures reported by rpaste.
package pasteerr

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Kind of failure.
type Kind int

const (
	// Local file or stream access failed.
	IO Kind = iota

	// The configuration file is not valid TOML.
	TOML

	// Connection-level failure, or a non-2xx answer to a query.
	Transport

	// The server refused or mangled an upload.
	Upload

	// The server refused a delete.
	Delete

	// No server address is configured.
	NoServerAddress

	// A malformed URL was given as an upload target or produced during
	// resolution.
	URLParse

	// The multipart body could not be assembled.
	Multipart

	// The progress bar template was rejected.
	TemplateParse
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "io"
	case TOML:
		return "toml"
	case Transport:
		return "transport"
	case Upload:
		return "upload"
	case Delete:
		return "delete"
	case NoServerAddress:
		return "no-server-address"
	case URLParse:
		return "url-parse"
	case Multipart:
		return "multipart"
	case TemplateParse:
		return "template-parse"
	default:
		panic("unknown error kind: " + strconv.Itoa(int(k)))
	}
}

type Error struct {
	Kind Kind

	// Human readable message. For Upload and Delete errors this is the full
	// formatted message, e.g. "file not found (status code: 404)".
	Msg string

	// Underlying cause, if any.
	Err error
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to err. Returns nil if err is nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	detail := e.Msg
	if e.Err != nil {
		if detail == "" {
			detail = e.Err.Error()
		} else {
			detail = detail + ": " + e.Err.Error()
		}
	}

	switch e.Kind {
	case IO:
		return fmt.Sprintf("IO error: `%s`", detail)
	case TOML:
		return fmt.Sprintf("TOML parsing error: `%s`", detail)
	case Transport:
		return fmt.Sprintf("Request error: `%s`", detail)
	case Upload:
		return fmt.Sprintf("Upload error: `%s`", detail)
	case Delete:
		return fmt.Sprintf("Delete error: `%s`", detail)
	case NoServerAddress:
		return "No rustypaste server address is given."
	case URLParse:
		return fmt.Sprintf("URL parsing error: `%s`", detail)
	case Multipart:
		return fmt.Sprintf("Multipart IO error: `%s`", detail)
	case TemplateParse:
		return fmt.Sprintf("Template parsing error: `%s`", detail)
	default:
		return detail
	}
}

// github.com/pkg/errors causer interface
func (e *Error) Cause() error {
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
