// Package progress reports how many bytes of an upload have been consumed by
// the transport.
package progress

import "io"

// Indicator is anything that can display transfer progress.
type Indicator interface {
	// Sets the expected number of bytes. Zero means unknown.
	SetTotal(total int64)

	// Sets the number of bytes transferred so far.
	SetCurrent(current int64)

	// Stops rendering and clears the indicator. Safe to call more than once.
	Finish()
}

// Reader forwards reads to an underlying reader and moves an Indicator to the
// cumulative number of bytes read. It never finishes the indicator.
type Reader struct {
	inner     io.Reader
	indicator Indicator
	read      int64
}

func NewReader(indicator Indicator, total int64, r io.Reader) *Reader {
	indicator.SetTotal(total)
	return &Reader{
		inner:     r,
		indicator: indicator,
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 {
		r.read += int64(n)
		r.indicator.SetCurrent(r.read)
	}
	return n, err
}

// BytesRead returns the number of bytes consumed so far.
func (r *Reader) BytesRead() int64 {
	return r.read
}

// Discard is an Indicator that renders nothing.
var Discard Indicator = discard{}

type discard struct{}

func (discard) SetTotal(int64)   {}
func (discard) SetCurrent(int64) {}
func (discard) Finish()          {}
