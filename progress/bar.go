package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"

	"github.com/rpaste-cli/rpaste/pasteerr"
)

const (
	// Message, spinner, elapsed time, bar, byte counters, throughput and ETA.
	DefaultTemplate = `{{string . "message" | green}} {{cycle . "⠁" "⠂" "⠄" "⡀" "⢀" "⠠" "⠐" "⠈" | green}} [{{etime . "%s"}}] {{bar . "[" "#" ">" "-" "]"}} {{counters . }} ({{speed . "%s/s" "?/s"}}, {{rtime . "%s" "%s" "?"}})`

	// Refresh rate of the spinner before the first byte is read.
	TickInterval = 80 * time.Millisecond
)

// Bar is a terminal Indicator.
type Bar struct {
	bar  *pb.ProgressBar
	once sync.Once
}

// NewBar starts rendering a progress bar with the given template to w.
func NewBar(w io.Writer, message, template string) (*Bar, error) {
	bar := pb.New64(0)
	bar.SetTemplateString(template)
	if err := bar.Err(); err != nil {
		return nil, pasteerr.Wrap(pasteerr.TemplateParse, err)
	}
	bar.SetWriter(w)
	bar.SetRefreshRate(TickInterval)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	bar.Set("message", message)
	bar.Start()
	return &Bar{bar: bar}, nil
}

func (b *Bar) SetTotal(total int64) {
	b.bar.SetTotal(total)
}

func (b *Bar) SetCurrent(current int64) {
	b.bar.SetCurrent(current)
}

func (b *Bar) Finish() {
	b.once.Do(func() {
		b.bar.Finish()
	})
}

// Factory creates an Indicator for an operation described by message.
type Factory func(message string) (Indicator, error)

// StderrFactory renders a Bar on stderr when it is a terminal, and nothing
// otherwise.
func StderrFactory(message string) (Indicator, error) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return Discard, nil
	}
	bar, err := NewBar(os.Stderr, message, DefaultTemplate)
	if err != nil {
		return nil, err
	}
	return bar, nil
}

// DiscardFactory always returns Discard.
func DiscardFactory(string) (Indicator, error) {
	return Discard, nil
}
