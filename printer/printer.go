// printer package provides utility for displaying messages to users.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/viper"
)

var (
	Stderr = NewP(os.Stderr)
	Stdout = NewP(os.Stdout)
	Color  = aurora.NewAurora(true)
)

func Infof(fmtString string, args ...interface{}) {
	Stderr.Infof(fmtString, args...)
}

func Warningf(fmtString string, args ...interface{}) {
	Stderr.Warningf(fmtString, args...)
}

func Errorf(fmtString string, args ...interface{}) {
	Stderr.Errorf(fmtString, args...)
}

func Debugf(fmtString string, args ...interface{}) {
	Stderr.Debugf(fmtString, args...)
}

func Debugln(args ...interface{}) {
	Stderr.Debugln(args...)
}

func V(level int) P {
	return Stderr.V(level)
}

type P interface {
	Infof(f string, args ...interface{})
	Warningf(f string, args ...interface{})
	Errorf(f string, args ...interface{})
	Debugf(f string, args ...interface{})

	// Mimics the behavior of fmt.Println
	Debugln(args ...interface{})

	V(level int) P

	// Output with no header
	RawOutput(args ...interface{})
}

type impl struct {
	out io.Writer
}

func NewP(out io.Writer) P {
	return impl{out: out}
}

func (p impl) Infof(fmtString string, args ...interface{}) {
	fmt.Fprint(p.out, Color.Blue("[INFO] ").String())
	fmt.Fprintf(p.out, fmtString, args...)
}

func (p impl) Warningf(fmtString string, args ...interface{}) {
	fmt.Fprint(p.out, Color.Yellow("[WARNING] ").String())
	fmt.Fprintf(p.out, fmtString, args...)
}

func (p impl) Errorf(fmtString string, args ...interface{}) {
	fmt.Fprint(p.out, Color.Red("[ERROR] ").String())
	fmt.Fprintf(p.out, fmtString, args...)
}

func (p impl) Debugf(fmtString string, args ...interface{}) {
	if viper.GetBool("debug") {
		fmt.Fprint(p.out, Color.Magenta("[DEBUG] ").String())
		fmt.Fprintf(p.out, fmtString, args...)
	}
}

func (p impl) Debugln(args ...interface{}) {
	if viper.GetBool("debug") {
		fmt.Fprint(p.out, Color.Magenta("[DEBUG] ").String())
		fmt.Fprintln(p.out, args...)
	}
}

func (p impl) V(level int) P {
	if l := viper.GetInt("verbose-level"); l > 0 && level <= l {
		return p
	}
	return noopPrinter{}
}

func (p impl) RawOutput(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

type noopPrinter struct{}

func (noopPrinter) Infof(f string, args ...interface{})    {}
func (noopPrinter) Warningf(f string, args ...interface{}) {}
func (noopPrinter) Errorf(f string, args ...interface{})   {}
func (noopPrinter) Debugf(f string, args ...interface{})   {}
func (noopPrinter) Debugln(args ...interface{})            {}
func (noopPrinter) RawOutput(args ...interface{})          {}
func (p noopPrinter) V(level int) P                        { return p }

// Disables ANSI escapes, e.g. when NO_COLOR is set.
func SwitchToPlain() {
	Color = aurora.NewAurora(false)
}

// Arrow used between an input and its result in prettified output: green for
// success, red for failure.
func ResultArrow(ok bool) string {
	if ok {
		return Color.Bold(Color.Green("=>")).String()
	}
	return Color.Bold(Color.Red("=>")).String()
}
