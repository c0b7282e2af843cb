// Package logx writes channel-tagged progress lines, colored when the
// destination is a terminal.
package logx

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

const (
	reset  = "\x1b[0m"
	bold   = "\x1b[1m"
	gray   = "\x1b[90m"
	cyan   = "\x1b[36m"
	blue   = "\x1b[34m"
	yellow = "\x1b[33m"
	green  = "\x1b[32m"
)

// Channels. Tags are four characters wide.
const (
	Init = "INIT"
	Gen  = "GEN "
	Done = "DONE"
	Warn = "WARN"
)

var channelColor = map[string]string{
	Init: cyan,
	Gen:  blue,
	Done: green,
	Warn: yellow,
}

// Logger writes progress lines to w. A nil *Logger discards everything.
type Logger struct {
	w     io.Writer
	color bool
	now   func() time.Time
}

// New returns a logger writing to w. Color is enabled only when w is a
// terminal and NO_COLOR is unset.
func New(w io.Writer) *Logger {
	return &Logger{w: w, color: colorFor(w), now: time.Now}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return &Logger{w: io.Discard, now: time.Now}
}

func colorFor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// C returns s wrapped in color, or s unchanged when color is off.
func (l *Logger) C(color, s string) string {
	if l == nil || !l.color {
		return s
	}
	return color + s + reset
}

// Highlight returns s in bold.
func (l *Logger) Highlight(s string) string {
	return l.C(bold, s)
}

// Printf writes one line on channel ch.
func (l *Logger) Printf(ch, format string, args ...any) {
	if l == nil || l.w == io.Discard {
		return
	}
	fmt.Fprintf(l.w, "%s  %s  %s\n",
		l.C(gray, l.now().UTC().Format("15:04:05Z")),
		l.C(channelColor[ch], fmt.Sprintf("[%-4s]", ch)),
		fmt.Sprintf(format, args...))
}

// Count formats n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
