package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/jwalton/gchalk"
)

// Logger loggs pretty stuff to the console.
// All methods can be called on a nil *Logger, which discards everything
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	emojis  bool
	verbose bool
}

// New returns a new Logger writing to stdout
func New() *Logger {
	emojis := runtime.GOOS != "windows"

	// disable color & emojis for CI
	if os.Getenv("CI") != "" {
		emojis = false
		gchalk.SetLevel(gchalk.LevelNone)
	}
	return &Logger{out: os.Stdout, emojis: emojis}
}

// NewWriter returns a Logger writing plain text to w (useful for tests)
func NewWriter(w io.Writer) *Logger {
	return &Logger{out: w}
}

// SetVerbose enables debug output
func (l *Logger) SetVerbose(v bool) {
	if l == nil {
		return
	}
	l.verbose = v
}

// Verbose returns true if debug output is enabled
func (l *Logger) Verbose() bool {
	return l != nil && l.verbose
}

func (l *Logger) println(a string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, a)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// Headline prints a bold cyan line
func (l *Logger) Headline(s string) {
	if l == nil {
		return
	}
	l.println(gchalk.WithCyan().Bold(s))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	if l == nil {
		return
	}
	l.println(s)
}

// Infof prints a formatted "normal" line
func (l *Logger) Infof(format string, a ...interface{}) {
	l.Info(fmt.Sprintf(format, a...))
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	if l == nil {
		return
	}
	l.println(l.sprintEmoji("⚠️ ") + gchalk.WithYellow().Bold(s))
}

// Debugf prints a gray line, but only if verbose logging is enabled
func (l *Logger) Debugf(format string, a ...interface{}) {
	if !l.Verbose() {
		return
	}
	l.println(gchalk.Gray("[debug] " + fmt.Sprintf(format, a...)))
}

// Fail will print the given message and then exit 1
func (l *Logger) Fail(s string) {
	if l != nil {
		l.println(l.sprintEmoji("💣") + gchalk.WithRed().Bold("Error: ") + gchalk.Bold(s))
	}
	os.Exit(1)
}
