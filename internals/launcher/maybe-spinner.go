package launcher

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// MaybeSpinner is a spinner that can also just log text
type MaybeSpinner struct {
	Spin    bool
	Spinner *spinner.Spinner
	out     io.Writer
}

// Start might start the spinner
func (m *MaybeSpinner) Start(msg string) {
	if m.Spin {
		m.Spinner.Suffix = " " + msg
		m.Spinner.Start()
	} else if msg != "" {
		fmt.Fprintln(m.out, msg)
	}
}

// Stop will stop the spinner
func (m *MaybeSpinner) Stop() {
	if m.Spin {
		m.Spinner.Stop()
	}
}

// Update will update the spinner text
func (m *MaybeSpinner) Update(t string) {
	if m.Spin {
		m.Spinner.Lock()
		m.Spinner.Suffix = " " + t
		m.Spinner.Unlock()
		return
	}
	fmt.Fprintln(m.out, t)
}

// Progress can be used as resolver.Resolver.OnProgress. It only prints
// every stage once if the spinner is disabled
func (m *MaybeSpinner) Progress(stage string, done int, total int) {
	if m.Spin {
		m.Update(fmt.Sprintf("Downloading %s (%d/%d)", stage, done, total))
		return
	}
	if done == total {
		fmt.Fprintf(m.out, "Downloaded %d %s\n", total, stage)
	}
}

// NewMaybeSpinner will return a new MaybeSpinner. It only spins if spin is true
// and stdout is a terminal
func NewMaybeSpinner(spin bool) *MaybeSpinner {
	fd := os.Stdout.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return newMaybeSpinner(spin && interactive, os.Stdout)
}

func newMaybeSpinner(spin bool, out io.Writer) *MaybeSpinner {
	s := &MaybeSpinner{
		Spin:    spin,
		Spinner: spinner.New(spinner.CharSets[9], 300*time.Millisecond, spinner.WithWriter(out)),
		out:     out,
	}
	s.Spinner.Prefix = " "
	return s
}
