// Package progress wraps a terminal progress bar behind a minimal interface
// so the fetch loops own their indicator locally and tests stay silent.
package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Bar is the subset of progress behavior the fetch loops need. The upper
// bound is unknown until the first page arrives, hence ChangeMax rather than
// a constructor argument.
type Bar interface {
	ChangeMax(max int)
	Set(n int)
	Finish()
}

// Noop is a Bar that does nothing. Used by tests and by debug runs where bar
// redraws would interleave with log output.
type Noop struct{}

func (Noop) ChangeMax(int) {}
func (Noop) Set(int)       {}
func (Noop) Finish()       {}

// Terminal renders a live bar on stderr.
type Terminal struct {
	bar *progressbar.ProgressBar
}

// NewTerminal builds a bar with an indeterminate bound; callers raise it via
// ChangeMax once the total is known.
func NewTerminal(description string) *Terminal {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &Terminal{bar: bar}
}

func (t *Terminal) ChangeMax(max int) {
	t.bar.ChangeMax(max)
}

func (t *Terminal) Set(n int) {
	// The offset can step past the reported total on the final page; the bar
	// clamps internally and the error is never actionable here.
	_ = t.bar.Set(n)
}

func (t *Terminal) Finish() {
	_ = t.bar.Finish()
}
