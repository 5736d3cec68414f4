package assets

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while assets are copied.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter for interactive use, or a CIReporter
// when running under CI.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal. Asset copies are
// usually fast; the bar clears itself once done.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	if total == 0 {
		return
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Copying assets"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter stays quiet per file and prints a single summary line, keeping
// CI logs readable even for asset-heavy portfolios.
type CIReporter struct {
	copied int
}

func (r *CIReporter) Start(total int) {}

func (r *CIReporter) Update(current int, message string) {
	r.copied = current
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(os.Stderr, "Copied %d asset files\n", r.copied)
}
