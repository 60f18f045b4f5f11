package cli

import (
	"fmt"
	"io"
	"os"

	"pdf_merger/plan"
)

// progressPrinter renders progress events as a single updating terminal
// line, with a trailing newline once the operation completes.
type progressPrinter struct {
	quiet bool
	out   io.Writer
}

func newProgress() plan.ProgressFunc {
	p := &progressPrinter{quiet: quiet, out: os.Stdout}
	return p.update
}

func (p *progressPrinter) update(current, total int, message string) {
	if p.quiet {
		return
	}
	if total > 0 {
		percent := float64(current) / float64(total) * 100
		fmt.Fprintf(p.out, "\r[%3.0f%%] %s", percent, message)
	} else {
		fmt.Fprintf(p.out, "\r%s", message)
	}
	if current == total && total > 0 {
		fmt.Fprintln(p.out)
	}
}
