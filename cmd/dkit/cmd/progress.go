// File: progress.go
// Title: Transfer Progress Rendering
// Description: Renders byte-level transfer progress as a terminal
//              progress bar, falling back to stepped log lines when
//              output is not a terminal.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-20
// Modified: 2025-03-20
//
// Change History:
// - 2025-03-20 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/msto63/dkit/utils/filex"
)

const progressBarWidth = 24

// progressRenderer draws transfer progress. On a terminal it rewrites
// one line in place; otherwise it emits a line every ten percent so
// piped output stays readable.
type progressRenderer struct {
	w         io.Writer
	tty       bool
	lastPct   int
	lastWidth int
	wroteLine bool
}

func newProgressRenderer(w io.Writer, tty bool) *progressRenderer {
	return &progressRenderer{w: w, tty: tty, lastPct: -1}
}

// listener adapts the renderer to the filex progress callback
func (r *progressRenderer) listener() filex.ProgressListener {
	return func(copied, total int64) {
		r.update(copied, total)
	}
}

func (r *progressRenderer) update(copied, total int64) {
	pct := percentOf(copied, total)

	if r.tty {
		if pct == r.lastPct {
			return
		}
		r.lastPct = pct
		r.wroteLine = true
		line := fmt.Sprintf("\r[%s] %3d%% %s", renderBar(pct, progressBarWidth), pct, transferCounts(copied, total))
		width := len(line) - 1 // exclude leading carriage return
		if r.lastWidth > width {
			line += strings.Repeat(" ", r.lastWidth-width)
		}
		r.lastWidth = width
		fmt.Fprint(r.w, line)
		return
	}

	if r.lastPct >= 0 && pct-r.lastPct < 10 && pct != 100 {
		return
	}
	r.lastPct = pct
	fmt.Fprintf(r.w, "[%d%%] %s\n", pct, transferCounts(copied, total))
}

// done terminates an in-place progress line with a newline
func (r *progressRenderer) done() {
	if r.tty && r.wroteLine {
		fmt.Fprintln(r.w)
	}
}

func renderBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	filled := (clampPercent(percent) * width) / 100
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

func percentOf(copied, total int64) int {
	if total <= 0 {
		return 0
	}
	if copied < 0 {
		copied = 0
	}
	if copied > total {
		copied = total
	}
	return int((copied * 100) / total)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func transferCounts(copied, total int64) string {
	c, _ := filex.FormatBytes(copied)
	t, _ := filex.FormatBytes(total)
	return c + " / " + t
}

func isTerminalFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
