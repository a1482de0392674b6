// File: progress_test.go
// Title: Transfer Progress Rendering Tests
// Description: Tests for percent math, bar rendering, and the TTY and
//              line-mode output of the progress renderer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-20
// Modified: 2025-03-20
//
// Change History:
// - 2025-03-20 v0.1.0: Initial test implementation

package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name     string
		copied   int64
		total    int64
		expected int
	}{
		{"zero total", 50, 0, 0},
		{"start", 0, 100, 0},
		{"half", 50, 100, 50},
		{"complete", 100, 100, 100},
		{"overflow clamps", 150, 100, 100},
		{"negative clamps", -5, 100, 0},
		{"large counts", 512 * 1024 * 1024, 1024 * 1024 * 1024, 50},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := percentOf(test.copied, test.total); got != test.expected {
				t.Errorf("percentOf(%d, %d) = %d; want %d",
					test.copied, test.total, got, test.expected)
			}
		})
	}
}

func TestRenderBar(t *testing.T) {
	if got := renderBar(0, 10); got != "----------" {
		t.Errorf("renderBar(0) = %q", got)
	}
	if got := renderBar(50, 10); got != "#####-----" {
		t.Errorf("renderBar(50) = %q", got)
	}
	if got := renderBar(100, 10); got != "##########" {
		t.Errorf("renderBar(100) = %q", got)
	}
	if got := renderBar(150, 10); got != "##########" {
		t.Errorf("renderBar(150) = %q", got)
	}
	if got := renderBar(50, 0); got != "" {
		t.Errorf("renderBar(width 0) = %q", got)
	}
}

func TestTransferCounts(t *testing.T) {
	if got := transferCounts(1536, 20480); got != "1.5 KB / 20.0 KB" {
		t.Errorf("transferCounts = %q", got)
	}
	if got := transferCounts(0, 500); got != "0 B / 500 B" {
		t.Errorf("transferCounts = %q", got)
	}
}

func TestProgressRendererLineMode(t *testing.T) {
	var buf bytes.Buffer
	r := newProgressRenderer(&buf, false)

	r.update(5, 100)
	r.update(12, 100) // below the ten percent step, suppressed
	r.update(20, 100)
	r.update(100, 100)
	r.done()

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "[5%]") {
		t.Errorf("first line = %q", lines[0])
	}
	if strings.Contains(out, "[12%]") {
		t.Errorf("suppressed step was emitted: %q", out)
	}
	if !strings.HasPrefix(lines[2], "[100%]") {
		t.Errorf("final line = %q", lines[2])
	}
}

func TestProgressRendererTTY(t *testing.T) {
	var buf bytes.Buffer
	r := newProgressRenderer(&buf, true)

	r.update(50, 100)
	r.update(50, 100) // same percent, suppressed
	r.update(100, 100)
	r.done()

	out := buf.String()
	if strings.Count(out, "\r") != 2 {
		t.Errorf("expected 2 in-place rewrites, got %q", out)
	}
	if !strings.Contains(out, "50 B / 100 B") {
		t.Errorf("expected byte counts in output, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("done should terminate the line, got %q", out)
	}
}

func TestProgressRendererListener(t *testing.T) {
	var buf bytes.Buffer
	r := newProgressRenderer(&buf, false)

	listener := r.listener()
	listener(25, 100)

	if !strings.Contains(buf.String(), "[25%]") {
		t.Errorf("listener did not feed the renderer: %q", buf.String())
	}
}
