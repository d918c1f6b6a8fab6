package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock       = "██"
	gridPosEmpty       = "  "
	gridPosOriginBlock = "▒▒"
	gridPosOriginEmpty = "··"

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the viewport to the terminal, highest row first
func (r *TerminalRenderer) Display(v *Viewport) {
	fmt.Fprint(r.out(), RenderString(v))
}

// RenderString draws the viewport as text, one line per row
func RenderString(v *Viewport) string {
	var sb strings.Builder
	for _, row := range v.Rows() {
		for _, c := range row {
			sb.WriteString(symbol(v, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func symbol(v *Viewport, c Cell) string {
	alive := v.Get(c)
	switch {
	case v.IsOrigin(c) && alive:
		return gridPosOriginBlock
	case v.IsOrigin(c):
		return gridPosOriginEmpty
	case alive:
		return gridPosBlock
	}
	return gridPosEmpty
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
