// Package output provides mode-aware rendering for CLI commands.
//
// A Renderer resolves the requested output mode against the stream it writes
// to: auto becomes styled text on a TTY and plain markdown when output is
// piped. Styles collapse to no-ops outside text mode so markdown, json and
// csv streams never carry ANSI escapes.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// OutputMode identifies a rendering mode.
type OutputMode string

// Rendering modes. ModeAuto resolves to text on a TTY and markdown otherwise.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeCSV      OutputMode = "csv"
)

// Mode parses a mode string. Unknown values fall back to ModeAuto.
func Mode(s string) OutputMode {
	switch OutputMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeText:
		return ModeText
	case ModeMarkdown:
		return ModeMarkdown
	case ModeJSON:
		return ModeJSON
	case ModeCSV:
		return ModeCSV
	default:
		return ModeAuto
	}
}

// Renderer writes command output in a resolved mode with matching styles.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a Renderer, detecting TTY state from out.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	isTTY := termenv.NewOutput(out).ColorProfile() != termenv.Ascii
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a Renderer with an explicit TTY state. Tests use
// this to pin mode resolution regardless of where their buffers live.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode, isTTY: isTTY}
	if r.EffectiveMode() == ModeText {
		r.styles = newStyles(out)
	} else {
		r.styles = newPlainStyles()
	}
	return r
}

// EffectiveMode resolves ModeAuto against the TTY state.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the style set for the effective mode.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the primary output stream.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error output stream.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the primary output.
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the primary output.
func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Success writes a success line to the primary output.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.styles.Success.Render("✓")+" "+msg)
}

// Failure writes a failure line to the error output.
func (r *Renderer) Failure(msg string) {
	fmt.Fprintln(r.errOut, r.styles.Error.Render("✗")+" "+msg)
}

// JSON writes v to the primary output as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
