// Package diag turns decode failures into reports for people and programs.
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/samcharles93/elfinfo/pkg/elf"
)

// Kind classifies the root cause of a failure.
type Kind string

const (
	KindMagicMismatch       Kind = "magic_mismatch"
	KindUnknownCode         Kind = "unknown_code"
	KindUnsupportedEncoding Kind = "unsupported_encoding"
	KindUnsupportedClass    Kind = "unsupported_class"
	KindIncomplete          Kind = "incomplete_input"
	KindOther               Kind = "error"
)

// Report is the structured form of a failure. Context is ordered most
// specific first.
type Report struct {
	Kind    Kind     `json:"type" yaml:"type"`
	Message string   `json:"message" yaml:"message"`
	Context []string `json:"context,omitempty" yaml:"context,omitempty"`
	Offset  *int     `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// Describe builds a Report for err. Errors that did not come from the
// decoder are reported as KindOther with their message.
func Describe(err error) Report {
	var de *elf.DecodeError
	if !errors.As(err, &de) {
		return Report{Kind: KindOther, Message: err.Error()}
	}
	offset := de.Offset
	r := Report{
		Kind:    kindOf(de.Cause),
		Context: append([]string(nil), de.Context...),
		Offset:  &offset,
	}
	if de.Cause != nil {
		r.Message = de.Cause.Error()
	} else {
		r.Message = "decode failed"
	}
	return r
}

func kindOf(err error) Kind {
	switch {
	case errors.Is(err, elf.ErrMagicMismatch):
		return KindMagicMismatch
	case errors.Is(err, elf.ErrUnknownCode):
		return KindUnknownCode
	case errors.Is(err, elf.ErrUnsupportedEncoding):
		return KindUnsupportedEncoding
	case errors.Is(err, elf.ErrUnsupportedClass):
		return KindUnsupportedClass
	case errors.Is(err, elf.ErrIncomplete):
		return KindIncomplete
	default:
		return KindOther
	}
}

// ColorMode is the --color setting.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Enabled decides whether output to f is colored. Auto colors terminals
// unless NO_COLOR is set.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Printer renders failures as a single line:
//
//	error: e_machine -> elf header -> unknown Machine code 0xffff (offset 18)
type Printer struct {
	w      io.Writer
	prefix lipgloss.Style
	label  lipgloss.Style
	arrow  lipgloss.Style
	cause  lipgloss.Style
	offset lipgloss.Style
}

func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:      w,
		prefix: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		label:  r.NewStyle().Foreground(lipgloss.Color("#FFD75F")),
		arrow:  r.NewStyle().Foreground(lipgloss.Color("#666666")),
		cause:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		offset: r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func (p *Printer) Format(err error) string {
	rep := Describe(err)

	var b strings.Builder
	b.WriteString(p.prefix.Render("error:"))
	b.WriteByte(' ')
	for _, label := range rep.Context {
		b.WriteString(p.label.Render(label))
		b.WriteByte(' ')
		b.WriteString(p.arrow.Render("->"))
		b.WriteByte(' ')
	}
	b.WriteString(p.cause.Render(rep.Message))
	if rep.Offset != nil {
		b.WriteByte(' ')
		b.WriteString(p.offset.Render(fmt.Sprintf("(offset %d)", *rep.Offset)))
	}
	return b.String()
}

func (p *Printer) Print(err error) error {
	_, werr := fmt.Fprintln(p.w, p.Format(err))
	return werr
}
