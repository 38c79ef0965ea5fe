// Package report renders decoded ELF headers for terminals and tooling.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/samcharles93/elfinfo/pkg/elf"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value. Empty selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text, json or yaml)", s)
	}
}

// Code pairs an enumeration's display name with its raw value.
type Code struct {
	Name  string `json:"name" yaml:"name"`
	Value uint64 `json:"value" yaml:"value"`
}

type IdentDocument struct {
	Class      Code  `json:"class" yaml:"class"`
	Encoding   Code  `json:"encoding" yaml:"encoding"`
	Version    uint8 `json:"version" yaml:"version"`
	Abi        Code  `json:"abi" yaml:"abi"`
	AbiVersion uint8 `json:"abi_version" yaml:"abi_version"`
}

// Document is the serialized form of a Header.
type Document struct {
	Ident        IdentDocument `json:"ident" yaml:"ident"`
	Type         Code          `json:"type" yaml:"type"`
	Machine      Code          `json:"machine" yaml:"machine"`
	Version      uint32        `json:"version" yaml:"version"`
	Entry        string        `json:"entry" yaml:"entry"`
	PHTOffset    string        `json:"program_header_offset" yaml:"program_header_offset"`
	SHTOffset    string        `json:"section_header_offset" yaml:"section_header_offset"`
	Flags        string        `json:"flags" yaml:"flags"`
	HeaderSize   uint16        `json:"header_size" yaml:"header_size"`
	PHTEntrySize uint16        `json:"program_header_entry_size" yaml:"program_header_entry_size"`
	PHTEntryNum  uint16        `json:"program_header_count" yaml:"program_header_count"`
	SHTEntrySize uint16        `json:"section_header_entry_size" yaml:"section_header_entry_size"`
	SHTEntryNum  uint16        `json:"section_header_count" yaml:"section_header_count"`
	SHTNameIndex uint16        `json:"section_name_index" yaml:"section_name_index"`
}

func NewDocument(h elf.Header) Document {
	return Document{
		Ident: IdentDocument{
			Class:      Code{h.Ident.Class.String(), uint64(h.Ident.Class)},
			Encoding:   Code{h.Ident.Encoding.String(), uint64(h.Ident.Encoding)},
			Version:    h.Ident.Version,
			Abi:        Code{h.Ident.Abi.String(), uint64(h.Ident.Abi)},
			AbiVersion: h.Ident.AbiVersion,
		},
		Type:         Code{h.Type.String(), uint64(h.Type)},
		Machine:      Code{h.Machine.String(), uint64(h.Machine)},
		Version:      h.Version,
		Entry:        h.Entry.String(),
		PHTOffset:    h.PHTOffset.String(),
		SHTOffset:    h.SHTOffset.String(),
		Flags:        h.Flags.String(),
		HeaderSize:   h.HeaderSize,
		PHTEntrySize: h.PHTEntrySize,
		PHTEntryNum:  h.PHTEntryNum,
		SHTEntrySize: h.SHTEntrySize,
		SHTEntryNum:  h.SHTEntryNum,
		SHTNameIndex: h.SHTNameIndex,
	}
}

type Options struct {
	// Color enables styled headings in text output. Structured formats
	// are never colored.
	Color bool
	// Source is shown as the first line of text output when set.
	Source string
}

// Write renders h to w in the requested format.
func Write(w io.Writer, h elf.Header, format Format, opts Options) error {
	switch format {
	case FormatText, "":
		return writeText(w, h, opts)
	case FormatJSON:
		b, err := json.MarshalIndent(NewDocument(h), "", "  ")
		if err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(h)); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

type field struct {
	key   string
	value string
}

func writeText(w io.Writer, h elf.Header, opts Options) error {
	r := lipgloss.NewRenderer(w)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	heading := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))
	key := r.NewStyle().Foreground(lipgloss.Color("#888888"))

	ident, header := fields(h)

	width := 0
	for _, fs := range [][]field{ident, header} {
		for _, f := range fs {
			width = max(width, len(f.key))
		}
	}

	var b strings.Builder
	if opts.Source != "" {
		fmt.Fprintf(&b, "File: %s\n", opts.Source)
	}
	section := func(title string, rows []field) {
		b.WriteString(heading.Render(title))
		b.WriteByte('\n')
		for _, f := range rows {
			pad := strings.Repeat(" ", width-len(f.key))
			fmt.Fprintf(&b, "  %s:%s %s\n", key.Render(f.key), pad, f.value)
		}
	}
	section("Identifier", ident)
	b.WriteByte('\n')
	section("Header", header)

	_, err := io.WriteString(w, b.String())
	return err
}

// fields lists the Identifier and Header rows shared by the text report and
// Diff.
func fields(h elf.Header) (ident, header []field) {
	ident = []field{
		{"Class", h.Ident.Class.String()},
		{"Data", h.Ident.Encoding.String()},
		{"Version", fmt.Sprintf("%d", h.Ident.Version)},
		{"OS/ABI", h.Ident.Abi.String()},
		{"ABI Version", fmt.Sprintf("%d", h.Ident.AbiVersion)},
	}
	header = []field{
		{"Type", h.Type.String()},
		{"Machine", h.Machine.String()},
		{"Version", fmt.Sprintf("%#x", h.Version)},
		{"Entry point", h.Entry.String()},
		{"Program headers at", h.PHTOffset.String()},
		{"Section headers at", h.SHTOffset.String()},
		{"Flags", h.Flags.String()},
		{"Header size", fmt.Sprintf("%d", h.HeaderSize)},
		{"Program header size", fmt.Sprintf("%d", h.PHTEntrySize)},
		{"Program headers", fmt.Sprintf("%d", h.PHTEntryNum)},
		{"Section header size", fmt.Sprintf("%d", h.SHTEntrySize)},
		{"Section headers", fmt.Sprintf("%d", h.SHTEntryNum)},
		{"Section name index", fmt.Sprintf("%d", h.SHTNameIndex)},
	}
	return ident, header
}
