package elf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMagicMismatch       = errors.New("magic mismatch")
	ErrUnknownCode         = errors.New("unknown code")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrUnsupportedClass    = errors.New("unsupported class")
	// ErrIncomplete means the input ended before the current field. Supplying
	// more bytes and decoding again may succeed.
	ErrIncomplete = errors.New("incomplete input")
)

// MagicError reports the bytes found where the ELF magic was expected.
type MagicError struct {
	Found []byte
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("expected magic % x, found % x", Magic, e.Found)
}

func (e *MagicError) Unwrap() error {
	return ErrMagicMismatch
}

// UnknownCodeError reports a discriminant that is not in the closed table of
// its enumeration.
type UnknownCodeError struct {
	Enum  string
	Value uint64
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %#x", e.Enum, e.Value)
}

func (e *UnknownCodeError) Unwrap() error {
	return ErrUnknownCode
}

// IncompleteError reports how many more bytes the failing field needed.
type IncompleteError struct {
	Needed int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete input: need %d more bytes", e.Needed)
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// DecodeError is the diagnostic attached to every failed decode. Context
// holds the labels of the enclosing decode steps, most specific first.
// Offset is the input position of the innermost failing step.
type DecodeError struct {
	Context []string
	Offset  int
	Cause   error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("elf: ")
	for i := len(e.Context) - 1; i >= 0; i-- {
		b.WriteString(e.Context[i])
		b.WriteString(": ")
	}
	if e.Cause != nil {
		b.WriteString(e.Cause.Error())
	} else {
		b.WriteString("decode failed")
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Incomplete reports whether decoding stopped only because input ran out.
func (e *DecodeError) Incomplete() bool {
	return errors.Is(e.Cause, ErrIncomplete)
}

// withContext pushes label onto the diagnostic of err. The first call for a
// failure records the offset of the step that produced it.
func withContext(label string, at input, err error) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		de.Context = append(de.Context, label)
		return de
	}
	return &DecodeError{
		Context: []string{label},
		Offset:  at.off,
		Cause:   err,
	}
}
