package elf

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestEncodingByteOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		enc  Encoding
		want binary.ByteOrder
		err  error
	}{
		{EncodingLSB, binary.LittleEndian, nil},
		{EncodingMSB, binary.BigEndian, nil},
		{EncodingNone, nil, ErrUnsupportedEncoding},
		{EncodingNum, nil, ErrUnsupportedEncoding},
		{Encoding(0x80), nil, ErrUnsupportedEncoding},
	}

	for _, tt := range tests {
		got, err := tt.enc.ByteOrder()
		if !errors.Is(err, tt.err) {
			t.Errorf("%v: error got %v, want %v", tt.enc, err, tt.err)
		}
		if got != tt.want {
			t.Errorf("%v: order got %v, want %v", tt.enc, got, tt.want)
		}
	}
}

func TestClassSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class  Class
		word   int
		header int
		err    error
	}{
		{Class32, 4, 52, nil},
		{Class64, 8, 64, nil},
		{ClassNone, 0, 0, ErrUnsupportedClass},
		{ClassNum, 0, 0, ErrUnsupportedClass},
	}

	for _, tt := range tests {
		word, err := tt.class.WordSize()
		if word != tt.word || !errors.Is(err, tt.err) {
			t.Errorf("%v: WordSize() = %d, %v; want %d, %v", tt.class, word, err, tt.word, tt.err)
		}
		header, err := tt.class.HeaderSize()
		if header != tt.header || !errors.Is(err, tt.err) {
			t.Errorf("%v: HeaderSize() = %d, %v; want %d, %v", tt.class, header, err, tt.header, tt.err)
		}
	}
}

func TestDecodeWord(t *testing.T) {
	t.Parallel()

	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0xff}

	tests := []struct {
		class    Class
		enc      Encoding
		want     uint64
		consumed int
	}{
		{Class32, EncodingLSB, 0x04030201, 4},
		{Class32, EncodingMSB, 0x01020304, 4},
		{Class64, EncodingLSB, 0x0807060504030201, 8},
		{Class64, EncodingMSB, 0x0102030405060708, 8},
	}

	for _, tt := range tests {
		addr, next, err := decodeWord[Address](newInput(data), tt.class, tt.enc)
		if err != nil {
			t.Fatalf("%v/%v: %v", tt.class, tt.enc, err)
		}
		if uint64(addr) != tt.want || next.off != tt.consumed {
			t.Errorf("%v/%v: got %#x after %d bytes, want %#x after %d", tt.class, tt.enc, uint64(addr), next.off, tt.want, tt.consumed)
		}

		size, _, err := decodeWord[Size](newInput(data), tt.class, tt.enc)
		if err != nil || uint64(size) != tt.want {
			t.Errorf("%v/%v: Size got %d, %v", tt.class, tt.enc, size, err)
		}
	}

	if _, _, err := decodeWord[Offset](newInput(data), ClassNone, EncodingLSB); !errors.Is(err, ErrUnsupportedClass) {
		t.Errorf("class none: got %v, want ErrUnsupportedClass", err)
	}
	if _, _, err := decodeWord[Offset](newInput(data), Class64, EncodingNum); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("encoding num: got %v, want ErrUnsupportedEncoding", err)
	}
	if _, _, err := decodeWord[Offset](newInput(data[:6]), Class64, EncodingLSB); !errors.Is(err, ErrIncomplete) {
		t.Errorf("short input: got %v, want ErrIncomplete", err)
	}
}

func TestDecodeCodeStrict(t *testing.T) {
	t.Parallel()

	v, next, err := decodeCode(newInput([]byte{0x3e, 0x00}), machineTable, EncodingLSB)
	if err != nil || v != MachineX86_64 || next.off != 2 {
		t.Fatalf("got %v at %d, %v", v, next.off, err)
	}
	v, _, err = decodeCode(newInput([]byte{0x00, 0x3e}), machineTable, EncodingMSB)
	if err != nil || v != MachineX86_64 {
		t.Fatalf("big endian: got %v, %v", v, err)
	}

	_, _, err = decodeCode(newInput([]byte{0x04}), abiTable, EncodingNone)
	var unknown *UnknownCodeError
	if !errors.As(err, &unknown) || unknown.Enum != "Abi" || unknown.Value != 4 {
		t.Errorf("abi 4: got %v, want UnknownCode{Abi, 4}", err)
	}

	if _, _, err := decodeCode(newInput([]byte{0x3e, 0x00}), machineTable, EncodingNone); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("machine without encoding: got %v", err)
	}
}

func TestDisplayConventions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  string
		want string
	}{
		{Address(0x401000).String(), "0x401000"},
		{Offset(64).String(), "0x40"},
		{Size(64).String(), "64"},
		{Flags(0x5).String(), "0b101"},
		{Class64.String(), "ELF64"},
		{EncodingMSB.String(), "BigEndian"},
		{AbiGNU.String(), "GNU"},
		{TypeDyn.String(), "Dyn"},
		{MachineAArch64.String(), "AArch64"},
		{MachineRISCV.String(), "RISC-V"},
		{Machine(0xffff).String(), "Machine(0xffff)"},
		{Class(9).String(), "Class(0x9)"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
