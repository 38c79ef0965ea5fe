package elf

import (
	"encoding/binary"
	"fmt"
)

// Class is the word size selector in e_ident[EI_CLASS].
type Class uint8

const (
	ClassNone Class = 0
	Class32   Class = 1
	Class64   Class = 2
	ClassNum  Class = 3
)

var classTable = &codeTable[Class]{
	name:  "Class",
	width: 1,
	names: map[Class]string{
		ClassNone: "None",
		Class32:   "ELF32",
		Class64:   "ELF64",
		ClassNum:  "Num",
	},
}

func (c Class) String() string { return classTable.format(c) }

// WordSize returns the on-disk width of addresses and offsets.
func (c Class) WordSize() (int, error) {
	switch c {
	case Class32:
		return 4, nil
	case Class64:
		return 8, nil
	default:
		return 0, ErrUnsupportedClass
	}
}

// HeaderSize returns the structural size of the whole header for the class:
// 52 bytes for ELF32 and 64 bytes for ELF64.
func (c Class) HeaderSize() (int, error) {
	word, err := c.WordSize()
	if err != nil {
		return 0, err
	}
	// e_ident, e_type, e_machine, e_version, three words, e_flags and six
	// halfwords.
	return IdentSize + 2*2 + 4 + 3*word + 4 + 6*2, nil
}

// Encoding is the byte order selector in e_ident[EI_DATA].
type Encoding uint8

const (
	EncodingNone Encoding = 0
	EncodingLSB  Encoding = 1
	EncodingMSB  Encoding = 2
	EncodingNum  Encoding = 3
)

var encodingTable = &codeTable[Encoding]{
	name:  "Encoding",
	width: 1,
	names: map[Encoding]string{
		EncodingNone: "None",
		EncodingLSB:  "LittleEndian",
		EncodingMSB:  "BigEndian",
		EncodingNum:  "Num",
	},
}

func (e Encoding) String() string { return encodingTable.format(e) }

// ByteOrder resolves the encoding to the byte order of every multi-byte
// field that follows e_ident.
func (e Encoding) ByteOrder() (binary.ByteOrder, error) {
	switch e {
	case EncodingLSB:
		return binary.LittleEndian, nil
	case EncodingMSB:
		return binary.BigEndian, nil
	default:
		return nil, ErrUnsupportedEncoding
	}
}

// Abi is the OS/ABI identification in e_ident[EI_OSABI].
type Abi uint8

const (
	AbiSysV       Abi = 0
	AbiHPUX       Abi = 1
	AbiNetBSD     Abi = 2
	AbiGNU        Abi = 3
	AbiSolaris    Abi = 6
	AbiAIX        Abi = 7
	AbiIrix       Abi = 8
	AbiFreeBSD    Abi = 9
	AbiTRU64      Abi = 10
	AbiModesto    Abi = 11
	AbiOpenBSD    Abi = 12
	AbiARM_EABI   Abi = 64
	AbiARM        Abi = 97
	AbiStandalone Abi = 255
)

var abiTable = &codeTable[Abi]{
	name:  "Abi",
	width: 1,
	names: map[Abi]string{
		AbiSysV:       "SysV",
		AbiHPUX:       "HP-UX",
		AbiNetBSD:     "NetBSD",
		AbiGNU:        "GNU",
		AbiSolaris:    "Solaris",
		AbiAIX:        "AIX",
		AbiIrix:       "IRIX",
		AbiFreeBSD:    "FreeBSD",
		AbiTRU64:      "TRU64",
		AbiModesto:    "Modesto",
		AbiOpenBSD:    "OpenBSD",
		AbiARM_EABI:   "ARM EABI",
		AbiARM:        "ARM",
		AbiStandalone: "Standalone",
	},
}

func (a Abi) String() string { return abiTable.format(a) }

// Type is the object file type in e_type.
type Type uint16

const (
	TypeNone   Type = 0
	TypeRel    Type = 1
	TypeExec   Type = 2
	TypeDyn    Type = 3
	TypeCore   Type = 4
	TypeNum    Type = 5
	TypeLoOS   Type = 0xfe00
	TypeHiOS   Type = 0xfeff
	TypeLoProc Type = 0xff00
	TypeHiProc Type = 0xffff
)

// Values anywhere inside the OS and processor bands are accepted and kept
// verbatim; only their boundaries have names.
var typeTable = &codeTable[Type]{
	name:  "Type",
	width: 2,
	names: map[Type]string{
		TypeNone:   "None",
		TypeRel:    "Rel",
		TypeExec:   "Exec",
		TypeDyn:    "Dyn",
		TypeCore:   "Core",
		TypeNum:    "Num",
		TypeLoOS:   "LoOS",
		TypeHiOS:   "HiOS",
		TypeLoProc: "LoProc",
		TypeHiProc: "HiProc",
	},
	ranges: []codeRange[Type]{
		{lo: TypeLoOS, hi: TypeHiOS, name: "OS-specific"},
		{lo: TypeLoProc, hi: TypeHiProc, name: "Processor-specific"},
	},
}

func (t Type) String() string { return typeTable.format(t) }

// Address is a virtual address, widened to 64 bits.
type Address uint64

func (a Address) String() string { return fmt.Sprintf("%#x", uint64(a)) }

// Offset is a file offset, widened to 64 bits.
type Offset uint64

func (o Offset) String() string { return fmt.Sprintf("%#x", uint64(o)) }

// Size is a byte count, widened to 64 bits.
type Size uint64

func (s Size) String() string { return fmt.Sprintf("%d", uint64(s)) }

// Flags is the processor-specific e_flags bit field. It is never decoded.
type Flags uint32

func (f Flags) String() string { return fmt.Sprintf("%#b", uint32(f)) }
