package elf

// Header is the decoded ELF file header. DecodeHeader returns it by value and
// nothing in this package modifies it afterwards.
type Header struct {
	Ident        Identifier
	Type         Type
	Machine      Machine
	// Version is the 4-byte e_version word.
	Version      uint32
	Entry        Address
	PHTOffset    Offset
	SHTOffset    Offset
	Flags        Flags
	HeaderSize   uint16
	PHTEntrySize uint16
	PHTEntryNum  uint16
	SHTEntrySize uint16
	SHTEntryNum  uint16
	SHTNameIndex uint16
}

const headerLabel = "elf header"

// DecodeHeader decodes the ELF header at the start of data and returns it
// together with the bytes that follow it.
//
// The class and encoding found in e_ident decide the width of the address
// and offset fields and the byte order of every multi-byte field. Failures
// are *DecodeError values; errors.Is(err, ErrIncomplete) tells a short buffer
// apart from a malformed one. No cross-field consistency checks are made.
func DecodeHeader(data []byte) (Header, []byte, error) {
	h, rest, err := decodeHeader(newInput(data))
	if err != nil {
		return Header{}, nil, withContext(headerLabel, rest, err)
	}
	return h, rest.remaining(), nil
}

func decodeHeader(in input) (Header, input, error) {
	var (
		h    Header
		next input
		err  error
	)

	if h.Ident, next, err = decodeIdentifier(in); err != nil {
		return Header{}, in, withContext("e_ident", in, err)
	}
	in = next
	class, enc := h.Ident.Class, h.Ident.Encoding

	if h.Type, next, err = decodeCode(in, typeTable, enc); err != nil {
		return Header{}, in, withContext("e_type", in, err)
	}
	in = next

	if h.Machine, next, err = decodeCode(in, machineTable, enc); err != nil {
		return Header{}, in, withContext("e_machine", in, err)
	}
	in = next

	if h.Version, next, err = in.u32e(enc); err != nil {
		return Header{}, in, withContext("e_version", in, err)
	}
	in = next

	if h.Entry, next, err = decodeWord[Address](in, class, enc); err != nil {
		return Header{}, in, withContext("e_entry", in, err)
	}
	in = next

	if h.PHTOffset, next, err = decodeWord[Offset](in, class, enc); err != nil {
		return Header{}, in, withContext("e_phoff", in, err)
	}
	in = next

	if h.SHTOffset, next, err = decodeWord[Offset](in, class, enc); err != nil {
		return Header{}, in, withContext("e_shoff", in, err)
	}
	in = next

	var flags uint32
	if flags, next, err = in.u32e(enc); err != nil {
		return Header{}, in, withContext("e_flags", in, err)
	}
	h.Flags = Flags(flags)
	in = next

	halves := []struct {
		label string
		dst   *uint16
	}{
		{"e_ehsize", &h.HeaderSize},
		{"e_phentsize", &h.PHTEntrySize},
		{"e_phnum", &h.PHTEntryNum},
		{"e_shentsize", &h.SHTEntrySize},
		{"e_shnum", &h.SHTEntryNum},
		{"e_shstrndx", &h.SHTNameIndex},
	}
	for _, f := range halves {
		if *f.dst, next, err = in.u16e(enc); err != nil {
			return Header{}, in, withContext(f.label, in, err)
		}
		in = next
	}

	return h, in, nil
}
