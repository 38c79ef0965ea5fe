package elf

import "bytes"

const (
	// IdentSize is the fixed length of e_ident.
	IdentSize = 16
	// Magic opens every ELF file.
	Magic = "\x7fELF"
)

// Identifier is the decoded e_ident block.
type Identifier struct {
	Class      Class
	Encoding   Encoding
	Version    uint8
	Abi        Abi
	AbiVersion uint8
}

// decodeIdentifier consumes exactly IdentSize bytes. The trailing padding is
// whatever the typed fields left over.
func decodeIdentifier(in input) (Identifier, input, error) {
	var id Identifier
	start := in.off

	// A short buffer is only incomplete while it is still a prefix of the
	// magic.
	avail := in.remaining()
	avail = avail[:min(len(avail), len(Magic))]
	if !bytes.Equal(avail, []byte(Magic[:len(avail)])) {
		return id, in, withContext("ei_mag", in, &MagicError{Found: bytes.Clone(avail)})
	}
	_, next, err := in.take(len(Magic))
	if err != nil {
		return id, in, withContext("ei_mag", in, err)
	}
	in = next

	if id.Class, next, err = decodeCode(in, classTable, EncodingNone); err != nil {
		return Identifier{}, in, withContext("ei_class", in, err)
	}
	in = next

	if id.Encoding, next, err = decodeCode(in, encodingTable, EncodingNone); err != nil {
		return Identifier{}, in, withContext("ei_data", in, err)
	}
	in = next

	if id.Version, next, err = in.u8(); err != nil {
		return Identifier{}, in, withContext("ei_version", in, err)
	}
	in = next

	if id.Abi, next, err = decodeCode(in, abiTable, EncodingNone); err != nil {
		return Identifier{}, in, withContext("ei_osabi", in, err)
	}
	in = next

	if id.AbiVersion, next, err = in.u8(); err != nil {
		return Identifier{}, in, withContext("ei_abiversion", in, err)
	}
	in = next

	if _, next, err = in.take(IdentSize - (in.off - start)); err != nil {
		return Identifier{}, in, withContext("ei_pad", in, err)
	}
	return id, next, nil
}
