package elf

// word is the set of newtypes whose on-disk width follows the class.
type word interface {
	Address | Offset | Size
}

// decodeWord reads a 4-byte field for ELF32 or an 8-byte field for ELF64 and
// widens it to 64 bits.
func decodeWord[T word](in input, class Class, enc Encoding) (T, input, error) {
	order, err := enc.ByteOrder()
	if err != nil {
		return 0, in, err
	}
	switch class {
	case Class32:
		v, next, err := in.u32(order)
		if err != nil {
			return 0, in, err
		}
		return T(uint64(v)), next, nil
	case Class64:
		v, next, err := in.u64(order)
		if err != nil {
			return 0, in, err
		}
		return T(v), next, nil
	default:
		return 0, in, ErrUnsupportedClass
	}
}
