package elf

import "fmt"

type code interface {
	~uint8 | ~uint16
}

// codeRange is an inclusive band of values reserved as a whole, such as the
// OS-specific object types.
type codeRange[T code] struct {
	lo, hi T
	name   string
}

// codeTable is the closed set of named values of one enumeration.
type codeTable[T code] struct {
	name   string
	width  int
	names  map[T]string
	ranges []codeRange[T]
}

func (t *codeTable[T]) known(v T) bool {
	if _, ok := t.names[v]; ok {
		return true
	}
	for _, r := range t.ranges {
		if v >= r.lo && v <= r.hi {
			return true
		}
	}
	return false
}

func (t *codeTable[T]) format(v T) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	for _, r := range t.ranges {
		if v >= r.lo && v <= r.hi {
			return fmt.Sprintf("%s(%#x)", r.name, uint64(v))
		}
	}
	return fmt.Sprintf("%s(%#x)", t.name, uint64(v))
}

// decodeCode reads one value of the table's width and rejects anything the
// table does not know. enc is only consulted for multi-byte codes.
func decodeCode[T code](in input, t *codeTable[T], enc Encoding) (T, input, error) {
	var (
		raw  uint64
		next input
		err  error
	)
	switch t.width {
	case 1:
		var v uint8
		v, next, err = in.u8()
		raw = uint64(v)
	case 2:
		var v uint16
		v, next, err = in.u16e(enc)
		raw = uint64(v)
	default:
		panic(fmt.Sprintf("elf: %s table has unsupported width %d", t.name, t.width))
	}
	if err != nil {
		return 0, in, err
	}
	v := T(raw)
	if !t.known(v) {
		return 0, in, &UnknownCodeError{Enum: t.name, Value: raw}
	}
	return v, next, nil
}
