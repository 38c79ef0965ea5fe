package elf

import "encoding/binary"

// input is an immutable view of the bytes still to decode. Every read returns
// the advanced view and leaves the receiver untouched.
type input struct {
	buf []byte
	off int
}

func newInput(data []byte) input {
	return input{buf: data}
}

func (in input) remaining() []byte {
	return in.buf[in.off:]
}

func (in input) take(n int) ([]byte, input, error) {
	rest := len(in.buf) - in.off
	if n > rest {
		return nil, in, &IncompleteError{Needed: n - rest}
	}
	b := in.buf[in.off : in.off+n : in.off+n]
	in.off += n
	return b, in, nil
}

func (in input) u8() (uint8, input, error) {
	b, next, err := in.take(1)
	if err != nil {
		return 0, in, err
	}
	return b[0], next, nil
}

func (in input) u16(order binary.ByteOrder) (uint16, input, error) {
	b, next, err := in.take(2)
	if err != nil {
		return 0, in, err
	}
	return order.Uint16(b), next, nil
}

func (in input) u32(order binary.ByteOrder) (uint32, input, error) {
	b, next, err := in.take(4)
	if err != nil {
		return 0, in, err
	}
	return order.Uint32(b), next, nil
}

func (in input) u64(order binary.ByteOrder) (uint64, input, error) {
	b, next, err := in.take(8)
	if err != nil {
		return 0, in, err
	}
	return order.Uint64(b), next, nil
}

// u16e and u32e read a raw field in the byte order selected by enc.

func (in input) u16e(enc Encoding) (uint16, input, error) {
	order, err := enc.ByteOrder()
	if err != nil {
		return 0, in, err
	}
	return in.u16(order)
}

func (in input) u32e(enc Encoding) (uint32, input, error) {
	order, err := enc.ByteOrder()
	if err != nil {
		return 0, in, err
	}
	return in.u32(order)
}
