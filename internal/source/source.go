// Package source supplies header bytes to the decoder from files and streams.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/samcharles93/elfinfo/internal/logger"
	"github.com/samcharles93/elfinfo/pkg/elf"
)

type Options struct {
	// NoMmap forces plain reads even where mmap is available.
	NoMmap bool
}

// Buffer holds the bytes of an opened file. It must be closed to release
// any mapping.
type Buffer struct {
	data    []byte
	mmapped bool
}

// Open maps path read-only, falling back to reading it into memory when
// mmap is unavailable or disabled.
func Open(path string, opts Options) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file", path)
	}
	size64 := stat.Size()
	if size64 > int64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("%s: file too large", path)
	}
	size := int(size64)
	if size == 0 {
		return &Buffer{data: []byte{}}, nil
	}

	if !opts.NoMmap {
		data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
		if err == nil {
			return &Buffer{data: data, mmapped: true}, nil
		}
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Buffer{data: data}, nil
}

func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

func (b *Buffer) Mapped() bool { return b != nil && b.mmapped }

// Close releases the mapping. Bytes returns nil afterwards.
func (b *Buffer) Close() error {
	if b == nil || b.data == nil {
		return nil
	}
	var err error
	if b.mmapped {
		err = unix.Munmap(b.data)
	}
	b.data = nil
	b.mmapped = false
	return err
}

const streamChunk = 64

// DecodeStream reads r until the accumulated bytes hold a complete header.
// Decoding is retried after every read that ends in an incomplete result;
// a structural failure stops immediately. At EOF the last incomplete error
// is returned.
func DecodeStream(ctx context.Context, r io.Reader, log logger.Logger) (elf.Header, error) {
	if log == nil {
		log = logger.Discard()
	}

	buf := make([]byte, 0, streamChunk)
	chunk := make([]byte, streamChunk)
	var lastErr error
	for {
		if err := ctx.Err(); err != nil {
			return elf.Header{}, err
		}

		n, rerr := r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			h, _, err := elf.DecodeHeader(buf)
			if err == nil {
				log.Debug("decoded header from stream", "bytes", len(buf))
				return h, nil
			}
			if !errors.Is(err, elf.ErrIncomplete) {
				return elf.Header{}, err
			}
			log.Debug("header incomplete, reading more", "bytes", len(buf))
			lastErr = err
		}

		switch {
		case errors.Is(rerr, io.EOF):
			if lastErr == nil {
				// Nothing was read at all; report what an empty buffer lacks.
				_, _, lastErr = elf.DecodeHeader(buf)
			}
			return elf.Header{}, lastErr
		case rerr != nil:
			return elf.Header{}, fmt.Errorf("read input: %w", rerr)
		}
	}
}
