package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

var ErrCapacity = errors.New("capacity exceeded")

// Codec identifies a supported compression algorithm.
type Codec int

const (
	Zlib Codec = iota
	Gzip
	Flate
	Zstd
	Xz
	Snappy
)

func (c Codec) String() string {
	return [...]string{"zlib", "gzip", "flate", "zstd", "xz", "snappy"}[c]
}

// Module returns the import path of the library backing the codec.
func (c Codec) Module() string {
	switch c {
	case Xz:
		return "github.com/ulikunitz/xz"
	case Snappy:
		return "github.com/golang/snappy"
	default:
		return "github.com/klauspost/compress"
	}
}

// All returns every supported codec in declaration order.
func All() []Codec {
	return []Codec{Zlib, Gzip, Flate, Zstd, Xz, Snappy}
}

// Parse resolves a codec by name.
func Parse(name string) (Codec, error) {
	for _, c := range All() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown codec %q", name)
}

// Shared zstd instances, safe for concurrent use.
var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// Compress encodes src in one shot at the codec's default settings.
// It fails with ErrCapacity when the encoded form exceeds capacity;
// no partial output is returned on failure.
func Compress(c Codec, src []byte, capacity int) ([]byte, error) {
	out, err := encode(c, src)
	if err != nil {
		return nil, err
	}
	if len(out) > capacity {
		return nil, fmt.Errorf("%w: %d bytes into %d-byte buffer", ErrCapacity, len(out), capacity)
	}
	return out, nil
}

// Decompress decodes a stream produced by Compress. The payload must fit
// in capacity-1 bytes; the last slot is reserved so the result can be
// terminated for display. Oversized payloads fail with ErrCapacity
// instead of being truncated.
func Decompress(c Codec, src []byte, capacity int) ([]byte, error) {
	out, err := decode(c, src, capacity)
	if err != nil {
		return nil, err
	}
	if len(out) >= capacity {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrCapacity, capacity-1)
	}
	return out, nil
}

func encode(c Codec, src []byte) ([]byte, error) {
	switch c {
	case Zstd:
		return zstdEncoder.EncodeAll(src, nil), nil
	case Snappy:
		return snappy.Encode(nil, src), nil
	default:
		return encodeWriter(c, src)
	}
}

func encodeWriter(c Codec, src []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := newWriter(c, &buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newWriter(c Codec, buf *bytes.Buffer) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriter(buf), nil
	case Flate:
		return flate.NewWriter(buf, flate.DefaultCompression)
	case Xz:
		return xz.NewWriter(buf)
	default:
		return zlib.NewWriter(buf), nil
	}
}

func decode(c Codec, src []byte, capacity int) ([]byte, error) {
	switch c {
	case Zstd:
		return zstdDecoder.DecodeAll(src, nil)
	case Snappy:
		return snappy.Decode(nil, src)
	default:
		r, err := newReader(c, bytes.NewReader(src))
		if err != nil {
			return nil, err
		}
		// Read one slot past the payload limit so overflow is
		// detected rather than silently clipped.
		return io.ReadAll(io.LimitReader(r, int64(capacity)))
	}
}

func newReader(c Codec, r io.Reader) (io.Reader, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)
	case Flate:
		return flate.NewReader(r), nil
	case Xz:
		return xz.NewReader(r)
	default:
		return zlib.NewReader(r)
	}
}
