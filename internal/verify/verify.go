package verify

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/qntx/zcheck/internal/codec"
)

var (
	ErrCompression   = errors.New("compression failed")
	ErrDecompression = errors.New("decompression failed")
	ErrIntegrity     = errors.New("round trip mismatch")
)

// Result holds the outcome of a successful round trip.
type Result struct {
	Codec        codec.Codec
	Original     []byte
	Compressed   []byte
	Decompressed []byte
	Duration     time.Duration
}

// Run compresses the spec's input, decompresses it again and compares the
// result byte for byte. The two stages run as a single linear pipeline:
// the first failure terminates the verification, and a clean round trip
// that still yields different bytes is reported as ErrIntegrity rather
// than a stage failure.
func Run(spec *Spec) (*Result, error) {
	c, err := codec.Parse(spec.Codec)
	if err != nil {
		return nil, err
	}

	original := []byte(spec.Text)
	start := time.Now()

	compressed, err := codec.Compress(c, original, spec.CompressCap)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompression, c, err)
	}

	decompressed, err := codec.Decompress(c, compressed, spec.DecompressCap)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecompression, c, err)
	}

	if !bytes.Equal(decompressed, original) {
		return nil, fmt.Errorf("%w: %s: got %d bytes, want %d", ErrIntegrity, c, len(decompressed), len(original))
	}

	return &Result{
		Codec:        c,
		Original:     original,
		Compressed:   compressed,
		Decompressed: decompressed,
		Duration:     time.Since(start),
	}, nil
}
