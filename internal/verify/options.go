package verify

import (
	"errors"
	"fmt"

	"github.com/qntx/zcheck/internal/codec"
)

// Defaults reproduce the classic zlib installation check: a fixed ASCII
// string round-tripped through two 100-byte buffers.
const (
	DefaultText     = "Hello from zlib via conda forge!"
	DefaultCodec    = "zlib"
	DefaultCapacity = 100
)

// Spec configures one round-trip verification.
type Spec struct {
	// Identity
	Name string

	// Input
	Text  string
	Codec string

	// Buffer capacities
	CompressCap   int
	DecompressCap int
}

// Normalize applies defaults for unset fields.
func (s *Spec) Normalize() {
	if s.Text == "" {
		s.Text = DefaultText
	}
	if s.Codec == "" {
		s.Codec = DefaultCodec
	}
	if s.CompressCap == 0 {
		s.CompressCap = DefaultCapacity
	}
	if s.DecompressCap == 0 {
		s.DecompressCap = DefaultCapacity
	}
}

// Validate checks spec constraints.
func (s *Spec) Validate() error {
	if _, err := codec.Parse(s.Codec); err != nil {
		return err
	}
	if s.CompressCap < 1 {
		return fmt.Errorf("invalid compress capacity %d", s.CompressCap)
	}
	if s.DecompressCap < 1 {
		return fmt.Errorf("invalid decompress capacity %d", s.DecompressCap)
	}
	if len(s.Text) > s.DecompressCap-1 {
		return errors.New("input cannot fit the decompress buffer")
	}
	return nil
}
