package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/qntx/zcheck/internal/codec"
	"github.com/qntx/zcheck/internal/verify"
)

// SelectSpec fills a verification spec interactively.
func SelectSpec(spec *verify.Spec) (*verify.Spec, error) {
	var (
		codecIdx int
		text     string
		capacity string
	)

	codecs := codec.All()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Codec").
				Description("Compression algorithm to verify").
				Options(indexedOptions(codecs, func(c codec.Codec) string { return c.String() })...).
				Value(&codecIdx),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Input Text").
				Description("Text to round-trip (empty for the demo string)").
				Placeholder(verify.DefaultText).
				Value(&text),

			huh.NewInput().
				Title("Buffer Capacity").
				Description("Compressed and decompressed buffer size in bytes").
				Placeholder(strconv.Itoa(verify.DefaultCapacity)).
				Value(&capacity).
				Validate(validCapacity),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}

	spec.Codec = codecs[codecIdx].String()
	spec.Text = strings.TrimSpace(text)
	if capacity != "" {
		n, _ := strconv.Atoi(capacity)
		spec.CompressCap = n
		spec.DecompressCap = n
	}

	return spec, nil
}

func indexedOptions[T any](items []T, label func(T) string) []huh.Option[int] {
	opts := make([]huh.Option[int], len(items))
	for i, item := range items {
		opts[i] = huh.NewOption(label(item), i)
	}
	return opts
}

func validCapacity(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("capacity must be a positive integer")
	}
	return nil
}
