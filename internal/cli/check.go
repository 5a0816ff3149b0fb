package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/qntx/zcheck/internal/tui"
	"github.com/qntx/zcheck/internal/ui"
	"github.com/qntx/zcheck/internal/verify"
)

type checkFlags struct {
	config      string
	names       []string
	codecs      []string
	capacity    int
	interactive bool
	verbose     bool
}

var (
	cFlags   checkFlags
	checkCmd = &cobra.Command{
		Use:   "check [text]",
		Short: "Round-trip text through compression codecs",
		Long: `Check compresses the given text into a fixed-capacity buffer, decompresses
it again and compares the result byte for byte against the original.

With no arguments and no config it reproduces the classic installation
check: the fixed demo string, the zlib codec, two 100-byte buffers.

Configuration can be loaded from zcheck.toml in the current or parent
directories. CLI flags override config file values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
)

func init() {
	f := checkCmd.Flags()
	f.StringVarP(&cFlags.config, "config", "c", "", "config file path (default: zcheck.toml)")
	f.StringSliceVarP(&cFlags.names, "name", "n", nil, "named checks from config (comma-separated or repeated)")
	f.StringSliceVar(&cFlags.codecs, "codec", nil, "codecs to verify (comma-separated or repeated)")
	f.IntVar(&cFlags.capacity, "capacity", 0, "buffer capacity in bytes for both stages")
	f.BoolVarP(&cFlags.interactive, "interactive", "i", false, "interactive mode")
	f.BoolVarP(&cFlags.verbose, "verbose", "v", false, "verbose output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	specs, err := loadSpecs(cmd, args)
	if err != nil {
		return err
	}

	if len(specs) > 1 {
		ui.Info("running %d checks", len(specs))
	}

	var failed int
	for i, spec := range specs {
		if err := runSingleCheck(spec, i, len(specs)); err != nil {
			ui.Error("%v", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(specs))
	}
	return nil
}

func runSingleCheck(spec *verify.Spec, idx, total int) error {
	spec.Normalize()
	if err := spec.Validate(); err != nil {
		return err
	}

	if total > 1 {
		fmt.Fprintf(os.Stderr, "\n[%d/%d] %s\n", idx+1, total, checkTitle(spec))
	}

	res, err := verify.Run(spec)
	if err != nil {
		return err
	}

	fmt.Printf("Original:     %s\n", res.Original)
	fmt.Printf("Decompressed: %s\n", res.Decompressed)

	if cFlags.verbose {
		ui.Label("codec", res.Codec.String())
		ui.Label("compressed", ui.FormatSize(int64(len(res.Compressed))))
		ui.Dim("completed in %s", ui.FormatDuration(res.Duration))
	}

	ui.Success("%s round trip ok (%d → %d → %d bytes)",
		res.Codec, len(res.Original), len(res.Compressed), len(res.Decompressed))
	return nil
}

func loadSpecs(cmd *cobra.Command, args []string) ([]*verify.Spec, error) {
	if cFlags.interactive {
		spec, err := tui.SelectSpec(&verify.Spec{})
		if err != nil {
			return nil, fmt.Errorf("prompt: %w", err)
		}
		applyOverrides(&cFlags, cmd.Flags(), args, []*verify.Spec{spec})
		return []*verify.Spec{spec}, nil
	}

	flags := cmd.Flags()

	var specs []*verify.Spec
	if flags.Changed("codec") {
		// Explicit codecs bypass the config fan-out.
		specs = expandCodecs(cFlags.codecs)
	} else {
		var err error
		if specs, err = configSpecs(); err != nil {
			return nil, err
		}
	}

	applyOverrides(&cFlags, flags, args, specs)
	return specs, nil
}

func configSpecs() ([]*verify.Spec, error) {
	cfg, err := verify.LoadConfig(cFlags.config)
	if err != nil {
		if !errors.Is(err, verify.ErrConfigNotFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
		if len(cFlags.names) > 0 {
			return nil, errors.New("--name requires a config file")
		}
		return []*verify.Spec{{}}, nil
	}

	specs, err := cfg.ToSpecs(cFlags.names)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return specs, nil
}

func expandCodecs(names []string) []*verify.Spec {
	specs := make([]*verify.Spec, len(names))
	for i, name := range names {
		specs[i] = &verify.Spec{Codec: name}
	}
	return specs
}

func applyOverrides(f *checkFlags, flags *pflag.FlagSet, args []string, specs []*verify.Spec) {
	for _, s := range specs {
		if len(args) > 0 {
			s.Text = args[0]
		}
		if flags.Changed("capacity") {
			s.CompressCap = f.capacity
			s.DecompressCap = f.capacity
		}
	}
}

func checkTitle(spec *verify.Spec) string {
	if spec.Name != "" {
		return spec.Name + " (" + spec.Codec + ")"
	}
	return spec.Codec
}
