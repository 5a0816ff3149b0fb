package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qntx/zcheck/internal/codec"
	"github.com/qntx/zcheck/internal/ui"
	"github.com/qntx/zcheck/internal/verify"
)

// ----------------------------------------------------------------------------
// Commands
// ----------------------------------------------------------------------------

var (
	codecCmd = &cobra.Command{
		Use:   "codec",
		Short: "Inspect supported codecs",
	}

	codecListCmd = &cobra.Command{
		Use:   "list",
		Short: "List supported codecs",
		RunE:  runCodecList,
	}

	codecInfoCmd = &cobra.Command{
		Use:   "info <name>",
		Short: "Show codec details",
		Args:  cobra.ExactArgs(1),
		RunE:  runCodecInfo,
	}
)

func init() {
	codecCmd.AddCommand(codecListCmd, codecInfoCmd)
	rootCmd.AddCommand(codecCmd)
}

// ----------------------------------------------------------------------------
// Handlers
// ----------------------------------------------------------------------------

func runCodecList(_ *cobra.Command, _ []string) error {
	fmt.Println("supported codecs:")
	for _, c := range codec.All() {
		fmt.Printf("  %-8s %s\n", c, c.Module())
	}
	return nil
}

func runCodecInfo(_ *cobra.Command, args []string) error {
	c, err := codec.Parse(args[0])
	if err != nil {
		return err
	}

	demo := []byte(verify.DefaultText)
	compressed, err := codec.Compress(c, demo, verify.DefaultCapacity)
	if err != nil {
		return fmt.Errorf("demo compression: %w", err)
	}

	fmt.Printf("name:       %s\n", c)
	fmt.Printf("module:     %s\n", c.Module())
	fmt.Printf("demo input: %s\n", ui.FormatSize(int64(len(demo))))
	fmt.Printf("compressed: %s\n", ui.FormatSize(int64(len(compressed))))
	return nil
}
