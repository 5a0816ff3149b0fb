package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zcheck",
	Short: "Compression library smoke tester",
	Long: `zcheck verifies that compression libraries are usable by round-tripping
data through them under fixed buffer capacities, and by comparing each
library's compile-time version with the one actually linked at runtime.

Running 'zcheck check' with no flags reproduces the classic zlib
installation check: compress a fixed string into a 100-byte buffer,
decompress it again, and print both.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
