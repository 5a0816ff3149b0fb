package cli

import "testing"

func TestRootCmd(t *testing.T) {
	t.Run("use", func(t *testing.T) {
		if rootCmd.Use != "zcheck" {
			t.Errorf("Use = %q, want 'zcheck'", rootCmd.Use)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		if len(rootCmd.Commands()) == 0 {
			t.Error("rootCmd has no subcommands")
		}
	})

	for _, name := range []string{"check", "probe", "codec"} {
		t.Run("has "+name+" command", func(t *testing.T) {
			found := false
			for _, cmd := range rootCmd.Commands() {
				if cmd.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("missing %q subcommand", name)
			}
		})
	}
}
