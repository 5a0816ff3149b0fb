package cli

import "testing"

func TestCodecCmd_Subcommands(t *testing.T) {
	subcommands := []string{"list", "info"}

	for _, name := range subcommands {
		t.Run(name, func(t *testing.T) {
			found := false
			for _, cmd := range codecCmd.Commands() {
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

func TestRunCodecList(t *testing.T) {
	if err := runCodecList(nil, nil); err != nil {
		t.Errorf("runCodecList() error = %v", err)
	}
}

func TestRunCodecInfo(t *testing.T) {
	t.Run("known codec", func(t *testing.T) {
		if err := runCodecInfo(nil, []string{"zlib"}); err != nil {
			t.Errorf("runCodecInfo() error = %v", err)
		}
	})

	t.Run("unknown codec", func(t *testing.T) {
		if err := runCodecInfo(nil, []string{"lzma"}); err == nil {
			t.Error("runCodecInfo() with unknown codec succeeded")
		}
	})
}
