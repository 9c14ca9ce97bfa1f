package cmd

import "testing"

// size and step must default to zero so the handler can fall back to
// the settings file at run time, after cobra has read it in
func Test_windowFlagsDeferToConfig(t *testing.T) {
	for _, name := range []string{"size", "step"} {
		flag := windowCmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("window command has no --%s flag", name)
		}
		if flag.DefValue != "0" {
			t.Errorf("window --%s default = %s, want 0", name, flag.DefValue)
		}
	}
}
