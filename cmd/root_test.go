package cmd

import "testing"

// every verb should be registered on the root command
func Test_commandsRegistered(t *testing.T) {
	want := []string{
		"comp",
		"complement",
		"translate",
		"stats",
		"random",
		"splice",
		"window",
		"fasta",
	}

	registered := make(map[string]bool)
	for _, c := range RootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}
