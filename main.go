package main

import (
	"os"

	"github.com/domthu/bioseq/cmd"
)

func main() {
	// "bioseq docs" regenerates the Markdown docs in ./docs
	if len(os.Args) > 1 && os.Args[1] == "docs" {
		makeDocs()
		return
	}

	cmd.Execute() // initialize cobra commands
}
