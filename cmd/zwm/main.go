package main

import (
	"os"

	"github.com/dcreager/zero-width-watermark-go/internal/cmd"
)

// Set via ldflags at release time.
var (
	commit  = "HEAD"
	version = "latest"
)

func main() {
	if err := cmd.Execute(version, commit); err != nil {
		os.Exit(1)
	}
}
