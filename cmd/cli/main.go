package main

import (
	"fmt"
	"os"

	_ "github.com/crucial707/cronlens/cmd/cli/describe"
	_ "github.com/crucial707/cronlens/cmd/cli/normalize"
	_ "github.com/crucial707/cronlens/cmd/cli/presets"
	"github.com/crucial707/cronlens/cmd/cli/root"
	_ "github.com/crucial707/cronlens/cmd/cli/token"
)

func main() {
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
