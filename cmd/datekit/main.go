// Command datekit formats, parses and manipulates dates from the shell.
package main

import (
	"os"

	"github.com/goliatone/go-datekit/cmd/datekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
