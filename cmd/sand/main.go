// Command sand inspects scalable clocks and easing curves from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/sand/cmd/sand/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
