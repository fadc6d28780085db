// Command arcana lays out a deck of tarot cards on a table that can be
// dragged, swapped and flipped.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
