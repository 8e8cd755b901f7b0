// Command levelgen generates daily word-placement puzzle levels.
package main

import (
	"fmt"
	"os"

	"github.com/crossplay/levelgen/cmd/levelgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
