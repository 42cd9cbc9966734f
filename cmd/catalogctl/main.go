// Command catalogctl inspects and seeds the portfolio catalog.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(iconError+" "+err.Error()))
		os.Exit(1)
	}
}
