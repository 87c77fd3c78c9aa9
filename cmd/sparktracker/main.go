// Command sparktracker shows a progress tracker either in an SDL window or in
// the terminal and prints the page the user settles on.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// SPARK_* settings may live in a .env next to the binary.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
