// Command taburoute runs the cooperative truck/drone tabu search over a
// problem instance and writes its report to disk.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
