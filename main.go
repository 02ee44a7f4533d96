// main holds the entry logic for the riskboard CLI.
package main

import (
	"fmt"
	"os"

	"riskboard/cmd"
	"riskboard/internal/iocache"
)

func main() {
	os.Exit(run())
}

// run wraps the command dispatch so deferred cleanup survives os.Exit.
func run() int {
	cmd.SetCacheManager(iocache.Manager)
	defer iocache.CloseStores()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			fmt.Println("⚠️  Warning: could not stop profiling:", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		return 1
	}
	return 0
}
