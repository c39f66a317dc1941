//go:build cli

package main

import (
	"os"

	_ "woocommerce.GO/custom"

	"woocommerce.GO/cmd"
	"woocommerce.GO/config"
)

func main() {
	config.LoadEnv()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
