package cmd

import (
	"sync"

	"github.com/spf13/cobra"

	"woocommerce.GO/core/registry"
)

var regMu sync.Mutex

// Register queues an extension command for the root command. Extensions call
// it from init(); registering after Apply panics.
func Register(c *cobra.Command) {
	regMu.Lock()
	defer regMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd: " + c.Use + " registered after the CLI was assembled")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(queued(), c))
}

func queued() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Apply attaches queued commands to rootCmd once; later calls are no-ops.
func Apply() {
	regMu.Lock()
	defer regMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		return
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
	rootCmd.AddCommand(queued()...)
}
