package cmderr

import (
	"github.com/rpaste-cli/rpaste/cfg"
	"github.com/rpaste-cli/rpaste/pasteerr"
	"github.com/rpaste-cli/rpaste/printer"
)

// Checks that a server address is configured.
// If not, a hint on how to configure one is printed and an error is returned.
func RequireServerAddress(c *cfg.Config) error {
	if c.Server.Address != "" {
		return nil
	}

	printer.Infof("Please set server.address in %s, set the RPASTE_SERVER_ADDRESS environment variable or pass --server.\n", cfg.DefaultConfigPath())
	return PasteErr{Err: pasteerr.New(pasteerr.NoServerAddress, "")}
}
