package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/portalkit/portalkit/internal/interfaces/cli/migrate"
	"github.com/portalkit/portalkit/internal/interfaces/cli/server"
	"github.com/portalkit/portalkit/internal/shared/version"
)

// @title PortalKit API
// @version 1.0
// @description Accounts, organization, permissions, subscriptions and AI chat for the portal.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:     "portalkit",
		Short:   "PortalKit - user portal backend",
		Long:    `PortalKit serves accounts, organization structure, permissions, subscription plans and AI chat over HTTP.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
