package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/flexmobile/shop/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flexshop",
		Short: "FlexMobile Shop server",
		Long:  `FlexMobile Shop is a small storefront with a JSON-file document store: public visitors browse products and place cash-on-delivery orders, an access-code-gated admin manages the catalog and order statuses.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
