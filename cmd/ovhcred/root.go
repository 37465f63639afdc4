package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "ovhcred",
		Short:         "Inspect and scaffold OVH API credential files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Credential file path (defaults to Config.toml)")

	rootCmd.AddCommand(newEndpointsCommand())
	rootCmd.AddCommand(newShowCommand(&configFlag))
	rootCmd.AddCommand(newCheckCommand(&configFlag))
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
