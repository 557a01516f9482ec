package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "planb",
		Short:         "PlanB Music content backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML configuration file")

	rootCmd.AddCommand(newServeCommand(&configFlag))
	rootCmd.AddCommand(newImportCommand(&configFlag))
	rootCmd.AddCommand(newVideosCommand(&configFlag))
	rootCmd.AddCommand(newFAQCommand(&configFlag))

	return rootCmd
}
