package main

import (
	"github.com/spf13/cobra"

	"github.com/msetsma/gitnav/internal/config"
	"github.com/msetsma/gitnav/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Print example config to stdout",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Print a fully commented example configuration to stdout.

The config file lives at ~/.config/gitnav/config.toml. Every setting is
optional; omitted values fall back to the defaults shown in the example.`,
		Example: `  gitnav config                    # inspect the defaults
  gitnav config > my-config.toml   # start a custom config
  gitnav config init               # write it to the default location`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FromContext(cmd.Context()).Print(config.Example())
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config file at the default location",
		Args:  cobra.NoArgs,
		Example: `  gitnav config init       # create ~/.config/gitnav/config.toml
  gitnav config init -f    # overwrite an existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}
