// ABOUTME: Config commands for inspecting and creating the config file.
// ABOUTME: Runs without opening the storage backend.

package main

import (
	"fmt"

	"github.com/harper/quicknotes/internal/config"
	"github.com/harper/quicknotes/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage configuration",
	Annotations: map[string]string{skipStore: "true"},
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the effective configuration",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, string(data))
		fmt.Fprintf(out, "# data path: %s\n", cfg.DataPath())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file with the current settings",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.ConfigPath()
		}
		force, _ := cmd.Flags().GetBool("force")

		if config.Exists(path) && !force {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
		if err := config.Save(cfg, path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Wrote config to %s", path)))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
