// ABOUTME: Colors command listing the note color palette.
// ABOUTME: Runs without opening the storage backend.

package main

import (
	"fmt"

	"github.com/harper/quicknotes/internal/ui"
	"github.com/spf13/cobra"
)

var colorsCmd = &cobra.Command{
	Use:         "colors",
	Short:       "List available note colors",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), ui.FormatColorList())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}
